package lambda

import "strings"

/* ---------- flags ---------- */

// Flags is the bitset of user-toggled options. Printing flags change how
// terms render; TRACE/FULL_TRACE control the step trace; NO_PRINT and
// VAR_REPLACEMENT control what the REPL shows for a result.
type Flags int

const (
	FlagAbbrevLambda   Flags = 1 << iota // print λx y.B instead of λx.λy.B
	FlagAbbrevParens                     // omit parens around Var arguments
	FlagHaskellStyle                     // print \x -> B instead of λx.B
	FlagNoPrint                          // suppress result printing
	FlagTrace                            // print numbered reduction steps
	FlagFullTrace                        // also print before/after highlights
	FlagVarReplacement                   // back-substitute defined names
)

/* ---------- colour ---------- */

// EnableColor gates all ANSI output; REPL-only, tests leave this false.
var EnableColor = false

const (
	colorReset    = "\x1b[0m"
	colorRedBold  = "\x1b[1m\x1b[31m"
	colorGrnBold  = "\x1b[1m\x1b[32m"
	colorYlwBold  = "\x1b[1m\x1b[33m"
	colorBluBold  = "\x1b[1m\x1b[34m"
	colorBlackBld = "\x1b[1m"
)

func colorize(s, c string) string {
	if !EnableColor {
		return s
	}
	return c + s + colorReset
}

/* ---------- public printing API ---------- */

// Print renders a term honouring the printing flags. The root term is
// printed without enclosing parentheses.
func Print(e *Expr, flags Flags) string {
	top, _ := render(e, flags, nil, nil, nil)
	return top
}

// PrintReplacing is Print with a term-to-name callback: whenever replace
// returns ok for a subterm, its name is printed instead of the subterm.
// The REPL uses it with an alpha-equivalence lookup to show reductions as
// named definitions.
func PrintReplacing(e *Expr, flags Flags, replace func(*Expr) (string, bool)) string {
	top, _ := render(e, flags, nil, nil, replace)
	return top
}

// Highlight renders a term on two lines: the text on top and a marker
// line below it. pred selects subterms to mark, returning the marker
// string repeated under each of their characters; paramPred does the same
// for a lambda's parameter specifically. Nested matches keep the
// innermost marker. Either predicate may be nil.
func Highlight(e *Expr, flags Flags, pred, paramPred func(*Expr) (string, bool)) (string, string) {
	return render(e, flags, pred, paramPred, nil)
}

/* ---------- renderer ---------- */

type renderState struct {
	flags     Flags
	pred      func(*Expr) (string, bool)
	paramPred func(*Expr) (string, bool)
	replacer  func(*Expr) (string, bool)

	// names already absorbed into the current λx y z. run; an inner binder
	// reusing one of them forces the run to break so the printout stays
	// unambiguous
	combined map[string]bool
	marks    []string

	top strings.Builder
	bot strings.Builder
}

func render(e *Expr, flags Flags, pred, paramPred, replacer func(*Expr) (string, bool)) (string, string) {
	st := &renderState{
		flags:     flags,
		pred:      pred,
		paramPred: paramPred,
		replacer:  replacer,
		combined:  make(map[string]bool),
	}
	st.walk(e, false, true)
	return st.top.String(), st.bot.String()
}

// emit writes s to the text line and one marker per rune of s to the
// marker line, keeping the two aligned.
func (st *renderState) emit(s, mark string) {
	st.top.WriteString(s)
	for range s {
		st.bot.WriteString(mark)
	}
}

func (st *renderState) walk(e *Expr, combine, omitLambdaParens bool) {
	pushed := false
	under := " "
	if st.pred != nil {
		if m, ok := st.pred(e); ok {
			st.marks = append(st.marks, m)
			pushed = true
		}
	}
	if len(st.marks) > 0 {
		under = st.marks[len(st.marks)-1]
	}
	defer func() {
		if pushed {
			st.marks = st.marks[:len(st.marks)-1]
		}
	}()

	if st.replacer != nil {
		if rep, ok := st.replacer(e); ok {
			st.emit(rep, under)
			return
		}
	}

	switch e.Kind {
	case ExprVar:
		st.emit(e.Name, under)

	case ExprApply:
		st.walk(e.Fn, false, false)
		st.emit(" ", under)

		close := false
		if st.flags&FlagAbbrevParens == 0 || e.Arg.Kind != ExprVar {
			close = true
			st.emit("(", under)
		}
		omit := st.flags&FlagAbbrevParens != 0 && e.Arg.Kind == ExprLambda
		st.walk(e.Arg, false, omit)
		if close {
			st.emit(")", under)
		}

	case ExprLambda:
		close := false
		if !combine {
			if !omitLambdaParens {
				close = true
				st.emit("(", under)
			}
			if st.flags&FlagHaskellStyle != 0 {
				st.emit("\\", under)
			} else {
				st.emit("λ", under)
			}
		}

		paramMark := under
		if st.paramPred != nil {
			if m, ok := st.paramPred(e); ok {
				paramMark = m
			}
		}
		st.emit(e.Name, paramMark)

		if st.flags&FlagAbbrevLambda != 0 {
			st.combined[e.Name] = true
		}

		combineNext := st.flags&FlagAbbrevLambda != 0 && e.Body.Kind == ExprLambda
		omitNext := false
		if combineNext && st.combined[e.Body.Name] {
			// λx y x y.B would be ambiguous; restart as λx y.λx y.B
			st.combined = make(map[string]bool)
			combineNext = false
			omitNext = true
		}

		if combineNext {
			st.emit(" ", under)
			st.walk(e.Body, true, false)
		} else {
			if st.flags&FlagHaskellStyle != 0 {
				st.emit(" -> ", under)
			} else {
				st.emit(".", under)
			}
			st.walk(e.Body, false, omitNext)
		}

		delete(st.combined, e.Name)
		if close {
			st.emit(")", under)
		}

	case ExprLet:
		st.emit("let ", " ")
		st.emit(e.Name, under)
		st.emit(" = ", " ")
		st.walk(e.Value, false, true)
	}
}
