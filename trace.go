// trace.go — the standard Tracer: renders the numbered reduction log.
//
// TraceWriter turns the rewriter's events into the familiar listing:
//
//	0. (λx.(λy.x)) (y)
//	1. α-con: y <- y'
//	2. β-red: x <- y
//	*. done.
//
// Under FULL_TRACE every α/β step additionally shows the whole term
// before and after the rewrite, with the interesting subterms marked on
// the line below: the converted binder and the reduced argument are
// underlined, the substitution sites are underlined in a second colour,
// and the parameter being substituted for carries a caret.
package lambda

import (
	"fmt"
	"io"
)

// markers for the highlight line; colour collapses away when EnableColor
// is off, leaving the bare glyphs for tests and dumb terminals.
const traceUnderline = "‾"

func alphaMark() string { return colorize(traceUnderline, colorGrnBold) }
func betaArgMark() string { return colorize(traceUnderline, colorGrnBold) }
func betaSiteMark() string { return colorize(traceUnderline, colorBluBold) }
func betaParamMark() string { return colorize("^", colorYlwBold) }

// TraceWriter renders trace events to W according to Flags. The zero
// value is unusable; fill in both fields. With FlagTrace unset it stays
// completely silent, so it can be installed unconditionally.
type TraceWriter struct {
	W     io.Writer
	Flags Flags
}

func (tw *TraceWriter) tracing() bool  { return tw.Flags&FlagTrace != 0 }
func (tw *TraceWriter) detailed() bool { return tw.Flags&FlagFullTrace != 0 && tw.tracing() }

func (tw *TraceWriter) Defined(name string, redefined bool) {
	if !tw.tracing() {
		return
	}
	verb := "defined:"
	if redefined {
		verb = "redefined:"
	}
	fmt.Fprintf(tw.W, "%s %s %s\n",
		colorize("*.", colorBlackBld), colorize(verb, colorBluBold), colorize(name, colorBlackBld))
}

func (tw *TraceWriter) Initial(whole *Expr) {
	if !tw.tracing() {
		return
	}
	fmt.Fprintf(tw.W, "%s %s\n", colorize("0.", colorBlackBld), Print(whole, tw.Flags))
}

func (tw *TraceWriter) Done() {
	if !tw.tracing() {
		return
	}
	fmt.Fprintf(tw.W, "%s %s\n", colorize("*.", colorBlackBld), colorize("done.", colorBluBold))
}

func (tw *TraceWriter) AlphaConvert(after bool, step int, whole **Expr, binder *Expr, oldName, newName string) {
	if !tw.tracing() {
		return
	}
	if !after {
		fmt.Fprintf(tw.W, "%s %s %s <- %s\n",
			colorize(fmt.Sprintf("%d.", step), colorBlackBld), colorize("α-con:", colorGrnBold),
			colorize(oldName, colorBlackBld), newName)
	}
	if !tw.detailed() {
		return
	}
	top, bot := Highlight(*whole, tw.Flags, func(e *Expr) (string, bool) {
		if e == binder {
			return alphaMark(), true
		}
		return "", false
	}, nil)
	tw.writePair(after, top, bot)
}

func (tw *TraceWriter) BetaReduce(after bool, step int, whole **Expr, fn, arg *Expr, sites []**Expr) {
	if !tw.tracing() {
		return
	}
	if !after {
		fmt.Fprintf(tw.W, "%s %s %s <- %s\n",
			colorize(fmt.Sprintf("%d.", step), colorBlackBld), colorize("β-red:", colorYlwBold),
			colorize(fn.Name, colorBlackBld), Print(arg, tw.Flags))
	}
	if !tw.detailed() {
		return
	}

	// resolve the slots now: before the rewrite they hold the parameter
	// occurrences, after it the spliced-in clones of the argument
	inSites := make(map[*Expr]bool, len(sites))
	for _, s := range sites {
		inSites[*s] = true
	}

	top, bot := Highlight(*whole, tw.Flags, func(e *Expr) (string, bool) {
		if e == arg {
			return betaArgMark(), true
		}
		if inSites[e] {
			return betaSiteMark(), true
		}
		return "", false
	}, func(l *Expr) (string, bool) {
		if l == fn {
			return betaParamMark(), true
		}
		return "", false
	})
	tw.writePair(after, top, bot)
}

func (tw *TraceWriter) writePair(after bool, top, bot string) {
	if !after {
		fmt.Fprintf(tw.W, "     %s\n     %s\n", top, bot)
	} else {
		fmt.Fprintf(tw.W, "   > %s\n     %s\n\n", top, bot)
	}
}
