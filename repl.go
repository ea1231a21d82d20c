// repl.go — line-oriented evaluation and REPL directives.
//
// One line is one of: a comment (leading '#'), a directive (leading ':'),
// or a statement to parse and evaluate. EvalLine serves the interactive
// REPL (cmd/lc); the file loader (file.go) runs its own line loop, shares
// RunDirective, and prints no results. The ":q" quit line is the REPL
// loop's own business and never reaches here.
package lambda

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// EvalLine evaluates a single input line under ctx, writing all output
// (trace, result, errors) to w.
func EvalLine(ctx *Context, w io.Writer, line string) {
	input := strings.TrimSpace(line)
	if input == "" || strings.HasPrefix(input, "#") {
		return
	}

	if strings.HasPrefix(input, ":") {
		RunDirective(ctx, w, input)
		fmt.Fprintln(w)
		return
	}

	expr, err := Parse(input)
	if err != nil {
		fmt.Fprint(w, RenderError(err, input))
		return
	}

	result := Evaluate(ctx, expr, ctx.Flags, &TraceWriter{W: w, Flags: ctx.Flags})
	printResult(ctx, w, result)
}

func printResult(ctx *Context, w io.Writer, result *Expr) {
	if ctx.Flags&FlagNoPrint != 0 {
		return
	}

	normal := Print(result, ctx.Flags)
	fmt.Fprintln(w, normal)

	if ctx.Flags&FlagVarReplacement != 0 {
		replaced := PrintReplacing(result, ctx.Flags, func(e *Expr) (string, bool) {
			// candidates in name order so the lookup is deterministic;
			// note that AlphaEquivalent evaluates its second argument
			for _, name := range sortedNames(ctx.Vars) {
				if AlphaEquivalent(ctx, e, ctx.Vars[name]) {
					return name, true
				}
			}
			return "", false
		})
		if replaced != normal {
			fmt.Fprintln(w, "= "+replaced)
		}
	}
	fmt.Fprintln(w)
}

func sortedNames(vars map[string]*Expr) []string {
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RunDirective executes a ':'-prefixed REPL directive: the flag toggles
// (:p :h :c :t :ft :v) and :load. Unknown directives are reported and
// ignored.
func RunDirective(ctx *Context, w io.Writer, input string) {
	toggle := func(what string, f Flags) {
		ctx.Flags ^= f
		state := colorize("disabled", colorRedBold)
		if ctx.Flags&f != 0 {
			state = colorize("enabled", colorGrnBold)
		}
		fmt.Fprintf(w, "%s %s %s\n", colorize("*.", colorBlackBld), what, state)
	}

	switch {
	case input == ":p":
		toggle("parenthesis omission", FlagAbbrevParens)
	case input == ":h":
		toggle("haskell-style printing", FlagHaskellStyle)
	case input == ":c":
		toggle("curried abbreviation", FlagAbbrevLambda)
	case input == ":t":
		toggle("tracing", FlagTrace)
	case input == ":ft":
		toggle("full tracing", FlagFullTrace)
	case input == ":v":
		toggle("reverse variable substitution", FlagVarReplacement)
	case strings.HasPrefix(input, ":load "):
		path := strings.TrimSpace(strings.TrimPrefix(input, ":load "))
		if path == "" {
			fmt.Fprint(w, errorLine("expected path for ':load'"))
			return
		}
		if err := LoadFile(ctx, w, path); err != nil {
			fmt.Fprint(w, errorLine(err.Error()))
		}
	default:
		fmt.Fprint(w, errorLine(fmt.Sprintf("unknown command '%s'", input)))
	}
}
