// file.go — the :load directive / preload path: evaluate a source file
// line by line.
package lambda

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadFile evaluates each non-blank, non-comment line of the file at
// path under ctx, writing output to w. Directives run as in the REPL.
//
// A parse error stops the load: the error is reported with its location
// underlined and a warning notes how many lines made it in. That is not
// an I/O failure, so the returned error is nil. A file that cannot be
// read returns the I/O error (the caller decides whether that is fatal;
// the CLI treats preload failures as exit-worthy, the REPL shrugs).
func LoadFile(ctx *Context, w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file '%s' does not exist", path)
		}
		return fmt.Errorf("failed to open file '%s': %v", path, err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, ":") {
			RunDirective(ctx, w, line)
			continue
		}

		expr, perr := Parse(line)
		if perr != nil {
			msg := fmt.Sprintf("(line %d): %v", i+1, perr)
			switch e := perr.(type) {
			case *LexError:
				fmt.Fprint(w, RenderError(&LexError{Msg: msg, Loc: e.Loc}, line))
			case *ParseError:
				fmt.Fprint(w, RenderError(&ParseError{Msg: msg, Loc: e.Loc}, line))
			default:
				fmt.Fprint(w, errorLine(msg))
			}

			fmt.Fprintf(w, "%s %s file '%s' not loaded completely (%d line%s)\n",
				colorize("*.", colorBlackBld), colorize("warning:", colorYlwBold),
				path, i, plural(i))
			return nil
		}

		Evaluate(ctx, expr, ctx.Flags, &TraceWriter{W: w, Flags: ctx.Flags})
	}

	fmt.Fprintf(w, "%s loaded %d line%s from '%s'\n",
		colorize("*.", colorBlackBld), len(lines), plural(len(lines)), path)
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
