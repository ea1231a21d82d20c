// errors.go: user-facing error rendering with an underlined snippet
//
// What this file does
// -------------------
// This module turns lexer/parser diagnostics into a readable report that
// repeats the offending input and underlines the error location:
//
//	error: expected ')' to match this '('
//	here:  (\x -> x (\y -> y
//	                ^
//
// The primary entry point is `RenderError`, which recognises `*LexError`
// (lexer.go) and `*ParseError` (parser.go) — both carrying a byte-interval
// `Location` — and formats them against the source line. Any other error
// is rendered as a bare `error:` line.
//
// Behaviour guarantees
// --------------------
//   - The underline is aligned by rune, not byte, so multi-byte input (λ,
//     non-ASCII identifiers) does not skew it.
//   - Locations out of range are clamped; rendering never panics.
//   - Output carries ANSI colour only when EnableColor is set.
package lambda

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// RenderError formats err against the input it was produced from. For
// lex/parse errors the result is the three-line underlined report; for
// anything else, a single `error:` line.
func RenderError(err error, input string) string {
	var loc Location
	switch e := err.(type) {
	case *LexError:
		loc = e.Loc
	case *ParseError:
		loc = e.Loc
	default:
		return errorLine(err.Error())
	}
	return errorLine(err.Error()) + underlinedInput(input, loc)
}

func errorLine(msg string) string {
	return fmt.Sprintf("%s %s\n", colorize("error:", colorRedBold), colorize(msg, colorBlackBld))
}

func underlinedInput(input string, loc Location) string {
	begin, length := clampLoc(input, loc)

	underline := "^"
	if length > 1 {
		underline = strings.Repeat(traceUnderline, length)
	}

	// the pad is 7 ("here:  ") plus the rune width of everything before
	// the location
	pad := 7 + utf8.RuneCountInString(input[:begin])

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", colorize("here:", colorBlackBld), input)
	fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", pad), colorize(underline, colorRedBold))
	return b.String()
}

func clampLoc(input string, loc Location) (begin, length int) {
	begin, length = loc.Begin, loc.Length
	if begin < 0 {
		begin = 0
	}
	if begin > len(input) {
		begin = len(input)
	}
	// keep begin on a rune boundary
	for begin > 0 && begin < len(input) && !utf8.RuneStart(input[begin]) {
		begin--
	}
	end := begin + length
	if end > len(input) {
		end = len(input)
	}
	// the underline is one mark per rune
	length = utf8.RuneCountInString(input[begin:end])
	return begin, length
}
