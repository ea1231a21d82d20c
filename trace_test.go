package lambda

import (
	"bytes"
	"strings"
	"testing"
)

func evalTraced(t *testing.T, src string, flags Flags) string {
	t.Helper()
	var buf bytes.Buffer
	ctx := NewContext()
	Evaluate(ctx, mustParse(t, src), flags, &TraceWriter{W: &buf, Flags: flags})
	return buf.String()
}

func Test_Trace_SilentWithoutFlag(t *testing.T) {
	if out := evalTraced(t, `(\x -> x) a`, 0); out != "" {
		t.Fatalf("trace output without FlagTrace: %q", out)
	}
}

func Test_Trace_StepListing(t *testing.T) {
	got := evalTraced(t, `(\x -> \y -> x) y`, FlagTrace)
	want := "0. (λx.(λy.x)) (y)\n" +
		"1. α-con: y <- y'\n" +
		"2. β-red: x <- y\n" +
		"*. done.\n"
	if got != want {
		t.Fatalf("trace listing:\n%q\nwant:\n%q", got, want)
	}
}

func Test_Trace_DefinedLine(t *testing.T) {
	var buf bytes.Buffer
	ctx := NewContext()
	tw := &TraceWriter{W: &buf, Flags: FlagTrace}

	Evaluate(ctx, mustParse(t, `let I = \x -> x`), FlagTrace, tw)
	Evaluate(ctx, mustParse(t, `let I = \y -> y`), FlagTrace, tw)

	want := "*. defined: I\n*. redefined: I\n"
	if buf.String() != want {
		t.Fatalf("defined lines = %q, want %q", buf.String(), want)
	}
}

func Test_Trace_FullTraceHighlights(t *testing.T) {
	got := evalTraced(t, `(\x -> x) a`, FlagTrace|FlagFullTrace)
	want := "0. (λx.x) (a)\n" +
		"1. β-red: x <- a\n" +
		"     (λx.x) (a)\n" +
		"       ^ ‾   ‾ \n" +
		"   > a\n" +
		"     ‾\n" +
		"\n" +
		"*. done.\n"
	if got != want {
		t.Fatalf("full trace:\n%q\nwant:\n%q", got, want)
	}
}

func Test_Trace_FullTracePairsAreAligned(t *testing.T) {
	out := evalTraced(t, `(\x y z -> x z (y z)) (\x y -> x) (\x y -> x)`, FlagTrace|FlagFullTrace)

	lines := strings.Split(out, "\n")
	for i := 0; i+1 < len(lines); i++ {
		text, marks := lines[i], lines[i+1]
		if !strings.HasPrefix(text, "     ") && !strings.HasPrefix(text, "   > ") {
			continue
		}
		if !strings.HasPrefix(marks, "     ") {
			continue
		}
		// every snapshot line is followed by a same-width marker line
		if len([]rune(text)) != len([]rune(marks)) {
			t.Fatalf("misaligned pair:\n%q\n%q", text, marks)
		}
		i++
	}
}
