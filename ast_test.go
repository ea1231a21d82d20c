package lambda

import "testing"

func collectNodes(e *Expr, into map[*Expr]bool) {
	if e == nil {
		return
	}
	into[e] = true
	collectNodes(e.Fn, into)
	collectNodes(e.Arg, into)
	collectNodes(e.Body, into)
	collectNodes(e.Value, into)
}

func Test_Clone_DeepAndDisjoint(t *testing.T) {
	orig := mustParse(t, `(\x -> x y) (\z -> z)`)
	copy := orig.Clone()

	if !orig.Equal(copy) {
		t.Fatalf("clone not structurally equal: %s vs %s", Print(orig, 0), Print(copy, 0))
	}

	a := map[*Expr]bool{}
	b := map[*Expr]bool{}
	collectNodes(orig, a)
	collectNodes(copy, b)
	for n := range b {
		if a[n] {
			t.Fatalf("clone shares node %s with the original", Print(n, 0))
		}
	}

	// mutating the clone must not touch the original
	copy.Fn.Name = "w"
	if orig.Fn.Name != "x" {
		t.Fatal("mutating the clone leaked into the original")
	}
}

func Test_Clone_Let(t *testing.T) {
	orig := mustParse(t, `let K = \x y -> x`)
	copy := orig.Clone()
	if !orig.Equal(copy) || copy.Value == orig.Value {
		t.Fatal("let clone must deep-copy the value")
	}
}

func Test_Equal_IsSyntactic(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{`\x -> x`, `\x -> x`, true},
		{`\x -> x`, `\y -> y`, false}, // alpha-equivalent, not equal
		{`a b c`, `a b c`, true},
		{`a (b c)`, `a b c`, false},
		{`\x y -> x`, `\x -> \y -> x`, true}, // same tree after desugaring
	}
	for _, c := range cases {
		if got := mustParse(t, c.a).Equal(mustParse(t, c.b)); got != c.want {
			t.Errorf("Equal(%q, %q) = %v, want %v", c.a, c.b, got, c.want)
		}
	}
}
