package lambda

import "testing"

func mustLex(t *testing.T, src string) []Token {
	t.Helper()
	toks, err := Lex(src)
	if err != nil {
		t.Fatalf("lex %q: %v", src, err)
	}
	return toks
}

func Test_Lex_Basics(t *testing.T) {
	toks := mustLex(t, `(\x y -> x) p q`)
	want := []struct {
		tt   TokenType
		text string
	}{
		{LPAREN, "("}, {LAMBDA, `\`}, {ID, "x"}, {ID, "y"}, {ARROW, "->"},
		{ID, "x"}, {RPAREN, ")"}, {ID, "p"}, {ID, "q"},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Type != w.tt || toks[i].Text != w.text {
			t.Errorf("token %d = {%v %q}, want {%v %q}", i, toks[i].Type, toks[i].Text, w.tt, w.text)
		}
	}
}

func Test_Lex_UnicodeLambdaAndLocations(t *testing.T) {
	// λ is two bytes; locations are byte intervals
	toks := mustLex(t, "λa.a")
	want := []struct {
		tt  TokenType
		loc Location
	}{
		{LAMBDA, Location{0, 2}},
		{ID, Location{2, 1}},
		{PERIOD, Location{3, 1}},
		{ID, Location{4, 1}},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens: %v", len(toks), toks)
	}
	for i, w := range want {
		if toks[i].Type != w.tt || toks[i].Loc != w.loc {
			t.Errorf("token %d = {%v %v}, want {%v %v}", i, toks[i].Type, toks[i].Loc, w.tt, w.loc)
		}
	}
}

func Test_Lex_Identifiers(t *testing.T) {
	cases := []struct {
		src  string
		want []string
	}{
		{`foo bar`, []string{"foo", "bar"}},
		{`x' x''`, []string{"x'", "x''"}}, // primed names from alpha conversion
		{`φ ψ1`, []string{"φ", "ψ1"}},
		{`2 plus 2`, []string{"2", "plus", "2"}}, // digit runs are identifiers too
		{`x_1`, []string{"x_1"}},
	}
	for _, c := range cases {
		toks := mustLex(t, c.src)
		if len(toks) != len(c.want) {
			t.Errorf("lex %q: %d tokens, want %d", c.src, len(toks), len(c.want))
			continue
		}
		for i, w := range c.want {
			if toks[i].Type != ID || toks[i].Text != w {
				t.Errorf("lex %q token %d = {%v %q}, want ID %q", c.src, i, toks[i].Type, toks[i].Text, w)
			}
		}
	}
}

func Test_Lex_LetKeyword(t *testing.T) {
	toks := mustLex(t, `let I = λx.x`)
	if toks[0].Type != LET {
		t.Fatalf("first token = %v, want LET", toks[0].Type)
	}
	// `lettuce` is an identifier, not a keyword
	toks = mustLex(t, `lettuce`)
	if toks[0].Type != ID || toks[0].Text != "lettuce" {
		t.Fatalf("lettuce lexed as %v %q", toks[0].Type, toks[0].Text)
	}
}

func Test_Lex_InvalidToken(t *testing.T) {
	_, err := Lex(`a @ b`)
	le, ok := err.(*LexError)
	if !ok {
		t.Fatalf("want *LexError, got %v", err)
	}
	if le.Msg != "invalid token '@'" || le.Loc != (Location{2, 1}) {
		t.Fatalf("lex error = %q at %v", le.Msg, le.Loc)
	}
}

func Test_Lex_PrimeCannotStartIdentifier(t *testing.T) {
	_, err := Lex(`'x`)
	if _, ok := err.(*LexError); !ok {
		t.Fatalf("leading prime should not lex, got %v", err)
	}
}
