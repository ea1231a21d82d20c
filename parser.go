// parser.go — recursive descent parser for the surface syntax.
//
// Grammar, roughly:
//
//	stmt   = "let" ID "=" expr | expr
//	expr   = unary { unary }            (application, left-associative)
//	unary  = "(" expr ")" | ID | lambda
//	lambda = ("λ" | "\") ID+ ("." | "->") expr
//
// A lambda with several parameters desugars during parsing into nested
// single-parameter abstractions: \x y z -> b becomes \x.\y.\z.(b). The
// leading λ/\ of the inner abstractions is implied, so the parser just
// recurses while it keeps seeing identifiers.
package lambda

import "fmt"

// ParseError reports a syntax error, with the offending location.
type ParseError struct {
	Msg string
	Loc Location
}

func (e *ParseError) Error() string { return e.Msg }

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) empty() bool { return p.pos >= len(p.tokens) }

func (p *parser) peek() Token {
	if p.empty() {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) pop() Token {
	t := p.peek()
	if !p.empty() {
		p.pos++
	}
	return t
}

func parseErrorf(loc Location, format string, args ...any) *ParseError {
	return &ParseError{Msg: fmt.Sprintf(format, args...), Loc: loc}
}

// Parse lexes and parses a single statement (a `let` or an expression).
// Errors are *LexError or *ParseError.
func Parse(src string) (*Expr, error) {
	if src == "" {
		return nil, &ParseError{Msg: "empty input"}
	}

	tokens, err := Lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	ret, err := p.parseStmt()
	if err != nil {
		return nil, err
	}

	if !p.empty() {
		t := p.peek()
		return nil, parseErrorf(t.Loc, "junk at end of expression: '%s'", t.Text)
	}
	return ret, nil
}

func (p *parser) parseStmt() (*Expr, error) {
	if p.peek().Type == LET {
		return p.parseLet()
	}
	return p.parseExpr()
}

func (p *parser) parseExpr() (*Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return p.parseApply(left)
}

func (p *parser) parseUnary() (*Expr, error) {
	switch p.peek().Type {
	case LPAREN:
		return p.parseParenthesised()
	case ID:
		t := p.pop()
		return NewVar(t.Loc, t.Text), nil
	case LAMBDA:
		return p.parseLambda()
	}

	if p.empty() {
		return nil, &ParseError{Msg: "unexpected end of input"}
	}
	t := p.peek()
	return nil, parseErrorf(t.Loc, "unexpected token '%s'", t.Text)
}

func (p *parser) parseParenthesised() (*Expr, error) {
	open := p.pop()
	if open.Type != LPAREN {
		return nil, parseErrorf(open.Loc, "expected '('")
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.pop().Type != RPAREN {
		return nil, parseErrorf(open.Loc, "expected ')' to match this '('")
	}
	return expr, nil
}

func (p *parser) parseLambda() (*Expr, error) {
	// the λ (or \) is optional: when we are called from our own recursion
	// below, the parameter chain continues with bare identifiers.
	begin := p.peek().Loc
	if p.peek().Type == LAMBDA {
		p.pop()
	}

	if t := p.peek(); t.Type != ID {
		return nil, parseErrorf(t.Loc, "expected identifier, found '%s'", t.Text)
	}
	param := p.pop()

	switch p.peek().Type {
	case ARROW, PERIOD:
		p.pop()
		body, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		loc := Location{begin.Begin, body.Loc.Begin + body.Loc.Length - begin.Begin}
		return NewLambda(loc, param.Loc, param.Text, body), nil

	case ID:
		sub, err := p.parseLambda()
		if err != nil {
			return nil, err
		}
		loc := Location{begin.Begin, sub.Loc.Begin + sub.Loc.Length - begin.Begin}
		return NewLambda(loc, param.Loc, param.Text, sub), nil

	default:
		t := p.peek()
		return nil, parseErrorf(t.Loc, "expected '.' or '->' or identifier; found '%s'", t.Text)
	}
}

func (p *parser) parseApply(lhs *Expr) (*Expr, error) {
	for {
		if t := p.peek().Type; t == RPAREN || t == EOF {
			return lhs, nil
		}

		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		loc := Location{lhs.Loc.Begin, rhs.Loc.Begin + rhs.Loc.Length - lhs.Loc.Begin}
		lhs = NewApply(loc, lhs, rhs)
	}
}

func (p *parser) parseLet() (*Expr, error) {
	p.pop() // the `let`

	name := p.pop()
	if name.Type != ID {
		return nil, parseErrorf(name.Loc, "expected identifier for 'let', found '%s'", name.Text)
	}

	if t := p.pop(); t.Type != EQUAL {
		return nil, parseErrorf(t.Loc, "expected '=', found '%s'", t.Text)
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return NewLet(name.Loc, name.Text, value), nil
}
