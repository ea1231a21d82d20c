// ast.go — the term model for the untyped lambda calculus.
//
// A term is a tagged variant with four cases: variable reference,
// application, abstraction, and the top-level `let` form (which is not a
// real expression — it never reduces, it only populates the Context).
// Every term carries a byte-offset Location used by diagnostics; the
// evaluator and the printers never look at locations.
//
// Terms are owned trees: each non-Var node exclusively owns its children,
// Clone is deep, and substitution always splices in fresh clones. There is
// deliberately no sharing — it keeps the rewriter's in-place slot updates
// sound and makes trace snapshots faithful to what the user sees.
package lambda

// ExprKind discriminates the four term cases. It determines which fields
// of Expr are meaningful (see Expr).
type ExprKind int

const (
	ExprVar    ExprKind = iota + 1 // variable reference
	ExprApply                      // application (fn arg)
	ExprLambda                     // abstraction λparam.body
	ExprLet                        // top-level definition
)

// Location is a half-open byte interval into the original source line:
// [Begin, Begin+Length). Used only for error underlining.
type Location struct {
	Begin  int
	Length int
}

// Expr is a single term node. Valid fields by Kind:
//
//	ExprVar:    Name
//	ExprApply:  Fn, Arg
//	ExprLambda: Name (the parameter), ParamLoc, Body
//	ExprLet:    Name, Value
type Expr struct {
	Kind ExprKind
	Loc  Location

	Name     string
	ParamLoc Location
	Fn       *Expr
	Arg      *Expr
	Body     *Expr
	Value    *Expr
}

func NewVar(loc Location, name string) *Expr {
	return &Expr{Kind: ExprVar, Loc: loc, Name: name}
}

func NewApply(loc Location, fn, arg *Expr) *Expr {
	return &Expr{Kind: ExprApply, Loc: loc, Fn: fn, Arg: arg}
}

func NewLambda(loc, paramLoc Location, param string, body *Expr) *Expr {
	return &Expr{Kind: ExprLambda, Loc: loc, Name: param, ParamLoc: paramLoc, Body: body}
}

func NewLet(loc Location, name string, value *Expr) *Expr {
	return &Expr{Kind: ExprLet, Loc: loc, Name: name, Value: value}
}

// Clone returns a deep copy sharing no subtree with the receiver.
func (e *Expr) Clone() *Expr {
	if e == nil {
		return nil
	}
	switch e.Kind {
	case ExprVar:
		return NewVar(e.Loc, e.Name)
	case ExprApply:
		return NewApply(e.Loc, e.Fn.Clone(), e.Arg.Clone())
	case ExprLambda:
		return NewLambda(e.Loc, e.ParamLoc, e.Name, e.Body.Clone())
	case ExprLet:
		return NewLet(e.Loc, e.Name, e.Value.Clone())
	default:
		panic("lambda: clone of malformed term")
	}
}

// Equal reports syntactic equality: same tags, same names, same children,
// recursively. Locations are ignored. Equality up to bound-variable
// renaming is AlphaEquivalent, not this.
func (e *Expr) Equal(o *Expr) bool {
	if e == nil || o == nil {
		return e == o
	}
	if e.Kind != o.Kind {
		return false
	}
	switch e.Kind {
	case ExprVar:
		return e.Name == o.Name
	case ExprApply:
		return e.Fn.Equal(o.Fn) && e.Arg.Equal(o.Arg)
	case ExprLambda:
		return e.Name == o.Name && e.Body.Equal(o.Body)
	case ExprLet:
		return e.Name == o.Name && e.Value.Equal(o.Value)
	default:
		return false
	}
}

// Context is the interpreter state shared across one REPL session: the
// `let`-bound definitions and the user-toggled flags. It is single-threaded
// state; the rewriter only ever reads it, `let` evaluation and directives
// mutate it.
type Context struct {
	Flags Flags
	Vars  map[string]*Expr
}

func NewContext() *Context {
	return &Context{Vars: make(map[string]*Expr)}
}
