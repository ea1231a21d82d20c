// eval.go — the rewriter: context inlining, alpha conversion, beta
// reduction, and the normal-order reduction driver.
//
// The driver is leftmost-outermost: at an application whose head is a
// lambda, the redex is reduced on the spot; otherwise the head is tried
// first, then the argument, and reduction also descends through lambda
// bodies, so terms are taken all the way to normal form rather than weak
// head normal form. After every step the traversal restarts from the root.
//
// There are no recoverable failures here. Every Var/Apply/Lambda term is
// handled; a Let never reaches the reduction loop. The only way to not
// terminate is a diverging input such as (λx.x x)(λx.x x) — bounding that
// is the embedder's job (see EvaluateSteps).
package lambda

// Tracer observes the rewriter. The driver passes term identities, never
// rendered text; TraceWriter is the standard renderer.
//
// AlphaConvert and BetaReduce fire twice per step: once with after=false
// immediately before the rewrite, and once with after=true immediately
// after it. whole always points at the root slot of the term being
// reduced, so both whole-term snapshots can be rendered by the observer.
// In a beta event, fn is the lambda being applied, arg its argument, and
// sites the substitution slots — before the rewrite they hold the
// parameter occurrences, after it the freshly spliced clones of arg.
type Tracer interface {
	Defined(name string, redefined bool)
	Initial(whole *Expr)
	AlphaConvert(after bool, step int, whole **Expr, binder *Expr, oldName, newName string)
	BetaReduce(after bool, step int, whole **Expr, fn, arg *Expr, sites []**Expr)
	Done()
}

// Evaluate reduces expr to normal form under ctx and returns the result
// as a fresh owned term; the input is never mutated. A Let input instead
// stores a clone of its value in ctx and returns another clone. flags does
// not affect reduction and is not handed to tr (a TraceWriter carries its
// own Flags); tr may be nil.
//
// Diverging terms make Evaluate loop. Use EvaluateSteps to bound the work.
func Evaluate(ctx *Context, expr *Expr, flags Flags, tr Tracer) *Expr {
	out, _ := EvaluateSteps(ctx, expr, flags, tr, -1)
	return out
}

// EvaluateSteps is Evaluate with a cap on the number of reduction steps.
// A negative limit means no cap. The boolean is true when the term reached
// normal form within the limit.
func EvaluateSteps(ctx *Context, expr *Expr, flags Flags, tr Tracer, limit int) (*Expr, bool) {
	// lets are not reducible expressions; they only mutate the context.
	if expr.Kind == ExprLet {
		_, redefined := ctx.Vars[expr.Name]
		ctx.Vars[expr.Name] = expr.Value.Clone()
		if tr != nil {
			tr.Defined(expr.Name, redefined)
		}
		return expr.Value.Clone(), true
	}

	copy := inlineContext(ctx, expr)
	if tr != nil {
		tr.Initial(copy)
	}

	step := 1
	done := false
	for n := 0; limit < 0 || n < limit; n++ {
		if !reduceOne(&step, tr, &copy, &copy) {
			done = true
			break
		}
	}
	if tr != nil {
		tr.Done()
	}
	return copy, done
}

// inlineContext returns a fresh clone of e in which every free occurrence
// of a context-defined name is replaced by a clone of its definition.
// Shadowed occurrences are left alone. This is a single pass: a definition
// whose right-hand side mentions another definition is not chased — nested
// definitions must be chained manually by defining them in dependency
// order, which keeps a self-referential `let x = x x` from looping here.
func inlineContext(ctx *Context, e *Expr) *Expr {
	free := make(map[*Expr]bool)
	for _, v := range freeVariables(e) {
		free[v] = true
	}
	return replaceVars(ctx, free, e)
}

func replaceVars(ctx *Context, free map[*Expr]bool, e *Expr) *Expr {
	switch e.Kind {
	case ExprVar:
		if free[e] {
			if def, ok := ctx.Vars[e.Name]; ok {
				return def.Clone()
			}
		}
		return e.Clone()
	case ExprApply:
		return NewApply(e.Loc, replaceVars(ctx, free, e.Fn), replaceVars(ctx, free, e.Arg))
	case ExprLambda:
		return NewLambda(e.Loc, e.ParamLoc, e.Name, replaceVars(ctx, free, e.Body))
	default:
		panic("lambda: cannot inline into a let")
	}
}

// freshName derives a new name by appending a prime. Each collision along
// a conversion is with a name carrying fewer primes, so priming once more
// always escapes.
func freshName(name string) string {
	return name + "'"
}

// alphaConvert renames every free occurrence of name inside e (and e's own
// parameter when e is the binder) to fresh. When the walk meets a nested
// lambda whose parameter is exactly fresh, that inner binder is first
// converted to freshName(fresh) so the outer rename can continue without
// capturing. Var nodes are replaced, Apply/Lambda nodes rewritten in
// place; the returned node is the (possibly replaced) root.
func alphaConvert(e *Expr, name, fresh string) *Expr {
	switch e.Kind {
	case ExprVar:
		if e.Name == name {
			return NewVar(e.Loc, fresh)
		}
		return e
	case ExprApply:
		e.Fn = alphaConvert(e.Fn, name, fresh)
		e.Arg = alphaConvert(e.Arg, name, fresh)
		return e
	case ExprLambda:
		if e.Name == fresh {
			// the fresh name collides with this inner binder; move the
			// inner binder out of the way first
			fresher := freshName(fresh)
			e.Name = fresher
			e.Body = alphaConvert(e.Body, fresh, fresher)
		}
		if e.Name == name {
			e.Name = fresh
		}
		e.Body = alphaConvert(e.Body, name, fresh)
		return e
	default:
		panic("lambda: alpha conversion over a let")
	}
}

// reduceOne performs at most one reduction step somewhere in *slot,
// preferring the leftmost-outermost redex. Reports whether a step was
// taken.
func reduceOne(step *int, tr Tracer, whole **Expr, slot **Expr) bool {
	switch (*slot).Kind {
	case ExprApply:
		return betaReduce(step, tr, whole, slot)
	case ExprLambda:
		return reduceOne(step, tr, whole, &(*slot).Body)
	default:
		return false
	}
}

// betaReduce reduces the application at *slot if its head is (or can
// become) a lambda; failing that it normalises the argument. Capture is
// avoided by alpha-converting every binder of the function that clashes
// with a free variable of the argument, repeating until no clash remains
// (a conversion can introduce a primed name that clashes one level
// deeper).
func betaReduce(step *int, tr Tracer, whole **Expr, slot **Expr) bool {
	app := *slot
	if fn := app.Fn; fn.Kind == ExprLambda {
		for {
			renamed := false
			bound := boundVariables(fn)
			for _, name := range freeNamesInOrder(app.Arg) {
				binder, clash := bound[name]
				if !clash {
					continue
				}
				fresh := freshName(name)
				if tr != nil {
					tr.AlphaConvert(false, *step, whole, binder, name, fresh)
				}
				alphaConvert(binder, name, fresh)
				if tr != nil {
					tr.AlphaConvert(true, *step, whole, binder, name, fresh)
				}
				*step++
				renamed = true
			}
			if !renamed {
				break
			}
		}

		// find the slots first so the trace can show them
		sites := findOccurrences(&fn.Body, fn.Name)
		if tr != nil {
			tr.BetaReduce(false, *step, whole, fn, app.Arg, sites)
		}
		for _, s := range sites {
			*s = app.Arg.Clone()
		}
		*slot = fn.Body
		if tr != nil {
			tr.BetaReduce(true, *step, whole, fn, app.Arg, sites)
		}
		*step++
		return true
	}

	if app.Fn.Kind == ExprApply && betaReduce(step, tr, whole, &app.Fn) {
		return true
	}

	// the head is stuck; normalise the argument too
	return reduceOne(step, tr, whole, &app.Arg)
}

// freeNamesInOrder is the name set of freeVariables(e), deduplicated in
// first-occurrence order so alpha-conversion traces are deterministic.
func freeNamesInOrder(e *Expr) []string {
	var names []string
	seen := make(map[string]bool)
	for _, v := range freeVariables(e) {
		if !seen[v.Name] {
			seen[v.Name] = true
			names = append(names, v.Name)
		}
	}
	return names
}
