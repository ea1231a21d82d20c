// equiv.go — alpha-equivalence: equality up to consistent renaming of
// bound variables.
//
// The two terms are walked in lock step with a pair of scopes mapping each
// bound name to the depth of the binder that introduced it. Two bound
// occurrences are the same variable exactly when they resolve to the same
// depth; names and depths are stable across cloning, unlike pointer
// identity. At every node the one-binder-deep free names of both sides
// are compared as an early prune: a mismatch there can never be repaired
// further down.
package lambda

// AlphaEquivalent reports whether a is alpha-equivalent to b after b has
// been reduced under ctx. The asymmetry is deliberate: the reverse-lookup
// caller already holds a reduced term and compares it against each raw
// context definition, which must be evaluated first.
func AlphaEquivalent(ctx *Context, a, b *Expr) bool {
	bb := Evaluate(ctx, b, 0, nil)
	return alphaEquivalent(a, bb)
}

func alphaEquivalent(a, b *Expr) bool {
	return alphaEq(a, b, map[string]int{}, map[string]int{}, 0)
}

func alphaEq(a, b *Expr, scopeA, scopeB map[string]int, depth int) bool {
	if a.Kind != b.Kind {
		return false
	}
	if !sameFreeNames(a, b, scopeA, scopeB) {
		return false
	}

	switch a.Kind {
	case ExprVar:
		da, boundA := scopeA[a.Name]
		db, boundB := scopeB[b.Name]
		if boundA != boundB {
			return false
		}
		if boundA {
			return da == db
		}
		return a.Name == b.Name

	case ExprApply:
		return alphaEq(a.Fn, b.Fn, scopeA, scopeB, depth) &&
			alphaEq(a.Arg, b.Arg, scopeA, scopeB, depth)

	case ExprLambda:
		prevA, hadA := scopeA[a.Name]
		prevB, hadB := scopeB[b.Name]
		scopeA[a.Name] = depth
		scopeB[b.Name] = depth

		eq := alphaEq(a.Body, b.Body, scopeA, scopeB, depth+1)

		if hadA {
			scopeA[a.Name] = prevA
		} else {
			delete(scopeA, a.Name)
		}
		if hadB {
			scopeB[b.Name] = prevB
		} else {
			delete(scopeB, b.Name)
		}
		return eq

	case ExprLet:
		return a.Name == b.Name && alphaEq(a.Value, b.Value, scopeA, scopeB, depth)

	default:
		return false
	}
}

// sameFreeNames compares the one-binder-deep free names of a and b,
// ignoring names the surrounding scopes have bound (those are compared by
// depth at their occurrences instead).
func sameFreeNames(a, b *Expr, scopeA, scopeB map[string]int) bool {
	namesA := shallowFreeNames(a, scopeA)
	namesB := shallowFreeNames(b, scopeB)
	if len(namesA) != len(namesB) {
		return false
	}
	for n := range namesA {
		if !namesB[n] {
			return false
		}
	}
	return true
}

func shallowFreeNames(e *Expr, scope map[string]int) map[string]bool {
	out := make(map[string]bool)
	for _, v := range freeVariablesDepth(e, 1) {
		if _, bound := scope[v.Name]; !bound {
			out[v.Name] = true
		}
	}
	return out
}
