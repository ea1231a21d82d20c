// vars.go — free/bound variable analysis and substitution-site discovery.
//
// All three queries are pure walks over a term. They are the machinery
// that makes substitution sound: beta reduction consults freeVariables of
// the argument and boundVariables of the function to decide which binders
// must be alpha-renamed before the argument is spliced in, and
// findOccurrences locates the slots the clones go into.
package lambda

import "math"

// freeVariables returns the free occurrences in e, by identity: the same
// name at two positions yields two entries. Order is deterministic — an
// Apply's function is visited before its argument — so the trace order of
// alpha conversions is stable.
func freeVariables(e *Expr) []*Expr {
	return freeVariablesDepth(e, math.MaxInt)
}

// freeVariablesDepth is freeVariables with a binder-depth limit: once
// maxDepth Lambda nodes have been entered, deeper bodies are not visited.
// The alpha-equivalence oracle uses maxDepth=1 to reason one binder at a
// time.
func freeVariablesDepth(e *Expr, maxDepth int) []*Expr {
	var out []*Expr
	collectFree(&out, map[string]bool{}, e, 0, maxDepth)
	return out
}

func collectFree(out *[]*Expr, bound map[string]bool, e *Expr, depth, maxDepth int) {
	switch e.Kind {
	case ExprVar:
		if !bound[e.Name] {
			*out = append(*out, e)
		}
	case ExprApply:
		collectFree(out, bound, e.Fn, depth, maxDepth)
		collectFree(out, bound, e.Arg, depth, maxDepth)
	case ExprLambda:
		if depth < maxDepth {
			prev, had := bound[e.Name]
			bound[e.Name] = true
			collectFree(out, bound, e.Body, depth+1, maxDepth)
			if had {
				bound[e.Name] = prev
			} else {
				delete(bound, e.Name)
			}
		}
	case ExprLet:
		collectFree(out, bound, e.Value, depth, maxDepth)
	}
}

// boundVariables maps each name bound at least once in e to the innermost
// Lambda binding that name. Beta reduction renames these binders when they
// clash with a free variable of the argument; with several same-named
// binders the clash check simply repeats until none remain, so holding one
// binder per name is enough.
func boundVariables(e *Expr) map[string]*Expr {
	out := make(map[string]*Expr)
	collectBound(out, e)
	return out
}

func collectBound(out map[string]*Expr, e *Expr) {
	switch e.Kind {
	case ExprApply:
		collectBound(out, e.Fn)
		collectBound(out, e.Arg)
	case ExprLambda:
		// the body is walked after the entry is made, so an inner binder
		// of the same name overwrites the outer one
		out[e.Name] = e
		collectBound(out, e.Body)
	case ExprLet:
		collectBound(out, e.Value)
	}
}

// findOccurrences returns the slots in *slot where a beta reduction would
// substitute for name: every free occurrence of name, stopping at any
// Lambda that rebinds it. The slots are addresses of the parent's child
// fields, so substitution is a plain store through the pointer.
func findOccurrences(slot **Expr, name string) []**Expr {
	e := *slot
	switch e.Kind {
	case ExprVar:
		if e.Name == name {
			return []**Expr{slot}
		}
		return nil
	case ExprApply:
		out := findOccurrences(&e.Fn, name)
		return append(out, findOccurrences(&e.Arg, name)...)
	case ExprLambda:
		// a lambda that rebinds the name shadows everything below
		if e.Name != name {
			return findOccurrences(&e.Body, name)
		}
		return nil
	case ExprLet:
		return findOccurrences(&e.Value, name)
	default:
		return nil
	}
}
