package lambda

import "testing"

// shared test helpers

func mustParse(t *testing.T, src string) *Expr {
	t.Helper()
	e, err := Parse(src)
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return e
}

func reduce(t *testing.T, ctx *Context, src string) *Expr {
	t.Helper()
	return Evaluate(ctx, mustParse(t, src), 0, nil)
}

// countTracer tallies events; steps records the step numbers handed to
// the completed α/β notifications, in order.
type countTracer struct {
	alphas, betas, defines int
	initial, done          bool
	steps                  []int
}

func (c *countTracer) Defined(string, bool) { c.defines++ }
func (c *countTracer) Initial(*Expr)        { c.initial = true }
func (c *countTracer) Done()                { c.done = true }

func (c *countTracer) AlphaConvert(after bool, step int, _ **Expr, _ *Expr, _, _ string) {
	if after {
		c.alphas++
		c.steps = append(c.steps, step)
	}
}

func (c *countTracer) BetaReduce(after bool, step int, _ **Expr, _, _ *Expr, _ []**Expr) {
	if after {
		c.betas++
		c.steps = append(c.steps, step)
	}
}
