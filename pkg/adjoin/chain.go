package adjoin

import "slices"

// Chain stacks companions around one original Handler. Every layer shares
// the Chain's Context and options.
type Chain struct {
	opts []Option
	ctx  *Context
	fn   Handler
}

// Start creates a new chain from an original Handler. Without WithContext
// the chain gets a fresh Context.
func Start(original Handler, opts ...Option) *Chain {
	o := newOptions(opts)
	return &Chain{
		opts: append(slices.Clone(opts), WithContext(o.context)),
		ctx:  o.context,
		fn:   original,
	}
}

// Before wraps the current chain; the newest Before runs first.
func (c *Chain) Before(before Handler) *Chain {
	return &Chain{
		opts: c.opts,
		ctx:  c.ctx,
		fn:   lift(Before(c.fn, before, c.opts...)),
	}
}

// After wraps the current chain; the newest After runs last.
func (c *Chain) After(after Handler) *Chain {
	return &Chain{
		opts: c.opts,
		ctx:  c.ctx,
		fn:   lift(After(c.fn, after, c.opts...)),
	}
}

// Context returns the Context shared by every layer of the chain.
func (c *Chain) Context() *Context {
	return c.ctx
}

// Func returns the composed function.
func (c *Chain) Func() Func {
	fn, ctx := c.fn, c.ctx
	return func(args ...any) {
		fn(ctx, args...)
	}
}

// lift turns a composed Func back into a Handler. The Context argument is
// dropped since the Func already captured the same one.
func lift(f Func) Handler {
	return func(_ *Context, args ...any) {
		f(args...)
	}
}
