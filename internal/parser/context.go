package parser

import "github.com/funvibe/ecmaparse/internal/diagnostics"

// Context holds the three flags that gate context-sensitive productions:
// AllowIn is false only inside a for-statement header before the first
// semicolon, AllowYield is true only inside a generator body, AllowReturn
// is true only inside a function body. All changes go through the scoped
// override helper below.
type Context struct {
	AllowIn     bool
	AllowYield  bool
	AllowReturn bool
}

// override names a subset of Context's flags to change; a nil field
// leaves that flag untouched. A zero-value override saves and restores
// unchanged.
type override struct {
	allowIn     *bool
	allowYield  *bool
	allowReturn *bool
}

func (o override) apply(c *Context) {
	if o.allowIn != nil {
		c.AllowIn = *o.allowIn
	}
	if o.allowYield != nil {
		c.AllowYield = *o.allowYield
	}
	if o.allowReturn != nil {
		c.AllowReturn = *o.allowReturn
	}
}

func boolp(b bool) *bool { return &b }

// withContext is the scoped-override helper: save, apply, invoke,
// restore -- unconditionally, via defer, so a fatal-error panic unwinding
// through a sub-parse still restores the saved context.
func withContext[T any](p *Parser, o override, fn func() T) T {
	saved := p.ctx
	o.apply(&p.ctx)
	defer func() { p.ctx = saved }()
	return fn()
}

// tryParse attempts fn speculatively: the scanner and context are
// snapshotted first, and a *diagnostics.SyntaxError panic raised while fn
// runs is swallowed and reported as (zero, false) with both restored to
// the snapshot, rather than propagating -- how the arrow-function head is
// tried before falling back to a parenthesized/sequence expression. Any
// non-SyntaxError panic still propagates unchanged.
func tryParse[T any](p *Parser, fn func() T) (result T, ok bool) {
	state := p.sc.GetState()
	saved := p.ctx

	defer func() {
		if r := recover(); r != nil {
			if _, isSyntaxError := r.(*diagnostics.SyntaxError); !isSyntaxError {
				panic(r)
			}
			p.sc.SetState(state)
			p.ctx = saved
			var zero T
			result, ok = zero, false
		}
	}()

	result = fn()
	ok = true
	return result, ok
}

// withStrictMode scopes the scanner's strict-mode flag the same way, for
// statement lists that process a directive prologue: a directive found in
// a nested list never leaks strictness to the enclosing one.
func withStrictMode[T any](p *Parser, strict bool, fn func() T) T {
	saved := p.sc.StrictMode()
	p.sc.SetStrictMode(saved || strict)
	defer p.sc.SetStrictMode(saved)
	return fn()
}
