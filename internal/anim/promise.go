package anim

// Promise resolves once, in the frame its tween or timer finishes. Continuations registered
// with Then run synchronously at resolution, in registration order.
type Promise struct {
	resolved bool
	then     []func()
}

// NewPromise returns an unresolved promise.
func NewPromise() *Promise { return &Promise{} }

// Resolved returns a promise that is already resolved.
func Resolved() *Promise { return &Promise{resolved: true} }

// Done reports whether the promise has resolved.
func (p *Promise) Done() bool { return p.resolved }

// Then registers fn to run on resolution. If p is already resolved fn runs immediately.
func (p *Promise) Then(fn func()) *Promise {
	if fn == nil {
		return p
	}
	if p.resolved {
		fn()
		return p
	}
	p.then = append(p.then, fn)
	return p
}

// Resolve marks p resolved and runs its continuations. Later calls are no-ops.
func (p *Promise) Resolve() {
	if p.resolved {
		return
	}
	p.resolved = true
	then := p.then
	p.then = nil
	for _, fn := range then {
		fn()
	}
}

// Sequence runs steps one after another: step N+1 starts only after step N's promise
// resolved. A nil step or a step returning nil counts as already resolved. The returned
// promise resolves after the last step.
func Sequence(steps ...func() *Promise) *Promise {
	out := NewPromise()
	var run func(i int)
	run = func(i int) {
		for ; i < len(steps); i++ {
			if steps[i] == nil {
				continue
			}
			p := steps[i]()
			if p == nil || p.Done() {
				continue
			}
			next := i + 1
			p.Then(func() { run(next) })
			return
		}
		out.Resolve()
	}
	run(0)
	return out
}
