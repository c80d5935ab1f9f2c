// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Resource safety built on the Error effect: acquire → use → release,
// with release guaranteed to run whether or not use throws. Go's defer
// already gives this guarantee directly, so Bracket is a thin wrapper
// around RunError rather than a fused effect operation.

// Bracket acquires a resource, runs use against it, and releases it
// before returning — even if use throws under prompt. Returns Either
// containing use's result or the error a Throw inside use raised.
func Bracket[E, R, A any](m *Machine, acquire func() R, release func(R), use func(prompt Prompt, r R) A) Either[E, A] {
	r := acquire()
	defer release(r)
	return RunError[E, A](m, func(prompt Prompt) A {
		return use(prompt, r)
	})
}

// OnError runs body under prompt — which must already have an enclosing
// Handle further out on the stack — and, only if it throws, runs
// cleanup before rethrowing the same error to that enclosing Handle.
func OnError[E, A any](m *Machine, prompt Prompt, body func() A, cleanup func(E)) A {
	result := m.Handle(prompt, func() Value {
		return Right[E, A](body())
	}).(Either[E, A])
	if v, ok := result.GetRight(); ok {
		return v
	}
	e, _ := result.GetLeft()
	cleanup(e)
	return Throw[E, A](m, prompt, e)
}
