// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Error effect: exception-like non-local exit. Unlike State/Reader/
// Writer, Throw genuinely needs control transfer — it must unwind past
// arbitrary intervening work straight to the matching Catch — so it is
// built directly on Suspend/Handle rather than on a Cell. A Throw's
// handler body ignores its resume argument: throwing is one-shot by
// nature: an Abort, not a resumption.

// Either represents a value that is either Left (error) or Right
// (success).
type Either[E, A any] struct {
	isRight bool
	left    E
	right   A
}

// Left creates a Left (error) value.
func Left[E, A any](e E) Either[E, A] {
	return Either[E, A]{left: e}
}

// Right creates a Right (success) value.
func Right[E, A any](a A) Either[E, A] {
	return Either[E, A]{isRight: true, right: a}
}

// IsRight reports whether e is a Right value.
func (e Either[E, A]) IsRight() bool { return e.isRight }

// IsLeft reports whether e is a Left value.
func (e Either[E, A]) IsLeft() bool { return !e.isRight }

// GetRight returns the Right value and true, or zero and false.
func (e Either[E, A]) GetRight() (A, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero A
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[E, A]) GetLeft() (E, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero E
	return zero, false
}

// MapEither applies f to a Right value, passing a Left through
// unchanged.
func MapEither[E, A, B any](e Either[E, A], f func(A) B) Either[E, B] {
	if e.isRight {
		return Right[E](f(e.right))
	}
	return Left[E, B](e.left)
}

// FlatMapEither sequences two Either-producing computations.
func FlatMapEither[E, A, B any](e Either[E, A], f func(A) Either[E, B]) Either[E, B] {
	if e.isRight {
		return f(e.right)
	}
	return Left[E, B](e.left)
}

// Throw aborts the computation running under RunError on prompt with
// err. The continuation between Throw and RunError is discarded; its
// captured region snapshots, if any were taken, simply become garbage.
func Throw[E, A any](m *Machine, prompt Prompt, err E) A {
	m.Suspend(prompt, func(resume func(Value) Value) Value {
		return Left[E, A](err)
	})
	panic("kont: unreachable, Suspend never returns")
}

// RunError runs body under a fresh prompt and reports either the value
// body returns or the error a nested Throw against that same prompt
// raised.
func RunError[E, A any](m *Machine, body func(prompt Prompt) A) Either[E, A] {
	prompt := m.FreshPrompt()
	result := m.Handle(prompt, func() Value {
		return Right[E, A](body(prompt))
	})
	return result.(Either[E, A])
}

// Catch runs body under RunError and, if it threw, applies recover to
// the error instead of propagating it.
func Catch[E, A any](m *Machine, body func(prompt Prompt) A, recover func(E) A) A {
	result := RunError[E, A](m, body)
	if v, ok := result.GetRight(); ok {
		return v
	}
	e, _ := result.GetLeft()
	return recover(e)
}
