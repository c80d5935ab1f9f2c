// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Frame is an opaque one-argument function produced by the compiler.
// Applied to a value it either returns a value — the frame's own
// continuation ran to completion — or it panics with a *Suspension,
// meaning the frame itself performed a suspend. The runtime never
// inspects a Frame's body; it only ever applies one.
type Frame func(Value) Value

// Prompt is a process-wide, monotonically increasing identifier for a
// live handler instance. Prompts below firstUserPrompt are reserved for
// the compiler's own built-in prompts; equality is the only operation
// the runtime ever needs on a Prompt.
type Prompt int64

const firstUserPrompt Prompt = 2

// Suspension is the value an in-flight unwind carries. It is transient:
// it exists only for the duration of an unwind and is always consumed
// by either a matching Handle or a rethrow to an enclosing one — no
// long-lived reference to a Suspension is ever kept once Handle or
// rewind has processed it.
type Suspension struct {
	// Prompt is the unwind's target: the prompt whose Handle should
	// catch this suspension.
	Prompt Prompt

	// Body receives the resume closure built once this suspension is
	// captured, and returns the handler's final result.
	Body func(resume func(Value) Value) Value

	// Frames accumulates, via Push, the pure frames that sit between
	// the suspend call site and whichever Handle eventually catches
	// this suspension. Push prepends, so the frame nearest the current
	// point in the unwind is always at index 0.
	Frames []Frame

	// Tail is the portion of the continuation already captured by
	// handlers further out than the current unwind point. It starts
	// empty at the suspend site and grows a new Segment every time an
	// enclosing Handle sees a prompt that does not match its own.
	Tail *Continuation
}

// Continuation is either empty — meaning "return the value directly" —
// or a chain of segments. Invoking a continuation (via rewind) is
// non-destructive: the same *Continuation may be resumed any number of
// times, and each invocation restores its own fresh copy of every
// captured region's state.
type Continuation struct {
	Head *Segment
}

// emptyContinuation is shared by every fresh suspension; it carries no
// state so sharing it is safe.
var emptyContinuation = &Continuation{}

// Segment is one link in a captured continuation. It carries the pure
// frames that ran between two suspension boundaries, the prompt they
// belong to, the region that was current when they were captured, that
// region's snapshot, and the next outer segment (or the empty
// continuation).
type Segment struct {
	Frames []Frame
	Prompt Prompt
	Region *Arena
	Backup []SnapshotThunk
	Tail   *Continuation
}

// Push consumes an in-flight suspension and returns a new suspension
// identical to s except that frame is prepended to the accumulating
// frame list. The compiler emits a Push around every direct-style
// expression that sits above a suspend point, so that by the time a
// suspension reaches a Handle it carries every frame between the
// suspend call and that Handle.
func Push(s *Suspension, frame Frame) *Suspension {
	frames := make([]Frame, 0, len(s.Frames)+1)
	frames = append(frames, frame)
	frames = append(frames, s.Frames...)
	out := acquireSuspension()
	out.Prompt = s.Prompt
	out.Body = s.Body
	out.Frames = frames
	out.Tail = s.Tail
	releaseSuspension(s)
	return out
}

// reverseOnto converts the LIFO accumulation Push produces (newest
// frame at the front) into true application order — the frame nearest
// the suspend point runs first on the resumed value, and rest (only
// ever non-empty when called from a rewind in progress) runs last,
// since rest holds frames from the very same segment that have not
// been applied yet.
func reverseOnto(frames []Frame, rest []Frame) []Frame {
	out := make([]Frame, 0, len(frames)+len(rest))
	for i := len(frames) - 1; i >= 0; i-- {
		out = append(out, frames[i])
	}
	out = append(out, rest...)
	return out
}
