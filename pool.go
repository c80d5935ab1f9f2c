// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

import "sync"

// Suspension pooling.
//
// A *Suspension is genuinely affine: transient, and consumed by either a
// matching handle or a rethrow outward. By the time handleOrRethrow has
// read Body, Frames, and Tail out of one, the struct itself is garbage —
// unlike *Segment and *Continuation, which are reachable from a
// resumable, multi-shot continuation for as long as a caller keeps it
// around and so must never be pooled (reusing a live Segment node would
// corrupt every future resumption of that continuation).
var suspensionPool = sync.Pool{New: func() any { return new(Suspension) }}

func acquireSuspension() *Suspension {
	return suspensionPool.Get().(*Suspension)
}

func releaseSuspension(s *Suspension) {
	s.Prompt = 0
	s.Body = nil
	s.Frames = nil
	s.Tail = nil
	suspensionPool.Put(s)
}
