// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Step is what a compiler-emitted tail call returns when it cannot
// otherwise shrink its own native call frame. Computation receives Kont
// and either produces a final Value or another Step, letting Trampoline
// keep driving without growing the Go call stack.
type Step struct {
	Computation func(kont Value) Value
	Kont        Value
}

// TrampolineRequest is the argument Trampoline drives: an initial
// computation and the continuation value it is applied to. Kept as its
// own type so a caller can build one once and hand it to Trampoline
// without repeating the two arguments.
type TrampolineRequest struct {
	Computation func(kont Value) Value
	Kont        Value
}

// Trampoline repeatedly applies r.Computation to r.Kont. Each
// application either returns a final Value or a Step describing the
// next application; Trampoline loops on the latter and returns on the
// former, bounding native stack growth to O(1) regardless of how many
// tail calls the underlying computation makes.
func Trampoline(r TrampolineRequest) Value {
	result := r.Computation(r.Kont)
	for {
		step, ok := result.(Step)
		if !ok {
			return result
		}
		result = step.Computation(step.Kont)
	}
}
