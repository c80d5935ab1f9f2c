// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// std is the package-level default Machine, standing in for a
// process-wide region stack and prompt counter kept as an explicit
// executor context rather than hidden globals. std is that context for
// callers who do not need isolation from one another (tests that do
// want isolation construct their own Machine with NewMachine).
var std = NewMachine()

// FreshPrompt allocates a new, globally unique prompt on the default
// Machine.
func FreshPrompt() Prompt { return std.FreshPrompt() }

// Fresh allocates a cell in the default Machine's current region.
func Fresh(init Value) *Cell { return std.Fresh(init) }

// Global returns the default Machine's global arena.
func Global() *Arena { return std.Global() }

// FreshRegion creates a new arena and makes it current on the default
// Machine.
func FreshRegion() *Arena { return std.FreshRegion() }

// LeaveRegion pops the default Machine's region stack.
func LeaveRegion() *Arena { return std.LeaveRegion() }

// Suspend begins an unwind on the default Machine targeting prompt.
func Suspend(prompt Prompt, body func(resume func(Value) Value) Value) {
	std.Suspend(prompt, body)
}

// Handle runs thunk on the default Machine, catching suspensions
// targeting prompt.
func Handle(prompt Prompt, thunk func() Value) Value {
	return std.Handle(prompt, thunk)
}
