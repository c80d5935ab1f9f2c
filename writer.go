// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Writer effect: accumulating output (logging, tracing) alongside a
// computation's result. Tell only ever appends, so — like State and
// Reader — it needs no control transfer, only a cell holding a slice.

// Log is a write-only handle onto an output cell holding a []W.
type Log[W any] struct {
	cell *Cell
}

// Tell appends w to the accumulated output.
func (l Log[W]) Tell(w W) {
	out := Get[[]W](l.cell)
	l.cell.Write(append(out, w))
}

// Listen runs body and returns its result together with exactly the
// output body appended, leaving output from before and after body
// untouched in the enclosing Log.
func Listen[W, A any](l Log[W], body func() A) (A, []W) {
	before := len(Get[[]W](l.cell))
	result := body()
	after := Get[[]W](l.cell)
	written := make([]W, len(after)-before)
	copy(written, after[before:])
	return result, written
}

// Censor runs body, then rewrites whatever output body appended by
// applying f to it.
func Censor[W, A any](l Log[W], f func([]W) []W, body func() A) A {
	before := len(Get[[]W](l.cell))
	result := body()
	after := Get[[]W](l.cell)
	l.cell.Write(append(after[:before:before], f(after[before:])...))
	return result
}

// RunWriter allocates a fresh region holding an empty []W, runs body
// against a Log over it, and returns body's result together with
// everything Tell accumulated.
func RunWriter[W, A any](m *Machine, body func(Log[W]) A) (A, []W) {
	m.FreshRegion()
	defer m.LeaveRegion()
	c := m.Fresh([]W{})
	result := body(Log[W]{cell: c})
	return result, Get[[]W](c)
}
