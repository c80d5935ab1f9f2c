// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Arena is an ordered collection of cells forming one region. Cells are
// appended in creation order by Fresh; Snapshot and Restore walk that
// same order.
type Arena struct {
	cells []*Cell
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Fresh appends a new cell holding init to the arena and returns it.
func (a *Arena) Fresh(init Value) *Cell {
	c := &Cell{value: init}
	a.cells = append(a.cells, c)
	return c
}

// Snapshot returns one restore thunk per existing cell, in creation
// order.
func (a *Arena) Snapshot() []SnapshotThunk {
	out := make([]SnapshotThunk, len(a.cells))
	for i, c := range a.cells {
		out[i] = c.Snapshot()
	}
	return out
}

// Restore reconstructs the arena's cell list by invoking every thunk in
// snap, in order, and replaces the arena's current cells with the
// result. It handles both shrinking (extra current cells are dropped)
// and growing (cells produced by the thunks that did not previously
// exist are adopted) — after Restore, the arena holds exactly the
// cells snap describes, each with the value and identity its thunk
// returns.
func (a *Arena) Restore(snap []SnapshotThunk) {
	cells := make([]*Cell, len(snap))
	for i, thunk := range snap {
		cells[i] = thunk()
	}
	a.cells = cells
}

// Len reports the number of cells currently in the arena.
func (a *Arena) Len() int {
	return len(a.cells)
}
