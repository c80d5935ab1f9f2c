// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Value is the type of every value the runtime passes through cells,
// frames, and continuations. The compiler emitting calls against this
// runtime has already checked that every use is well-typed, so Value
// stays untyped here rather than generic.
type Value = any

// Cell is a single mutable location. It is created by the Arena that
// owns it (see Arena.Fresh) and is never constructed directly by user
// code.
//
// A Cell's identity is meaningful: user code holds a *Cell across
// captures and resumptions, so Snapshot restores the value in place
// rather than handing back a copy.
type Cell struct {
	value Value
}

// Read returns the cell's current value.
func (c *Cell) Read() Value {
	return c.value
}

// Write replaces the cell's current value.
func (c *Cell) Write(v Value) {
	c.value = v
}

// SnapshotThunk is a restore function. Calling it writes the captured
// value back into the cell it closed over and returns that cell.
type SnapshotThunk func() *Cell

// Snapshot captures the cell's current value into a closure. Invoking
// the returned thunk any number of times restores the same captured
// value each time — a snapshot is a pure closure over the value at
// capture time, so two snapshots of the same cell taken at different
// moments are entirely independent of one another.
func (c *Cell) Snapshot() SnapshotThunk {
	captured := c.value
	return func() *Cell {
		c.value = captured
		return c
	}
}
