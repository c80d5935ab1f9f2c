// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// State effect: mutable state threaded through a computation via a
// Cell. Unlike Error below, State never needs to transfer control — it
// is ordinary reads and writes against a location the region stack
// already owns, so it is implemented directly against Cell rather than
// through Suspend/Handle.

// Get reads a cell as a typed value, panicking if the cell's current
// contents are not a T.
func Get[T any](c *Cell) T {
	return c.Read().(T)
}

// Put replaces a cell's contents.
func Put[T any](c *Cell, v T) {
	c.Write(v)
}

// Modify applies f to a cell's current contents and writes back the
// result, returning it.
func Modify[T any](c *Cell, f func(T) T) T {
	next := f(Get[T](c))
	c.Write(next)
	return next
}

// RunState allocates a fresh cell holding initial in a new region, runs
// body against it, and returns body's result together with the state
// left in the cell when body returns. The region is left before
// RunState returns, so any continuation body captured while inside it
// still observes the region's state exactly as it was at capture time
// on every future resume — Get/Put/Modify inside a captured, later-
// resumed continuation operate on the restored copy of the cell, not
// the live one.
func RunState[S, A any](m *Machine, initial S, body func(c *Cell) A) (A, S) {
	m.FreshRegion()
	defer m.LeaveRegion()
	c := m.Fresh(initial)
	result := body(c)
	return result, Get[S](c)
}
