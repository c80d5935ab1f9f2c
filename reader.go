// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// Reader effect: read-only access to an environment value, scoped to a
// region the same way State is. Ask never mutates its cell, so no
// control transfer is needed either — RunReader just seeds a cell and
// hands the caller a read-only view of it.

// Env is a read-only handle onto an environment cell.
type Env struct {
	cell *Cell
}

// Ask returns the environment value.
func (e Env) Ask() Value {
	return e.cell.Read()
}

// RunReader allocates a fresh region holding env and runs body against
// a read-only view of it.
func RunReader[E, A any](m *Machine, env E, body func(Env) A) A {
	m.FreshRegion()
	defer m.LeaveRegion()
	c := m.Fresh(env)
	return body(Env{cell: c})
}
