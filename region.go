// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

// RegionStack is a stack of active arenas plus a distinguished current
// arena. It belongs to a single Machine; nothing here is safe for
// concurrent use, matching the single-threaded, cooperative execution
// model the runtime assumes throughout.
//
// The global arena sits at the bottom of the stack and is current
// exactly when no user-defined region is active. It is never pushed
// below itself and is never captured by any continuation.
type RegionStack struct {
	global  *Arena
	current *Arena
	stack   []*Arena
}

// NewRegionStack returns a region stack whose current (and only)
// arena is a fresh global arena.
func NewRegionStack() *RegionStack {
	g := NewArena()
	return &RegionStack{global: g, current: g}
}

// Global returns the distinguished global arena.
func (r *RegionStack) Global() *Arena {
	return r.global
}

// Current returns the arena that is current right now.
func (r *RegionStack) Current() *Arena {
	return r.current
}

// EnterRegion pushes the current arena and makes a the current arena,
// returning a.
func (r *RegionStack) EnterRegion(a *Arena) *Arena {
	r.stack = append(r.stack, r.current)
	r.current = a
	return a
}

// LeaveRegion pops the region stack, restoring whatever arena was
// current before the matching EnterRegion, and returns the arena that
// was current just before the pop (the one being left).
func (r *RegionStack) LeaveRegion() *Arena {
	leaving := r.current
	n := len(r.stack)
	r.current = r.stack[n-1]
	r.stack = r.stack[:n-1]
	return leaving
}

// FreshInCurrent allocates a fresh cell against whichever arena is
// current right now.
func (r *RegionStack) FreshInCurrent(init Value) *Cell {
	return r.current.Fresh(init)
}
