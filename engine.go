// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

import "sync/atomic"

// Machine is the process-wide mutable state a single execution thread
// needs to run this runtime: a prompt counter and a region stack. It is
// an explicit executor context rather than hidden package-level globals
// (see DESIGN.md, Open Question 4). A Machine is not safe for
// concurrent use — the runtime's scheduling model is single-threaded
// and cooperative by design.
type Machine struct {
	prompts atomic.Int64
	regions *RegionStack
}

// NewMachine returns a Machine with an empty global arena and a prompt
// counter that will hand out firstUserPrompt on its first FreshPrompt
// call.
func NewMachine() *Machine {
	m := &Machine{regions: NewRegionStack()}
	m.prompts.Store(int64(firstUserPrompt) - 1)
	return m
}

// FreshPrompt allocates a new, globally unique prompt.
func (m *Machine) FreshPrompt() Prompt {
	return Prompt(m.prompts.Add(1))
}

// Fresh allocates a cell in whichever region is current right now.
func (m *Machine) Fresh(init Value) *Cell {
	return m.regions.FreshInCurrent(init)
}

// Global returns the distinguished global arena.
func (m *Machine) Global() *Arena {
	return m.regions.Global()
}

// FreshRegion creates a new arena and makes it current.
func (m *Machine) FreshRegion() *Arena {
	return m.regions.EnterRegion(NewArena())
}

// LeaveRegion pops the region stack and returns the arena that was
// current before the pop.
func (m *Machine) LeaveRegion() *Arena {
	return m.regions.LeaveRegion()
}

// Suspend begins an unwind targeting prompt, carrying body. It never
// returns: it panics with a fresh *Suspension that unwinds every
// pending pure frame up to the matching Handle. No pure frame has been
// collected yet at the suspend site itself — frames accumulate only as
// the panic passes through compiler-emitted Push calls on its way out.
func (m *Machine) Suspend(prompt Prompt, body func(resume func(Value) Value) Value) {
	s := acquireSuspension()
	s.Prompt = prompt
	s.Body = body
	s.Frames = nil
	s.Tail = emptyContinuation
	panic(s)
}

// Handle runs thunk. If thunk returns normally, that value is the
// result. If thunk panics with a *Suspension whose prompt matches,
// Handle captures the continuation between the suspend site and here
// and invokes the suspension's body with a resume function closed over
// it. If the suspension targets some other prompt, Handle contributes
// a segment of its own (empty, since it caught the panic directly
// rather than from within a rewind) and re-panics so an enclosing
// Handle can inspect it in turn.
//
// A panic that is not a *Suspension is not this runtime's concern —
// this runtime's own failure modes are Hole and an escaping unmatched
// prompt; anything else is a bug in the calling code or a third-party
// panic and is left to propagate unchanged.
func (m *Machine) Handle(prompt Prompt, thunk func() Value) (result Value) {
	region := m.regions.Current()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		susp, ok := r.(*Suspension)
		if !ok {
			panic(r)
		}
		result = m.handleOrRethrow(prompt, susp, nil, region)
	}()
	return thunk()
}

// handleOrRethrow is the shared helper behind both Handle and rewind: a
// rewind is, for each of its frames, effectively a new handle for the
// segment's prompt, so both paths fold into this one dispatch. rest is
// the caller's own not-yet-applied pure frames —
// empty when called from Handle, and the tail of a segment's frame
// list when called from a rewind that a frame suspended out of midway
// through.
func (m *Machine) handleOrRethrow(prompt Prompt, susp *Suspension, rest []Frame, region *Arena) Value {
	if susp.Prompt == prompt {
		seg := &Segment{
			Frames: reverseOnto(susp.Frames, rest),
			Prompt: prompt,
			Region: region,
			Backup: region.Snapshot(),
			Tail:   susp.Tail,
		}
		k := &Continuation{Head: seg}
		body := susp.Body
		releaseSuspension(susp)
		return body(func(v Value) Value { return m.rewind(k, v) })
	}

	seg := &Segment{
		Frames: rest,
		Prompt: prompt,
		Region: region,
		Backup: region.Snapshot(),
		Tail:   susp.Tail,
	}
	out := acquireSuspension()
	out.Prompt = susp.Prompt
	out.Body = susp.Body
	out.Frames = susp.Frames
	out.Tail = &Continuation{Head: seg}
	releaseSuspension(susp)
	panic(out)
}

// rewind resumes continuation k with value v. An empty continuation
// returns v directly — this is how a handler body that simply resumes
// to completion produces its final result. Otherwise rewind enters the
// head segment's region, restores it from the segment's backup (unless
// that region is the global arena, which no continuation captures),
// recursively rewinds the tail, and applies the segment's frames in
// order to the result, threading each frame's output into the next.
//
// Because rewind is non-destructive, every invocation restores its own
// fresh copy of a user region's state: mutations one invocation makes
// to that region are invisible to the next, and a continuation may be
// resumed any number of times.
func (m *Machine) rewind(k *Continuation, v Value) Value {
	if k == nil || k.Head == nil {
		return v
	}
	seg := k.Head
	m.regions.EnterRegion(seg.Region)
	if seg.Region != m.regions.Global() {
		seg.Region.Restore(seg.Backup)
	}
	defer m.regions.LeaveRegion()
	return m.applySegment(seg, v)
}

// applySegment runs seg's frames over the value produced by rewinding
// its tail. If a frame panics with a suspension, the frames after the
// one that panicked have not run yet — the recover below captures
// exactly that remainder and hands it to handleOrRethrow as rest,
// which is what lets a segment's own frames survive a suspend/resume
// round trip through one of its later frames.
func (m *Machine) applySegment(seg *Segment, v Value) (result Value) {
	// current holds the index of whichever frame is executing right
	// now, or -1 while still rewinding the tail. On panic, everything
	// strictly after that index has not run yet.
	current := -1
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		susp, ok := r.(*Suspension)
		if !ok {
			panic(r)
		}
		result = m.handleOrRethrow(seg.Prompt, susp, seg.Frames[current+1:], seg.Region)
	}()
	curr := m.rewind(seg.Tail, v)
	for i, f := range seg.Frames {
		current = i
		curr = f(curr)
	}
	return curr
}
