// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont_test

import (
	"testing"

	"github.com/dcclang/kont"
)

// suspendPlus models what a compiler emits for "1 + suspend(p, body)":
// a Suspend call wrapped in a recover/Push pair that attaches the
// surrounding arithmetic as a pure frame before re-panicking, the way a
// compiler emits push around every direct-style context above a suspend
// point.
func suspendPlus(m *kont.Machine, p kont.Prompt, addend int, body func(func(kont.Value) kont.Value) kont.Value) (result kont.Value) {
	defer func() {
		r := recover()
		s, ok := r.(*kont.Suspension)
		if !ok {
			panic(r)
		}
		panic(kont.Push(s, func(v kont.Value) kont.Value { return addend + v.(int) }))
	}()
	m.Suspend(p, body)
	panic("unreachable")
}

// TestIdentityResume: handle(p, () -> 1 + suspend(p, (k) -> k(2))) == 3.
func TestIdentityResume(t *testing.T) {
	m := kont.NewMachine()
	p := m.FreshPrompt()
	got := m.Handle(p, func() kont.Value {
		return suspendPlus(m, p, 1, func(resume func(kont.Value) kont.Value) kont.Value {
			return resume(2)
		})
	})
	if got != 3 {
		t.Fatalf("got %v, want 3", got)
	}
}

// TestAbort: handle(p, () -> 1 + suspend(p, (_) -> 99)) == 99 — the
// body never calls resume, so the added 1 is discarded along with the
// rest of the continuation.
func TestAbort(t *testing.T) {
	m := kont.NewMachine()
	p := m.FreshPrompt()
	got := m.Handle(p, func() kont.Value {
		return suspendPlus(m, p, 1, func(resume func(kont.Value) kont.Value) kont.Value {
			return 99
		})
	})
	if got != 99 {
		t.Fatalf("got %v, want 99", got)
	}
}

// TestTwice: a multi-shot resume combined with a *10 frame yields
// 10 + 20 == 30.
func TestTwice(t *testing.T) {
	m := kont.NewMachine()
	p := m.FreshPrompt()
	got := m.Handle(p, func() (result kont.Value) {
		defer func() {
			r := recover()
			s, ok := r.(*kont.Suspension)
			if !ok {
				panic(r)
			}
			panic(kont.Push(s, func(v kont.Value) kont.Value { return v.(int) * 10 }))
		}()
		m.Suspend(p, func(resume func(kont.Value) kont.Value) kont.Value {
			return resume(1).(int) + resume(2).(int)
		})
		panic("unreachable")
	})
	if got != 30 {
		t.Fatalf("got %v, want 30", got)
	}
}

// TestNestedPrompts: suspending to an outer prompt from inside an inner
// handler transfers control outward, and resuming re-enters the inner
// handler's scope.
func TestNestedPrompts(t *testing.T) {
	m := kont.NewMachine()
	outer := m.FreshPrompt()
	inner := m.FreshPrompt()
	got := m.Handle(outer, func() kont.Value {
		return m.Handle(inner, func() kont.Value {
			var r kont.Value
			m.Suspend(outer, func(resume func(kont.Value) kont.Value) kont.Value {
				r = resume(7)
				return r
			})
			return r
		})
	})
	if got != 7 {
		t.Fatalf("got %v, want 7", got)
	}
}

// TestRegionSnapshotIsolatesRewind: a continuation captured inside a
// region observes the cell value at capture time even after the outer
// scope mutates the live cell.
func TestRegionSnapshotIsolatesRewind(t *testing.T) {
	m := kont.NewMachine()
	m.FreshRegion()
	defer m.LeaveRegion()
	c := m.Fresh(0)
	p := m.FreshPrompt()

	var resumeFn func(kont.Value) kont.Value
	m.Handle(p, func() kont.Value {
		defer func() {
			r := recover()
			s, ok := r.(*kont.Suspension)
			if !ok {
				panic(r)
			}
			panic(kont.Push(s, func(kont.Value) kont.Value { return c.Read() }))
		}()
		m.Suspend(p, func(resume func(kont.Value) kont.Value) kont.Value {
			resumeFn = resume
			return nil
		})
		panic("unreachable")
	})

	c.Write(5)
	got := resumeFn(nil)
	if got != 0 {
		t.Fatalf("got %v, want 0 (snapshot at capture time)", got)
	}
}

// TestMultiShotRegionEachSeesOwnSnapshot: two invocations of the same
// continuation each restore their own copy of the captured region,
// independent of mutations between invocations.
func TestMultiShotRegionEachSeesOwnSnapshot(t *testing.T) {
	m := kont.NewMachine()
	m.FreshRegion()
	defer m.LeaveRegion()
	c := m.Fresh(0)
	p := m.FreshPrompt()

	var resumeFn func(kont.Value) kont.Value
	m.Handle(p, func() kont.Value {
		defer func() {
			r := recover()
			s, ok := r.(*kont.Suspension)
			if !ok {
				panic(r)
			}
			panic(kont.Push(s, func(kont.Value) kont.Value { return c.Read() }))
		}()
		m.Suspend(p, func(resume func(kont.Value) kont.Value) kont.Value {
			resumeFn = resume
			return nil
		})
		panic("unreachable")
	})

	c.Write(5)
	first := resumeFn(nil)
	c.Write(9)
	second := resumeFn(nil)
	if first != 0 || second != 0 {
		t.Fatalf("got (%v, %v), want (0, 0)", first, second)
	}
}

func TestHandleReturnsDirectlyWhenThunkNeverSuspends(t *testing.T) {
	m := kont.NewMachine()
	p := m.FreshPrompt()
	got := m.Handle(p, func() kont.Value { return "value" })
	if got != "value" {
		t.Fatalf("got %v, want %q", got, "value")
	}
}

func TestUnhandledPromptEscapesAsBareSuspensionWithoutRun(t *testing.T) {
	m := kont.NewMachine()
	p := m.FreshPrompt()
	defer func() {
		r := recover()
		if _, ok := r.(*kont.Suspension); !ok {
			t.Fatalf("expected a bare *Suspension from an unmatched Suspend, got %T", r)
		}
	}()
	m.Suspend(p, func(resume func(kont.Value) kont.Value) kont.Value { return nil })
}

func TestRunConvertsEscapedSuspensionToUnhandledPromptError(t *testing.T) {
	m := kont.NewMachine()
	p := m.FreshPrompt()
	defer func() {
		r := recover()
		err, ok := r.(*kont.UnhandledPromptError)
		if !ok {
			t.Fatalf("expected *UnhandledPromptError, got %T (%v)", r, r)
		}
		if err.Prompt != p {
			t.Fatalf("got prompt %v, want %v", err.Prompt, p)
		}
	}()
	kont.Run(func() kont.Value {
		m.Suspend(p, func(resume func(kont.Value) kont.Value) kont.Value { return nil })
		return nil
	})
}
