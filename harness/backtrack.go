// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"log/slog"

	"github.com/dcclang/kont"
)

// searchFailure marks a dead end; searchSuccess carries the first
// satisfying assignment a search finds.
type searchFailure struct{}
type searchSuccess struct{ x, y int }

// choose is what a compiler would emit for an amb-style choice point:
// "pick one of options, and if the rest of the computation fails,
// backtrack and try the next one." Resuming the captured continuation
// with each option in turn runs the entire remainder of the search
// again; any user-defined region captured with it is reset to its
// capture-time state on every resume, so options do not interfere
// with one another through it.
func choose(m *kont.Machine, log *slog.Logger, prompt kont.Prompt, options []int) int {
	m.Suspend(prompt, func(resume func(kont.Value) kont.Value) kont.Value {
		for _, opt := range options {
			log.Debug("backtrack trying option", "option", opt)
			v := resume(opt)
			if _, failed := v.(searchFailure); !failed {
				return v
			}
		}
		return searchFailure{}
	})
	panic("kont: unreachable, Suspend never returns")
}

// searchBody is what a compiler emits for "let x = choose(xs); check(x,
// choose(ys))": the code that runs after choosing x is captured as a
// pushed frame, since it only executes once resume(x) actually replays
// it.
func searchBody(m *kont.Machine, log *slog.Logger, prompt kont.Prompt, xs, ys []int, target int) kont.Value {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s, ok := r.(*kont.Suspension)
		if !ok {
			panic(r)
		}
		panic(kont.Push(s, func(v kont.Value) kont.Value {
			return checkY(m, log, prompt, v.(int), ys, target)
		}))
	}()
	x := choose(m, log, prompt, xs)
	return checkY(m, log, prompt, x, ys, target)
}

// checkY is what a compiler emits for "let y = choose(ys); if x+y ==
// target then success else fail", with x already fixed by an enclosing
// choice.
func checkY(m *kont.Machine, log *slog.Logger, prompt kont.Prompt, x int, ys []int, target int) kont.Value {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s, ok := r.(*kont.Suspension)
		if !ok {
			panic(r)
		}
		panic(kont.Push(s, func(v kont.Value) kont.Value {
			y := v.(int)
			if x+y == target {
				return searchSuccess{x: x, y: y}
			}
			return searchFailure{}
		}))
	}()
	choose(m, log, prompt, ys)
	panic("kont: unreachable, Suspend never returns")
}

// FindPair searches for one number from xs and one from ys whose sum
// equals target, backtracking through choose whenever a candidate pair
// fails. It returns the first pair found and true, or (0, 0, false) if
// the search space is exhausted.
func FindPair(m *kont.Machine, log *slog.Logger, xs, ys []int, target int) (x, y int, ok bool) {
	prompt := m.FreshPrompt()
	result := m.Handle(prompt, func() kont.Value {
		return searchBody(m, log, prompt, xs, ys, target)
	})
	if v, isPair := result.(searchSuccess); isPair {
		return v.x, v.y, true
	}
	return 0, 0, false
}
