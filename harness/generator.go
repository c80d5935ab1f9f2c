// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"log/slog"

	"github.com/dcclang/kont"
)

// yieldLoop is what a compiler would emit for a source loop of the
// shape "for i in 0..n { yield i }": each iteration's remaining work —
// the call that advances i and loops again — is captured as a pushed
// frame around the Suspend that produces this iteration's value. slot
// receives the resume closure of whichever Suspend fires, so a caller
// outside the Handle/rewind machinery can drive the loop one step at a
// time without re-entering Handle.
func yieldLoop(m *kont.Machine, log *slog.Logger, prompt kont.Prompt, i, n int, slot *func(kont.Value) kont.Value) (result kont.Value) {
	if i >= n {
		return nil
	}
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s, ok := r.(*kont.Suspension)
		if !ok {
			panic(r)
		}
		panic(kont.Push(s, func(kont.Value) kont.Value {
			return yieldLoop(m, log, prompt, i+1, n, slot)
		}))
	}()
	log.Debug("generator suspending", "index", i)
	m.Suspend(prompt, func(resume func(kont.Value) kont.Value) kont.Value {
		*slot = resume
		return i
	})
	panic("kont: unreachable, Suspend never returns")
}

// Generator pulls values from yieldLoop one at a time. Nothing beyond
// the current value is computed until Next is called again.
type Generator struct {
	resume func(kont.Value) kont.Value
	done   bool
}

// NewGenerator returns a Generator that will yield 0, 1, ..., n-1.
func NewGenerator(m *kont.Machine, log *slog.Logger, n int) *Generator {
	prompt := m.FreshPrompt()
	g := &Generator{}
	g.resume = func(kont.Value) kont.Value {
		return m.Handle(prompt, func() kont.Value {
			return yieldLoop(m, log, prompt, 0, n, &g.resume)
		})
	}
	return g
}

// Next advances the generator and reports its next value, or false
// once the underlying loop has run to completion.
func (g *Generator) Next() (int, bool) {
	if g.done {
		return 0, false
	}
	v := g.resume(nil)
	if v == nil {
		g.done = true
		return 0, false
	}
	return v.(int), true
}
