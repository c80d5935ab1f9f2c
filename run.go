// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont

import "fmt"

// UnhandledPromptError reports a suspension that escaped every Handle on
// the stack. Run converts the bare *Suspension panic into this typed
// error rather than letting it propagate as an opaque value.
type UnhandledPromptError struct {
	Prompt Prompt
}

func (e *UnhandledPromptError) Error() string {
	return fmt.Sprintf("kont: suspension targeting prompt %d escaped every handle", e.Prompt)
}

// Run executes thunk as a top-level computation. It is the boundary a
// hosting Go program (or the demo harness standing in for the compiler)
// calls into instead of invoking thunk directly, so that a suspension
// with no matching Handle anywhere on the stack surfaces as a typed
// *UnhandledPromptError panic instead of a bare *Suspension.
func Run(thunk func() Value) (result Value) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if s, ok := r.(*Suspension); ok {
			panic(&UnhandledPromptError{Prompt: s.Prompt})
		}
		panic(r)
	}()
	return thunk()
}
