// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont_test

import (
	"reflect"
	"testing"

	"github.com/dcclang/kont"
)

func TestRunWriterAccumulatesOutput(t *testing.T) {
	m := kont.NewMachine()
	result, output := kont.RunWriter(m, func(l kont.Log[string]) int {
		l.Tell("a")
		l.Tell("b")
		return 42
	})
	if result != 42 {
		t.Fatalf("got result %v, want 42", result)
	}
	if !reflect.DeepEqual(output, []string{"a", "b"}) {
		t.Fatalf("got output %v, want [a b]", output)
	}
}

func TestListenCapturesOnlyItsOwnOutput(t *testing.T) {
	m := kont.NewMachine()
	_, output := kont.RunWriter(m, func(l kont.Log[string]) int {
		l.Tell("before")
		_, inner := kont.Listen(l, func() int {
			l.Tell("inside")
			return 1
		})
		l.Tell("after")
		if !reflect.DeepEqual(inner, []string{"inside"}) {
			t.Fatalf("got inner %v, want [inside]", inner)
		}
		return 0
	})
	if !reflect.DeepEqual(output, []string{"before", "inside", "after"}) {
		t.Fatalf("got output %v", output)
	}
}

func TestCensorRewritesOwnOutput(t *testing.T) {
	m := kont.NewMachine()
	_, output := kont.RunWriter(m, func(l kont.Log[string]) int {
		kont.Censor(l, func(w []string) []string {
			out := make([]string, len(w))
			for i, s := range w {
				out[i] = s + "!"
			}
			return out
		}, func() int {
			l.Tell("hi")
			return 0
		})
		return 0
	})
	if !reflect.DeepEqual(output, []string{"hi!"}) {
		t.Fatalf("got output %v, want [hi!]", output)
	}
}
