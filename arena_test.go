// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kont_test

import (
	"testing"

	"github.com/dcclang/kont"
)

func TestArenaFreshAppendsInOrder(t *testing.T) {
	a := kont.NewArena()
	c1 := a.Fresh(1)
	c2 := a.Fresh(2)
	if a.Len() != 2 {
		t.Fatalf("got len %d, want 2", a.Len())
	}
	if c1.Read() != 1 || c2.Read() != 2 {
		t.Fatalf("got (%v, %v), want (1, 2)", c1.Read(), c2.Read())
	}
}

func TestArenaSnapshotRestoreRoundTrip(t *testing.T) {
	a := kont.NewArena()
	c1 := a.Fresh(1)
	c2 := a.Fresh(2)
	snap := a.Snapshot()

	c1.Write(100)
	c2.Write(200)
	a.Fresh(3)
	if a.Len() != 3 {
		t.Fatalf("got len %d, want 3", a.Len())
	}

	a.Restore(snap)
	if a.Len() != 2 {
		t.Fatalf("got len %d after restore, want 2", a.Len())
	}
	if c1.Read() != 1 || c2.Read() != 2 {
		t.Fatalf("got (%v, %v), want (1, 2)", c1.Read(), c2.Read())
	}
}

func TestArenaRestoreGrowsWhenSnapshotIsLonger(t *testing.T) {
	a := kont.NewArena()
	a.Fresh(1)
	a.Fresh(2)
	snap := a.Snapshot()

	shrunk := kont.NewArena()
	shrunk.Fresh(9)
	shrunk.Restore(snap)
	if shrunk.Len() != 2 {
		t.Fatalf("got len %d, want 2", shrunk.Len())
	}
}
