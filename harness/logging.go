// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package harness stands in for the compiler that would otherwise emit
// Suspend/Push pairs around every direct-style expression above a
// suspend point. It hand-writes that pattern for three small programs —
// a generator, an exception handler, and a backtracking search — so the
// runtime in the parent package can be exercised end to end.
package harness

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Diagnostics retains a JSON copy of every record the demo logs,
// alongside the human-readable stream written to stderr. It is the
// in-process stand-in for the durable sink half of a terminal+journal
// fan-out; a deployed service would replace this second leg with
// whatever log store it ships to.
type Diagnostics struct {
	buf *bytes.Buffer
}

// String returns the accumulated JSON log, newline-delimited.
func (d *Diagnostics) String() string {
	return d.buf.String()
}

// NewLogger builds a fan-out logger: one handler renders text to
// stderr for a human running the binary, the other renders JSON into
// an in-memory Diagnostics for post-run inspection. level controls
// both handlers.
func NewLogger(level slog.Leveler) (*slog.Logger, *Diagnostics) {
	buf := &bytes.Buffer{}
	terminal := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	journal := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: level})
	handler := slogmulti.Fanout(terminal, journal)
	return slog.New(handler), &Diagnostics{buf: buf}
}

// WrapEscapedPanic folds a recovered top-level panic value for scenario
// into a single error, joining a description of which scenario failed
// with whatever the panic carried.
func WrapEscapedPanic(scenario string, r any) error {
	err, ok := r.(error)
	if !ok {
		err = fmt.Errorf("%v", r)
	}
	return errors.Join(fmt.Errorf("scenario %s panicked", scenario), err)
}
