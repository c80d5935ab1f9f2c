// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command kontdemo drives three small hand-written programs — a
// generator, an exception pipeline, and a backtracking search — over
// the delimited-control runtime, and a trampoline stack-safety check.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dcclang/kont"
	"github.com/dcclang/kont/harness"
)

func main() {
	scenario := flag.String("scenario", "all", "which demo to run: generator, exceptions, backtrack, trampoline, or all")
	logLevel := flag.String("log-level", "info", "minimum log level: debug, info, warn, error")
	genCount := flag.Int("generator-count", 5, "how many values the generator scenario yields")
	trampolineSteps := flag.Int("trampoline-steps", 1_000_000, "how many Step values the trampoline scenario drives")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "kontdemo: %v\n", err)
		os.Exit(2)
	}
	log, diagnostics := harness.NewLogger(level)

	run := func(name string, fn func()) {
		defer func() {
			if r := recover(); r != nil {
				log.Error("scenario aborted", "scenario", name, "error", harness.WrapEscapedPanic(name, r))
			}
		}()
		fn()
	}

	scenarios := map[string]func(){
		"generator":  func() { runGenerator(log, *genCount) },
		"exceptions": func() { runExceptions(log) },
		"backtrack":  func() { runBacktrack(log) },
		"trampoline": func() { runTrampoline(log, *trampolineSteps) },
	}

	if *scenario == "all" {
		for _, name := range []string{"generator", "exceptions", "backtrack", "trampoline"} {
			run(name, scenarios[name])
		}
	} else {
		fn, ok := scenarios[*scenario]
		if !ok {
			fmt.Fprintf(os.Stderr, "kontdemo: unknown scenario %q\n", *scenario)
			os.Exit(2)
		}
		run(*scenario, fn)
	}

	log.Info("run complete", "diagnostics_bytes", len(diagnostics.String()))
}

func runGenerator(log *slog.Logger, n int) {
	m := kont.NewMachine()
	gen := harness.NewGenerator(m, log, n)
	var values []int
	for {
		v, ok := gen.Next()
		if !ok {
			break
		}
		values = append(values, v)
	}
	log.Info("generator scenario finished", "values", values)
}

func runExceptions(log *slog.Logger) {
	m := kont.NewMachine()
	result := harness.RunDivisionPipeline(m, log, []int{10, 20, 0, 40}, 2)
	if v, ok := result.GetRight(); ok {
		log.Info("exception scenario finished", "quotients", v)
		return
	}
	e, _ := result.GetLeft()
	log.Info("exception scenario caught division error", "numerator", e.Numerator)
}

func runBacktrack(log *slog.Logger) {
	m := kont.NewMachine()
	x, y, ok := harness.FindPair(m, log, []int{1, 2, 3, 4}, []int{10, 20, 30}, 24)
	if !ok {
		log.Info("backtrack scenario found no pair")
		return
	}
	log.Info("backtrack scenario found pair", "x", x, "y", y)
}

func runTrampoline(log *slog.Logger, steps int) {
	var countdown func(kont.Value) kont.Value
	countdown = func(v kont.Value) kont.Value {
		n := v.(int)
		if n == 0 {
			return "done"
		}
		return kont.Step{Computation: countdown, Kont: n - 1}
	}
	result := kont.Trampoline(kont.TrampolineRequest{Computation: countdown, Kont: steps})
	log.Info("trampoline scenario finished", "steps", steps, "result", result)
}
