// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package harness

import (
	"log/slog"

	"github.com/dcclang/kont"
)

// DivisionError is what a division-by-zero in RunDivisionPipeline
// throws.
type DivisionError struct {
	Numerator int
}

func (e DivisionError) Error() string {
	return "division by zero"
}

// divide is what a compiler would emit for "a / b, or throw on b==0":
// the safe path returns directly, the throwing path never returns so
// there is nothing to Push around it.
func divide(m *kont.Machine, log *slog.Logger, prompt kont.Prompt, a, b int) int {
	if b == 0 {
		log.Warn("dividing by zero", "numerator", a)
		return kont.Throw[DivisionError, int](m, prompt, DivisionError{Numerator: a})
	}
	return a / b
}

// RunDivisionPipeline divides each numerator in turn by divisor,
// reporting the first division error it hits instead of the full
// slice, or the full slice of quotients if every division succeeded.
func RunDivisionPipeline(m *kont.Machine, log *slog.Logger, numerators []int, divisor int) kont.Either[DivisionError, []int] {
	return kont.RunError[DivisionError](m, func(prompt kont.Prompt) []int {
		quotients := make([]int, len(numerators))
		for i, n := range numerators {
			quotients[i] = divide(m, log, prompt, n, divisor)
		}
		return quotients
	})
}
