// Package benchmark times a disabled DebugLogger against the standard
// library's structured logger.
//
// Each case is run for a number of rounds of a fixed number of
// iterations. Round durations are measured with the monotonic clock and
// averaged; nothing finer than wall-clock time per round is collected.
package benchmark

import (
	"context"
	"fmt"
	"time"

	"github.com/maksimkurb/debug-tools/src/internal/errors"
	"github.com/maksimkurb/debug-tools/src/internal/log"
)

// Case is one function under test. Run must perform exactly iterations
// logging calls.
type Case struct {
	Name string
	Run  func(iterations int)
}

// Result holds the timings of one case.
type Result struct {
	Name       string
	Iterations int
	Rounds     []time.Duration
	Total      time.Duration
}

// Average returns the mean round duration.
func (r *Result) Average() time.Duration {
	if len(r.Rounds) == 0 {
		return 0
	}
	return r.Total / time.Duration(len(r.Rounds))
}

// PerCall returns the mean cost of a single logging call.
func (r *Result) PerCall() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Average() / time.Duration(r.Iterations)
}

// Comparison holds the results of two cases run with the same parameters.
type Comparison struct {
	First  *Result
	Second *Result
}

// Difference is the first case's average round minus the second's.
func (c *Comparison) Difference() time.Duration {
	return c.First.Average() - c.Second.Average()
}

// Profile runs c for the given number of rounds. The context is checked
// between rounds.
func Profile(ctx context.Context, c Case, rounds, iterations int) (*Result, error) {
	if rounds < 1 || iterations < 1 {
		return nil, errors.NewBenchmarkError(
			fmt.Sprintf("rounds and iterations must be positive, got %d and %d", rounds, iterations), nil)
	}
	if c.Run == nil {
		return nil, errors.NewBenchmarkError("case "+c.Name+" has no function", nil)
	}

	result := &Result{
		Name:       c.Name,
		Iterations: iterations,
		Rounds:     make([]time.Duration, 0, rounds),
	}

	for index := 0; index < rounds; index++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.NewBenchmarkError("benchmark of "+c.Name+" cancelled", err)
		}

		start := time.Now()
		c.Run(iterations)
		elapsed := time.Since(start)

		result.Rounds = append(result.Rounds, elapsed)
		result.Total += elapsed

		log.Infof("Profiled %.3f seconds at %d for %s", result.Total.Seconds(), index, c.Name)
	}

	return result, nil
}

// Compare profiles first and then second with the same parameters.
func Compare(ctx context.Context, first, second Case, rounds, iterations int) (*Comparison, error) {
	firstResult, err := Profile(ctx, first, rounds, iterations)
	if err != nil {
		return nil, err
	}

	secondResult, err := Profile(ctx, second, rounds, iterations)
	if err != nil {
		return nil, err
	}

	return &Comparison{First: firstResult, Second: secondResult}, nil
}
