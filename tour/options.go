// SPDX-License-Identifier: MIT
// Package tour: functional options for Evaluator.
//
// Option constructors validate and PANIC on meaningless inputs; evaluation
// itself never panics on user data.

package tour

import "math"

const (
	// DefaultPeriod is the competition surcharge cadence: every 10th step.
	DefaultPeriod = 10

	// DefaultPenalty is the competition surcharge multiplier (+10%).
	DefaultPenalty = 1.1
)

// Option customizes an Evaluator.
type Option func(*config)

type config struct {
	period  int
	penalty float64
}

func defaultConfig() config {
	return config{period: DefaultPeriod, penalty: DefaultPenalty}
}

// WithPeriod sets the surcharge cadence: steps with step%p == 0 are checked.
// Panics on p < 1.
func WithPeriod(p int) Option {
	if p < 1 {
		panic("tour: WithPeriod(p < 1)")
	}
	return func(c *config) {
		c.period = p
	}
}

// WithPenalty sets the multiplier applied to surcharged legs.
// Panics on values below 1 or non-finite values; a discount is not a penalty.
func WithPenalty(f float64) Option {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 {
		panic("tour: WithPenalty(invalid multiplier)")
	}
	return func(c *config) {
		c.penalty = f
	}
}
