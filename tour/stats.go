// SPDX-License-Identifier: MIT
// Package tour: leg statistics for score reports.

package tour

import (
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates a leg breakdown.
//
//   - Total equals Evaluator.Cost of the tour the legs came from.
//   - Raw is the unpenalized length; Surcharge = Total − Raw.
//   - Mean, StdDev, Median, P90, P99 and Max describe per-leg Cost.
type Summary struct {
	Legs      int
	Penalized int
	Total     float64
	Raw       float64
	Surcharge float64
	Mean      float64
	StdDev    float64
	Median    float64
	P90       float64
	P99       float64
	Max       float64
}

// Summarize computes a Summary over legs.
//
// Errors: ErrNoLegs for an empty breakdown (a single-city tour has no legs).
//
// Complexity: O(m log m) for m legs (percentiles sort a copy).
func Summarize(legs []Leg) (Summary, error) {
	if len(legs) == 0 {
		return Summary{}, ErrNoLegs
	}

	var (
		s     = Summary{Legs: len(legs)}
		costs = make([]float64, len(legs))
		i     int
		err   error
	)
	for i = range legs {
		costs[i] = legs[i].Cost
		s.Total += legs[i].Cost
		s.Raw += legs[i].Distance
		if legs[i].Penalized {
			s.Penalized++
		}
	}
	s.Surcharge = s.Total - s.Raw

	if len(costs) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(costs, nil)
	} else {
		s.Mean = costs[0]
	}

	if s.Median, err = stats.Median(costs); err != nil {
		return Summary{}, err
	}
	if s.P90, err = stats.Percentile(costs, 90); err != nil {
		return Summary{}, err
	}
	if s.P99, err = stats.Percentile(costs, 99); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(costs); err != nil {
		return Summary{}, err
	}

	return s, nil
}
