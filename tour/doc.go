// Package tour scores Santa tours: ordered sequences of city ids walked
// through a cities.Table.
//
// Scoring rule:
//
//	total = Σ leg(step),  step = 1..len(tour)-1
//	leg(step) = ‖city(tour[step]) − city(tour[step-1])‖₂
//	          × 1.1  if step%10 == 0 and tour[step-1] is not a special city
//
// The membership test looks at the DEPARTURE city of every 10th leg, not the
// arrival city. Cadence (10) and multiplier (1.1) are configurable through
// WithPeriod and WithPenalty; the defaults reproduce the competition metric.
//
// Entry points:
//   - Evaluator.Cost — the total for one tour (validated, no partial results).
//   - Evaluator.Legs — per-leg breakdown whose costs sum to Cost exactly.
//   - Evaluator.CostAll — concurrent batch evaluation.
//   - Summarize — leg statistics for reports.
//   - ValidateClosed / ReadSubmission — Kaggle submission helpers.
//
// An Evaluator holds only read-only handles and is safe for concurrent use.
//
// Complexity: O(L log k) for a tour of L cities and k special cities.
package tour
