// Package santa scores routes for the Traveling Santa problem.
//
// A route visits cities from a fixed coordinate table. Its score is the sum
// of Euclidean leg lengths, except that every 10th leg is 10% longer unless
// it departs a prime-numbered city.
//
// Layout:
//
//	cities/         — coordinate Table, SpecialSet (prime ids), cities.csv loader
//	tour/           — Evaluator (Cost, Legs, CostAll), validation, statistics, submissions
//	internal/config — YAML configuration for the command
//	cmd/santa       — command-line scorer
//
// Quick start:
//
//	tbl, _ := cities.LoadCSV("cities.csv")
//	ev, _ := tour.NewEvaluator(tbl, cities.PrimeSet(tbl.Len()))
//	path, _ := tour.LoadSubmission("submission.csv")
//	score, err := ev.Cost(path)
//
// Tables are immutable after loading; one Evaluator can score any number of
// tours concurrently.
package santa
