// SPDX-License-Identifier: MIT
// Package tour: sentinel error set.
// Tour-shape errors ("bad tour") and data-handle errors ("bad data") are kept
// distinct so callers can tell them apart with errors.Is.

package tour

import "errors"

var (
	// ErrEmptyTour is returned for a tour with no cities.
	ErrEmptyTour = errors.New("tour: empty tour")

	// ErrInvalidIndex is returned when a tour holds a city id outside the table.
	// It is wrapped with the offending step and id.
	ErrInvalidIndex = errors.New("tour: city id out of range")

	// ErrNotClosed signals a submission that does not start and end at the start city.
	ErrNotClosed = errors.New("tour: tour is not closed at the start city")

	// ErrDuplicateCity signals a city visited twice in a closed tour.
	ErrDuplicateCity = errors.New("tour: city visited more than once")

	// ErrMissingCity signals a closed tour that skips some city.
	ErrMissingCity = errors.New("tour: city never visited")

	// ErrBadSubmission signals a malformed submission file.
	ErrBadSubmission = errors.New("tour: malformed submission")

	// ErrNoLegs is returned when statistics are requested for zero legs.
	ErrNoLegs = errors.New("tour: no legs to summarize")

	// ErrNilTable is returned when an Evaluator is built without coordinates.
	ErrNilTable = errors.New("tour: nil city table")

	// ErrNilSpecials is returned when an Evaluator is built without a special set.
	ErrNilSpecials = errors.New("tour: nil special city set")
)
