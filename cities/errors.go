// SPDX-License-Identifier: MIT
// Package cities: sentinel error set.
// Every message is prefixed with "cities: ". Loaders wrap these sentinels with
// positional context via fmt.Errorf("...: %w", ErrX); callers match with errors.Is.

package cities

import "errors"

var (
	// ErrEmptyTable is returned when a table would hold zero cities.
	ErrEmptyTable = errors.New("cities: empty coordinate table")

	// ErrLengthMismatch signals that the X and Y slices differ in length.
	ErrLengthMismatch = errors.New("cities: x/y length mismatch")

	// ErrNonFinite signals a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("cities: non-finite coordinate")

	// ErrDuplicateSpecial signals a repeated id in a special-city list.
	ErrDuplicateSpecial = errors.New("cities: duplicate special city id")

	// ErrNegativeSpecial signals a negative id in a special-city list.
	ErrNegativeSpecial = errors.New("cities: negative special city id")

	// ErrBadRecord signals a malformed or out-of-order row in a cities file.
	ErrBadRecord = errors.New("cities: malformed record")
)
