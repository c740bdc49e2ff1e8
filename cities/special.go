// SPDX-License-Identifier: MIT
// Package cities: special-city membership.

package cities

import (
	"fmt"
	"slices"
)

// SpecialSet is a sorted, duplicate-free set of city ids answering membership
// queries by binary search. The zero value is an empty set.
type SpecialSet struct {
	ids []int
}

// NewSpecialSet copies ids, sorts the copy ascending and rejects duplicates
// or negative ids.
//
// Errors: ErrDuplicateSpecial, ErrNegativeSpecial (wrapped with the id).
//
// Complexity: O(k log k).
func NewSpecialSet(ids []int) (*SpecialSet, error) {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)

	var i int
	for i = range sorted {
		if sorted[i] < 0 {
			return nil, fmt.Errorf("id %d: %w", sorted[i], ErrNegativeSpecial)
		}
		if i > 0 && sorted[i] == sorted[i-1] {
			return nil, fmt.Errorf("id %d: %w", sorted[i], ErrDuplicateSpecial)
		}
	}

	return &SpecialSet{ids: sorted}, nil
}

// NewSpecialSetSorted wraps ids without copying or checking them.
//
// Precondition: ids is sorted ascending and duplicate-free, and the caller
// never writes to it again. An unsorted slice is not detected; Contains then
// silently returns wrong answers.
//
// Complexity: O(1).
func NewSpecialSetSorted(ids []int) *SpecialSet {
	return &SpecialSet{ids: ids}
}

// Contains reports whether id is a special city.
//
// Complexity: O(log k).
func (s *SpecialSet) Contains(id int) bool {
	_, found := slices.BinarySearch(s.ids, id)
	return found
}

// Len returns the number of special cities.
func (s *SpecialSet) Len() int { return len(s.ids) }

// IDs returns a copy of the sorted ids.
func (s *SpecialSet) IDs() []int { return slices.Clone(s.ids) }
