// SPDX-License-Identifier: MIT
// Package tour: Kaggle submission files.
//
// Format: a "Path" header followed by one city id per line.
//
//	Path
//	0
//	48816
//	...
//	0

package tour

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/readahead"
)

const (
	// submissionHeader is the single column name of a submission file.
	submissionHeader = "Path"

	// Read-ahead geometry for submission files.
	readBuffers    = 4
	readBufferSize = 1 << 20
)

// LoadSubmission opens path and delegates to ReadSubmission.
func LoadSubmission(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadSubmission(f)
}

// ReadSubmission parses a submission stream into a tour. Blank lines are
// skipped. Ids are parsed as non-negative integers; range checks against a
// table happen later, in Cost or ValidateClosed.
//
// Errors: ErrBadSubmission (wrapped with the line number), ErrEmptyTour, or
// the underlying I/O error.
func ReadSubmission(r io.Reader) ([]int, error) {
	ra, err := readahead.NewReaderSize(r, readBuffers, readBufferSize)
	if err != nil {
		return nil, err
	}
	defer ra.Close()

	sc := bufio.NewScanner(ra)
	var (
		tour   []int
		line   int
		header bool
		text   string
		id     int
	)
	for sc.Scan() {
		line++
		text = strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if text == "" {
			continue
		}
		if !header {
			if !strings.EqualFold(text, submissionHeader) {
				return nil, fmt.Errorf("line %d: %w: header %q, want %q", line, ErrBadSubmission, text, submissionHeader)
			}
			header = true
			continue
		}
		id, err = strconv.Atoi(text)
		if err != nil || id < 0 {
			return nil, fmt.Errorf("line %d: %w: city id %q", line, ErrBadSubmission, text)
		}
		tour = append(tour, id)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if len(tour) == 0 {
		return nil, ErrEmptyTour
	}
	return tour, nil
}
