// SPDX-License-Identifier: MIT
// Package cities: Kaggle cities.csv ingestion.
//
// Format (header required, ids dense and ascending from 0):
//
//	CityId,X,Y
//	0,316.836739061509,2202.34070733524
//	1,4377.40597216624,336.602082171235
//
// The reader is wrapped in a read-ahead buffer so parsing overlaps with disk
// reads on the ~200k-row competition file.

package cities

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/readahead"
)

// Read-ahead geometry: readBuffers buffers of readBufferSize bytes each.
const (
	readBuffers    = 4
	readBufferSize = 1 << 20
)

// csvHeader is the expected column order.
var csvHeader = [3]string{"cityid", "x", "y"}

// LoadCSV opens path and delegates to ReadCSV.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadCSV(f)
}

// ReadCSV parses a CityId,X,Y stream into a Table. Row k must carry CityId k.
//
// Errors: ErrBadRecord (wrapped with the line number), ErrEmptyTable,
// ErrNonFinite, or the underlying I/O error.
//
// Complexity: O(N).
func ReadCSV(r io.Reader) (*Table, error) {
	ra, err := readahead.NewReaderSize(r, readBuffers, readBufferSize)
	if err != nil {
		return nil, err
	}
	defer ra.Close()

	cr := csv.NewReader(ra)
	cr.FieldsPerRecord = len(csvHeader)
	cr.ReuseRecord = true

	rec, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("header: %w: %v", ErrBadRecord, err)
	}
	if err = checkHeader(rec); err != nil {
		return nil, err
	}

	var (
		x, y []float64
		id   int
		line = 1
	)
	for {
		rec, err = cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %v", line, ErrBadRecord, err)
		}

		id, err = strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil || id != len(x) {
			return nil, fmt.Errorf("line %d: %w: city id %q, want %d", line, ErrBadRecord, rec[0], len(x))
		}

		var cx, cy float64
		if cx, err = parseCoord(rec[1]); err != nil {
			return nil, fmt.Errorf("line %d: %w: x %q", line, ErrBadRecord, rec[1])
		}
		if cy, err = parseCoord(rec[2]); err != nil {
			return nil, fmt.Errorf("line %d: %w: y %q", line, ErrBadRecord, rec[2])
		}
		x = append(x, cx)
		y = append(y, cy)
	}

	return NewTable(x, y)
}

func checkHeader(rec []string) error {
	var i int
	for i = range csvHeader {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(rec[i], "\ufeff")), csvHeader[i]) {
			return fmt.Errorf("header: %w: column %d is %q, want %q", ErrBadRecord, i, rec[i], csvHeader[i])
		}
	}
	return nil
}

func parseCoord(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
