// Package store provides append-only CSV persistence for expense records.
package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"xpense/internal/model"
)

// ErrMalformedRow is returned (wrapped, with a line number) when a store
// row does not parse and strict mode is enabled.
var ErrMalformedRow = errors.New("malformed row")

// Store persists expense records to a delimited text file. The path is
// injected at construction; there is no package-level file state.
type Store struct {
	path   string
	strict bool
}

// New returns a Store backed by the file at path. With strict set, List
// fails on the first malformed row instead of skipping it.
func New(path string, strict bool) *Store {
	return &Store{path: path, strict: strict}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// LoadResult holds the output of reading the store file.
type LoadResult struct {
	Records []model.Record
	// Skipped counts malformed rows dropped in permissive mode.
	Skipped int
}

// Add appends one record to the store file, creating it with a header
// line when absent or empty. Write failures are surfaced to the caller.
func (s *Store) Add(rec model.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening store %s: %w", s.path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	fi, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat store %s: %w", s.path, err)
	}
	if fi.Size() == 0 {
		if err := w.Write(model.Columns); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := w.Write(rec.Fields()); err != nil {
		return fmt.Errorf("appending record: %w", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("appending record: %w", err)
	}
	return nil
}

// List reads the whole store file in row order. A missing file means no
// records yet and yields an empty result, not an error. An optional
// header line (detected by column names) is skipped.
func (s *Store) List() (*LoadResult, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadResult{}, nil
		}
		return nil, fmt.Errorf("opening store %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // field-count errors are our policy call, not the reader's

	result := &LoadResult{}
	line := 0
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Quoting errors from the csv reader count as malformed rows.
			line++
			if s.strict {
				return nil, fmt.Errorf("%s line %d: %w: %v", s.path, line, ErrMalformedRow, err)
			}
			result.Skipped++
			continue
		}
		line++

		if line == 1 && isHeader(row) {
			continue
		}

		rec, ok := parseRow(row)
		if !ok {
			if s.strict {
				return nil, fmt.Errorf("%s line %d: %w: %q", s.path, line, ErrMalformedRow, strings.Join(row, ","))
			}
			result.Skipped++
			continue
		}
		result.Records = append(result.Records, rec)
	}

	return result, nil
}

// parseRow converts one CSV row into a typed record at the boundary.
// Read-side amount parsing is permissive: any float is accepted.
func parseRow(row []string) (model.Record, bool) {
	if len(row) != len(model.Columns) {
		return model.Record{}, false
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
	if err != nil {
		return model.Record{}, false
	}
	return model.Record{
		Category:    row[0],
		Description: row[1],
		Amount:      amount,
	}, true
}

// isHeader reports whether a first row names the canonical columns.
func isHeader(row []string) bool {
	if len(row) != len(model.Columns) {
		return false
	}
	for i, col := range model.Columns {
		if !strings.EqualFold(strings.TrimSpace(row[i]), col) {
			return false
		}
	}
	return true
}
