// Package model defines domain types for xpense records.
package model

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Columns is the canonical column order shared by the store file and
// exported reports. Both files use the same layout so they stay
// interchangeable.
var Columns = []string{"category", "description", "amount"}

// Record is a single expense entry. Records are immutable once written;
// their only ordering is file position.
type Record struct {
	Category    string
	Description string
	Amount      float64
}

// ErrInvalidAmount is returned when an amount fails validation at the
// add boundary.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrEmptyCategory is returned when a record has no category.
var ErrEmptyCategory = errors.New("category must not be empty")

// ParseAmount parses and validates an amount string. Amounts must be
// finite and non-negative; read-side parsing is more permissive, this
// guards the write path only.
func ParseAmount(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidAmount, s)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: must not be negative", ErrInvalidAmount)
	}
	return v, nil
}

// Validate checks a record before it is appended to the store.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Category) == "" {
		return ErrEmptyCategory
	}
	if math.IsNaN(r.Amount) || math.IsInf(r.Amount, 0) || r.Amount < 0 {
		return fmt.Errorf("%w: must be a non-negative finite number", ErrInvalidAmount)
	}
	return nil
}

// Fields returns the CSV cells for the record in Columns order.
func (r Record) Fields() []string {
	return []string{r.Category, r.Description, FormatAmount(r.Amount)}
}

// FormatAmount renders an amount the way it is stored on disk.
// Two decimal places keeps export output byte-deterministic.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
