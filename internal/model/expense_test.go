package model

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{"plain", "12.50", 12.50, false},
		{"integer", "7", 7, false},
		{"zero", "0", 0, false},
		{"padded", " 2.25 ", 2.25, false},
		{"negative", "-3", 0, true},
		{"not a number", "lunch", 0, true},
		{"empty", "", 0, true},
		{"nan", "NaN", 0, true},
		{"infinity", "+Inf", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseAmount(%q): want error, got %v", tt.input, got)
				}
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("error = %v, want ErrInvalidAmount", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRecordValidate(t *testing.T) {
	valid := Record{Category: "Food", Description: "Lunch", Amount: 12.50}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate(%+v): %v", valid, err)
	}

	noCat := Record{Amount: 5}
	if !errors.Is(noCat.Validate(), ErrEmptyCategory) {
		t.Error("empty category not rejected")
	}

	negative := Record{Category: "Food", Amount: -1}
	if !errors.Is(negative.Validate(), ErrInvalidAmount) {
		t.Error("negative amount not rejected")
	}
}

func TestRecordFields(t *testing.T) {
	rec := Record{Category: "Food", Description: "Lunch", Amount: 12.5}
	got := rec.Fields()
	want := []string{"Food", "Lunch", "12.50"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Fields()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
