package report

import (
	"math"
	"testing"

	"xpense/internal/model"
)

func TestSummarize(t *testing.T) {
	records := []model.Record{
		{Category: "Food", Description: "Lunch", Amount: 12.50},
		{Category: "Transport", Description: "Bus fare", Amount: 2.25},
		{Category: "Food", Description: "Groceries", Amount: 40.00},
		{Category: "Fun", Description: "Cinema", Amount: 15.00},
	}

	s := Summarize(records)

	if s.Records != 4 {
		t.Errorf("Records = %d, want 4", s.Records)
	}
	if math.Abs(s.GrandTotal-69.75) > 1e-9 {
		t.Errorf("GrandTotal = %v, want 69.75", s.GrandTotal)
	}

	wantOrder := []string{"Food", "Fun", "Transport"}
	if len(s.Categories) != len(wantOrder) {
		t.Fatalf("len(Categories) = %d, want %d", len(s.Categories), len(wantOrder))
	}
	for i, cat := range wantOrder {
		if s.Categories[i].Category != cat {
			t.Errorf("Categories[%d] = %q, want %q (sorted by total desc)", i, s.Categories[i].Category, cat)
		}
	}

	food := s.Categories[0]
	if food.Count != 2 {
		t.Errorf("Food.Count = %d, want 2", food.Count)
	}
	if math.Abs(food.Total-52.50) > 1e-9 {
		t.Errorf("Food.Total = %v, want 52.50", food.Total)
	}
	if math.Abs(food.SharePercent-52.50/69.75*100) > 1e-9 {
		t.Errorf("Food.SharePercent = %v", food.SharePercent)
	}
}

func TestSummarize_TieBrokenByName(t *testing.T) {
	records := []model.Record{
		{Category: "Zoo", Amount: 10},
		{Category: "Art", Amount: 10},
	}

	s := Summarize(records)
	if s.Categories[0].Category != "Art" || s.Categories[1].Category != "Zoo" {
		t.Errorf("tie not broken by name: %+v", s.Categories)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	if len(s.Categories) != 0 || s.GrandTotal != 0 || s.Records != 0 {
		t.Errorf("empty input gave %+v", s)
	}
}

func TestSummarize_ZeroTotal(t *testing.T) {
	// All-zero amounts must not divide by zero when computing shares.
	s := Summarize([]model.Record{{Category: "Free", Amount: 0}})
	if s.Categories[0].SharePercent != 0 {
		t.Errorf("SharePercent = %v, want 0", s.Categories[0].SharePercent)
	}
}
