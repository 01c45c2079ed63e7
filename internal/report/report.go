// Package report aggregates expense records into category summaries.
package report

import (
	"sort"

	"xpense/internal/model"
)

// CategoryTotal holds the aggregate for a single category.
type CategoryTotal struct {
	Category     string
	Count        int
	Total        float64
	SharePercent float64 // 0-100 share of the grand total
}

// Summary is the category breakdown over a record set.
type Summary struct {
	Categories []CategoryTotal
	GrandTotal float64
	Records    int
}

// Summarize groups records by category and sums amounts. Categories are
// sorted by total descending, ties broken by name for stable output.
func Summarize(records []model.Record) Summary {
	byCat := make(map[string]*CategoryTotal)

	var s Summary
	for _, rec := range records {
		ct, ok := byCat[rec.Category]
		if !ok {
			ct = &CategoryTotal{Category: rec.Category}
			byCat[rec.Category] = ct
		}
		ct.Count++
		ct.Total += rec.Amount
		s.GrandTotal += rec.Amount
		s.Records++
	}

	s.Categories = make([]CategoryTotal, 0, len(byCat))
	for _, ct := range byCat {
		s.Categories = append(s.Categories, *ct)
	}
	sort.Slice(s.Categories, func(i, j int) bool {
		if s.Categories[i].Total != s.Categories[j].Total {
			return s.Categories[i].Total > s.Categories[j].Total
		}
		return s.Categories[i].Category < s.Categories[j].Category
	})

	if s.GrandTotal > 0 {
		for i := range s.Categories {
			s.Categories[i].SharePercent = s.Categories[i].Total / s.GrandTotal * 100
		}
	}

	return s
}
