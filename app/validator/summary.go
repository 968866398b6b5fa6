package validator

import (
	"cmp"
	"math"
	"slices"

	"newscrub/app/record"
)

// Summary aggregates one validation pass.
type Summary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
	// Completeness maps each recognized field to the percentage of
	// valid records carrying a non-blank value for it, rounded to two
	// decimals. Zero when there are no valid records.
	Completeness map[string]float64 `json:"completeness"`
	// ReasonCounts ranks reason codes across all invalid records,
	// most frequent first, ties broken by code.
	ReasonCounts []ReasonCount `json:"reason_counts"`
}

type ReasonCount struct {
	Reason string `json:"reason"`
	Count  int    `json:"count"`
}

func buildSummary(valid []record.Record, invalid []InvalidRecord) Summary {
	s := Summary{
		Total:        len(valid) + len(invalid),
		Valid:        len(valid),
		Invalid:      len(invalid),
		Completeness: make(map[string]float64, len(record.RecognizedFields)),
	}

	for _, field := range record.RecognizedFields {
		s.Completeness[field] = completeness(valid, field)
	}

	counts := make(map[string]int)
	for _, inv := range invalid {
		for _, r := range inv.Reasons {
			counts[r.String()]++
		}
	}
	s.ReasonCounts = make([]ReasonCount, 0, len(counts))
	for reason, count := range counts {
		s.ReasonCounts = append(s.ReasonCounts, ReasonCount{Reason: reason, Count: count})
	}
	slices.SortFunc(s.ReasonCounts, func(a, b ReasonCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Reason, b.Reason)
	})

	return s
}

func completeness(valid []record.Record, field string) float64 {
	if len(valid) == 0 {
		return 0
	}
	n := 0
	for _, rec := range valid {
		if rec.Has(field) {
			n++
		}
	}
	return math.Round(float64(n)/float64(len(valid))*10000) / 100
}
