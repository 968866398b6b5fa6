package report

import (
	"fmt"
	"strings"

	"newscrub/app/record"
	"newscrub/app/validator"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Run renders the human-readable quality report for one pipeline pass.
func (g *Generator) Run(summary validator.Summary) string {
	var b strings.Builder

	b.WriteString("Data Quality Report\n")
	b.WriteString("===================\n\n")

	validPct := 0.0
	if summary.Total > 0 {
		validPct = float64(summary.Valid) / float64(summary.Total) * 100
	}
	fmt.Fprintf(&b, "Total records:   %d\n", summary.Total)
	fmt.Fprintf(&b, "Valid records:   %d (%.2f%%)\n", summary.Valid, validPct)
	fmt.Fprintf(&b, "Invalid records: %d\n", summary.Invalid)

	b.WriteString("\nField completeness (valid records):\n")
	for _, field := range record.RecognizedFields {
		fmt.Fprintf(&b, "  %-10s %6.2f%%\n", field, summary.Completeness[field])
	}

	if len(summary.ReasonCounts) > 0 {
		b.WriteString("\nValidation failures by reason:\n")
		for _, rc := range summary.ReasonCounts {
			fmt.Fprintf(&b, "  %-28s %d\n", rc.Reason, rc.Count)
		}
	}

	return b.String()
}
