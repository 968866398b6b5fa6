package pipeline

import (
	"log/slog"
	"time"

	"newscrub/app/cleaner"
	"newscrub/app/record"
	"newscrub/app/validator"
)

// Processor runs the two pipeline stages in sequence: clean, then
// validate. The stages stay independently callable; the processor only
// owns the sequencing.
type Processor struct {
	cleaner   *cleaner.Cleaner
	validator *validator.Validator
}

func NewProcessor(c *cleaner.Cleaner, v *validator.Validator) *Processor {
	return &Processor{cleaner: c, validator: v}
}

// Run processes one batch of raw records.
func (p *Processor) Run(records []record.Record) validator.Result {
	startTime := time.Now()

	cleaned := p.cleaner.Run(records)
	result := p.validator.Run(cleaned)

	slog.Info("Batch processed",
		"total", result.Summary.Total,
		"valid", result.Summary.Valid,
		"invalid", result.Summary.Invalid,
		"duration", time.Since(startTime))

	return result
}
