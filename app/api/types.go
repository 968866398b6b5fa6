package api

import (
	"newscrub/app/pipeline"
	"newscrub/app/record"
	"newscrub/app/report"
	"newscrub/app/validator"
)

type ProcessorInterface interface {
	Run(records []record.Record) validator.Result
}

var _ ProcessorInterface = (*pipeline.Processor)(nil)

type Handler struct {
	processor ProcessorInterface
	reporter  *report.Generator
}

// ProcessResponse is the POST /process payload: the partitioned batch,
// the aggregate summary, and the rendered quality report.
type ProcessResponse struct {
	Valid   []record.Record           `json:"valid"`
	Invalid []validator.InvalidRecord `json:"invalid"`
	Summary validator.Summary         `json:"summary"`
	Report  string                    `json:"report"`
}
