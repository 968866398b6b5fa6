package api

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"newscrub/app/cfg"
	"newscrub/app/ingest"
	"newscrub/app/record"
	"newscrub/app/report"
)

func NewHandler(processor ProcessorInterface) *Handler {
	return &Handler{
		processor: processor,
		reporter:  report.NewGenerator(),
	}
}

// Process runs the cleaning and validation pipeline over a JSON batch
// and returns the partitioned records with the quality summary.
func (h *Handler) Process(c *gin.Context) {
	records, ok := h.readBatch(c)
	if !ok {
		return
	}

	result := h.processor.Run(records)

	c.JSON(http.StatusOK, ProcessResponse{
		Valid:   result.Valid,
		Invalid: result.Invalid,
		Summary: result.Summary,
		Report:  h.reporter.Run(result.Summary),
	})
}

// Report runs the pipeline and returns only the textual quality report.
func (h *Handler) Report(c *gin.Context) {
	records, ok := h.readBatch(c)
	if !ok {
		return
	}

	result := h.processor.Run(records)

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.String(http.StatusOK, h.reporter.Run(result.Summary))
}

func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"version":   cfg.Get().Version,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) readBatch(c *gin.Context) ([]record.Record, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		slog.Error("Failed to read request body", "error", err)
		c.Status(http.StatusBadRequest)
		return nil, false
	}

	records, err := ingest.ParseRecords(body)
	if err != nil {
		slog.Error("Malformed batch rejected", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	return records, true
}
