package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"newscrub/app/record"
)

// ErrNotRecordShaped signals structurally invalid input: the batch
// must be a JSON array of flat objects with string (or null) values.
// This is a caller mistake and aborts the run, unlike data-quality
// findings which are reported per record.
var ErrNotRecordShaped = errors.New("input is not a JSON array of flat string records")

// LoadFile reads a batch of raw records from a JSON file.
func LoadFile(path string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseRecords(data)
}

// ParseRecords decodes a JSON batch. Null values are treated as absent
// fields; any non-string value makes the whole batch invalid.
func ParseRecords(data []byte) ([]record.Record, error) {
	var raw []map[string]*string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRecordShaped, err)
	}

	records := make([]record.Record, 0, len(raw))
	for _, fields := range raw {
		rec := make(record.Record, len(fields))
		for key, value := range fields {
			if value != nil {
				rec[key] = *value
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
