// Package export serializes lookup results to JSON files.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Githu836/Phone-Lookup/internal/batch"
	"github.com/Githu836/Phone-Lookup/internal/lookup"
)

// Record is one exported entry: a result or a per-line failure.
type Record struct {
	Result *lookup.Result `json:"result,omitempty"`
	Input  string         `json:"input,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// FromResult wraps a single successful lookup.
func FromResult(res lookup.Result) []Record {
	return []Record{{Result: &res}}
}

// FromOutcomes converts batch outcomes into records, preserving order.
// Failed outcomes export the original input and the failure reason.
func FromOutcomes(outcomes []batch.Outcome) []Record {
	records := make([]Record, len(outcomes))
	for i, out := range outcomes {
		if out.Failed() {
			records[i] = Record{Input: out.Input, Error: out.Err.Error()}
			continue
		}
		records[i] = Record{Result: out.Result}
	}
	return records
}

// WriteFile writes records as an indented JSON array at path, creating
// parent directories as needed.
func WriteFile(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: creating directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("export: marshaling: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("export: writing %s: %w", path, err)
	}
	return nil
}
