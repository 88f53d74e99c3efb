package export

import (
	"encoding/json"
	"fmt"
	"io"

	"seoagent-go/pkg/research"
)

// WriteJSON renders a research result as indented JSON.
func WriteJSON(w io.Writer, result *research.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}

// WriteBatchJSON renders a batch result as indented JSON.
func WriteBatchJSON(w io.Writer, results research.BatchResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode batch results: %w", err)
	}
	return nil
}
