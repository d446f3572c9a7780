package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cybertec-postgresql/clex/internal/analysis"
)

// JSONReporter formats analysis data as JSON
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Format formats analysis data as JSON and writes to the writer
func (r *JSONReporter) Format(a *analysis.Analysis, writer io.Writer) error {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal analysis to JSON: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns analysis data as a JSON string
func (r *JSONReporter) FormatString(a *analysis.Analysis) (string, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal analysis to JSON: %w", err)
	}
	return string(data), nil
}

// FormatSummary formats per-file counts without the token streams
func (r *JSONReporter) FormatSummary(a *analysis.Analysis) (string, error) {
	summary := make(map[string]interface{})
	summary["version"] = a.Version
	summary["timestamp"] = a.Timestamp
	summary["total_tokens"] = a.TotalTokens()
	summary["total_errors"] = a.TotalErrors()
	summary["symbols"] = a.Symbols()

	files := make(map[string]interface{})
	for path, f := range a.Files {
		kinds := make(map[string]int)
		for k, n := range f.KindCounts() {
			kinds[k.String()] = n
		}
		files[path] = map[string]interface{}{
			"lines":   f.Lines,
			"tokens":  len(f.Tokens),
			"errors":  len(f.Errors),
			"symbols": len(f.Symbols),
			"kinds":   kinds,
		}
	}
	summary["files"] = files

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary to JSON: %w", err)
	}

	return string(data), nil
}

// Name returns the name of this reporter
func (r *JSONReporter) Name() string {
	return "json"
}
