package report

import (
	"fmt"
	"io"

	"github.com/cybertec-postgresql/clex/internal/analysis"
)

// Formatter is an interface for analysis report formatters
type Formatter interface {
	// Format formats analysis data and writes to the writer
	Format(a *analysis.Analysis, writer io.Writer) error

	// FormatString returns analysis data as a string
	FormatString(a *analysis.Analysis) (string, error)

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported report formats
type FormatType string

const (
	FormatText FormatType = "text"
	FormatJSON FormatType = "json"
	FormatHTML FormatType = "html"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextReporter(), nil
	case FormatJSON:
		return NewJSONReporter(), nil
	case FormatHTML:
		return NewHTMLReporter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, html)", format)
	}
}

// FormatToWriter formats analysis data to a writer using the specified format
func FormatToWriter(a *analysis.Analysis, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(a, writer)
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatText, FormatJSON, FormatHTML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatHTML)}
}
