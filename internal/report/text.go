package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cybertec-postgresql/clex/internal/analysis"
)

// TextReporter prints each file as three sections: TOKENS, LEXICAL ERRORS
// (only when there are any) and SYMBOL TABLE ENTRIES. With more than one
// file every block is preceded by a "==> path <==" header.
type TextReporter struct{}

// NewTextReporter creates a new text reporter
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// Format writes the text report
func (r *TextReporter) Format(a *analysis.Analysis, writer io.Writer) error {
	paths := a.SortedPaths()
	for i, path := range paths {
		if len(paths) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(writer); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(writer, "==> %s <==\n", path); err != nil {
				return err
			}
		}
		if err := r.formatFile(a.Files[path], writer); err != nil {
			return err
		}
	}
	return nil
}

func (r *TextReporter) formatFile(f *analysis.FileAnalysis, writer io.Writer) error {
	var b strings.Builder

	b.WriteString("TOKENS\n")
	for _, tok := range f.Tokens {
		fmt.Fprintf(&b, "%s: %s\n", tok.Kind, tok.Text)
	}

	if len(f.Errors) > 0 {
		b.WriteString("\nLEXICAL ERRORS\n")
		for _, e := range f.Errors {
			b.WriteString(e.String())
			b.WriteByte('\n')
		}
	}

	b.WriteString("\nSYMBOL TABLE ENTRIES\n")
	for i, sym := range f.Symbols {
		fmt.Fprintf(&b, "%d) %s\n", i+1, sym)
	}

	_, err := io.WriteString(writer, b.String())
	return err
}

// FormatString returns the text report as a string
func (r *TextReporter) FormatString(a *analysis.Analysis) (string, error) {
	var buf strings.Builder
	if err := r.Format(a, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *TextReporter) Name() string {
	return "text"
}
