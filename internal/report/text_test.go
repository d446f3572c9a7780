package report

import (
	"strings"
	"testing"

	"github.com/cybertec-postgresql/clex/internal/analysis"
	"github.com/cybertec-postgresql/clex/internal/lexer"
)

// newTestAnalysis tokenizes each source and stores it under its path
func newTestAnalysis(t *testing.T, sources map[string]string) *analysis.Analysis {
	t.Helper()
	a := analysis.NewAnalysis()
	for path, src := range sources {
		a.AddResult(path, lexer.Tokenize(src))
	}
	return a
}

func TestTextReporter_SingleFile(t *testing.T) {
	a := newTestAnalysis(t, map[string]string{
		"main.c": "int x = 5; // set x",
	})

	output, err := NewTextReporter().FormatString(a)
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}

	expected := "TOKENS\n" +
		"Keyword: int\n" +
		"Identifier: x\n" +
		"Operator: =\n" +
		"Constant: 5\n" +
		"Punctuation: ;\n" +
		"\nSYMBOL TABLE ENTRIES\n" +
		"1) x\n"

	if output != expected {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", output, expected)
	}
}

func TestTextReporter_LexicalErrors(t *testing.T) {
	a := newTestAnalysis(t, map[string]string{
		"bad.c": "count 123abc;",
	})

	output, err := NewTextReporter().FormatString(a)
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}

	if !strings.Contains(output, "\nLEXICAL ERRORS\n123abc invalid lexeme\n") {
		t.Errorf("missing lexical error section:\n%s", output)
	}

	errIdx := strings.Index(output, "LEXICAL ERRORS")
	symIdx := strings.Index(output, "SYMBOL TABLE ENTRIES")
	if errIdx < 0 || symIdx < errIdx {
		t.Errorf("LEXICAL ERRORS should precede SYMBOL TABLE ENTRIES:\n%s", output)
	}

	if !strings.Contains(output, "1) count\n") {
		t.Errorf("missing symbol entry:\n%s", output)
	}
}

func TestTextReporter_NoErrorSectionWhenClean(t *testing.T) {
	a := newTestAnalysis(t, map[string]string{"ok.c": "a = b;"})

	output, err := NewTextReporter().FormatString(a)
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	if strings.Contains(output, "LEXICAL ERRORS") {
		t.Errorf("clean file should not print an error section:\n%s", output)
	}
}

func TestTextReporter_MultipleFiles(t *testing.T) {
	a := newTestAnalysis(t, map[string]string{
		"b.c": "int b;",
		"a.c": "int a;",
	})

	output, err := NewTextReporter().FormatString(a)
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}

	aIdx := strings.Index(output, "==> a.c <==")
	bIdx := strings.Index(output, "==> b.c <==")
	if aIdx < 0 || bIdx < 0 {
		t.Fatalf("missing file headers:\n%s", output)
	}
	if aIdx > bIdx {
		t.Errorf("files should be printed in path order:\n%s", output)
	}
	if !strings.Contains(output, "1) a\n\n==> b.c <==") {
		t.Errorf("files should be separated by a blank line:\n%s", output)
	}
}

func TestTextReporter_Empty(t *testing.T) {
	output, err := NewTextReporter().FormatString(analysis.NewAnalysis())
	if err != nil {
		t.Fatalf("FormatString failed: %v", err)
	}
	if output != "" {
		t.Errorf("expected empty output, got %q", output)
	}
}

func TestGetFormatter(t *testing.T) {
	tests := []struct {
		format  FormatType
		name    string
		wantErr bool
	}{
		{FormatText, "text", false},
		{FormatJSON, "json", false},
		{FormatHTML, "html", false},
		{FormatType("lcov"), "", true},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			f, err := GetFormatter(tt.format)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for format %q", tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetFormatter failed: %v", err)
			}
			if f.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", f.Name(), tt.name)
			}
			if !ValidFormat(string(tt.format)) {
				t.Errorf("ValidFormat(%q) = false", tt.format)
			}
		})
	}

	if len(SupportedFormats()) != 3 {
		t.Errorf("SupportedFormats() = %v", SupportedFormats())
	}
}
