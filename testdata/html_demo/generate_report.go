package main

import (
	"fmt"
	"os"

	"github.com/cybertec-postgresql/clex/internal/analysis"
	"github.com/cybertec-postgresql/clex/internal/lexer"
	"github.com/cybertec-postgresql/clex/internal/report"
)

func main() {
	const source = "testdata/html_demo/sample.c"

	content, err := os.ReadFile(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", source, err)
		os.Exit(1)
	}

	// Tokenize the sample with the C dialect in strict mode
	scanner := lexer.NewScanner(lexer.C(), lexer.Options{Strict: true})
	a := analysis.NewAnalysis()
	a.AddResult(source, scanner.Tokenize(string(content)))

	// Generate HTML report
	reporter := report.NewHTMLReporter()
	file, err := os.Create("testdata/html_demo/report.html")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating report file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := reporter.Format(a, file); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("HTML report generated: testdata/html_demo/report.html")
	fmt.Printf("  Tokens: %d, symbols: %d, lexical errors: %d\n",
		a.TotalTokens(), len(a.Symbols()), a.TotalErrors())
}
