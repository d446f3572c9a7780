package report

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/cybertec-postgresql/clex/internal/analysis"
	"github.com/cybertec-postgresql/clex/internal/lexer"
)

// HTMLReporter formats analysis data as a standalone HTML page
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// Format formats analysis data as HTML and writes to the writer
func (r *HTMLReporter) Format(a *analysis.Analysis, writer io.Writer) error {
	paths := a.SortedPaths()

	if err := r.writeHeader(a, writer); err != nil {
		return err
	}

	if err := r.writeSummary(a, writer); err != nil {
		return err
	}

	for _, path := range paths {
		if err := r.writeFileDetail(a.Files[path], writer); err != nil {
			return err
		}
	}

	return r.writeFooter(writer)
}

// writeHeader writes the HTML document header with CSS
func (r *HTMLReporter) writeHeader(a *analysis.Analysis, writer io.Writer) error {
	timestamp := time.Now().Format(time.RFC1123)
	if !a.Timestamp.IsZero() {
		timestamp = a.Timestamp.Format(time.RFC1123)
	}

	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>clex Lexical Analysis Report</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background: #f5f5f5; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        header { background: #2c3e50; color: white; padding: 30px 0; margin-bottom: 30px; }
        header h1 { font-size: 2.5em; margin-bottom: 10px; }
        header .meta { opacity: 0.8; font-size: 0.9em; }
        section { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        section h2, section h3 { margin-bottom: 15px; color: #2c3e50; }
        section h3 { font-family: 'Courier New', monospace; }
        .summary-stats { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; }
        .stat-card { background: #f8f9fa; padding: 20px; border-radius: 6px; border-left: 4px solid #3498db; }
        .stat-card .label { font-size: 0.85em; color: #7f8c8d; text-transform: uppercase; letter-spacing: 0.5px; margin-bottom: 8px; }
        .stat-card .value { font-size: 2em; font-weight: bold; color: #2c3e50; }
        table { border-collapse: collapse; width: 100%%; margin-bottom: 20px; font-family: 'Courier New', monospace; font-size: 0.9em; }
        th, td { text-align: left; padding: 4px 10px; border-bottom: 1px solid #ecf0f1; }
        th { color: #7f8c8d; text-transform: uppercase; font-size: 0.8em; }
        .kind-Keyword { color: #c678dd; }
        .kind-Identifier { color: #2c3e50; }
        .kind-Constant { color: #d19a66; }
        .kind-String, .kind-Character { color: #98c379; }
        .kind-Operator { color: #56b6c2; }
        .kind-Punctuation { color: #7f8c8d; }
        .errors td { color: #721c24; background: #f8d7da; }
        .symbols { columns: 4; font-family: 'Courier New', monospace; list-style-position: inside; }
        footer { text-align: center; padding: 30px 0; color: #7f8c8d; font-size: 0.9em; }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <h1>clex Lexical Analysis Report</h1>
            <div class="meta">Generated: %s | Version: %s</div>
        </div>
    </header>
    <div class="container">
`, timestamp, html.EscapeString(a.Version))
	return err
}

// writeSummary writes the totals section
func (r *HTMLReporter) writeSummary(a *analysis.Analysis, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `        <section class="summary">
            <h2>Summary</h2>
            <div class="summary-stats">
                <div class="stat-card"><div class="label">Files</div><div class="value">%d</div></div>
                <div class="stat-card"><div class="label">Tokens</div><div class="value">%d</div></div>
                <div class="stat-card"><div class="label">Symbols</div><div class="value">%d</div></div>
                <div class="stat-card"><div class="label">Lexical Errors</div><div class="value">%d</div></div>
            </div>
        </section>

`, len(a.Files), a.TotalTokens(), len(a.Symbols()), a.TotalErrors())
	return err
}

// writeFileDetail writes the token table, errors and symbol table of one file
func (r *HTMLReporter) writeFileDetail(f *analysis.FileAnalysis, writer io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, `        <section class="file-detail">
            <h3>%s</h3>
            <table class="tokens">
                <tr><th>Line</th><th>Kind</th><th>Text</th></tr>
`, html.EscapeString(f.Path))

	for _, tok := range f.Tokens {
		fmt.Fprintf(&b, "                <tr class=\"%s\"><td>%d</td><td>%s</td><td>%s</td></tr>\n",
			kindClass(tok.Kind), tok.Line, tok.Kind, html.EscapeString(tok.Text))
	}
	b.WriteString("            </table>\n")

	if len(f.Errors) > 0 {
		b.WriteString(`            <h4>Lexical Errors</h4>
            <table class="errors">
                <tr><th>Line</th><th>Lexeme</th><th>Reason</th></tr>
`)
		for _, e := range f.Errors {
			fmt.Fprintf(&b, "                <tr><td>%d</td><td>%s</td><td>%s</td></tr>\n",
				e.Line, html.EscapeString(e.Lexeme), html.EscapeString(string(e.Reason)))
		}
		b.WriteString("            </table>\n")
	}

	b.WriteString("            <h4>Symbol Table Entries</h4>\n            <ol class=\"symbols\">\n")
	for _, sym := range f.Symbols {
		fmt.Fprintf(&b, "                <li>%s</li>\n", html.EscapeString(sym))
	}
	b.WriteString("            </ol>\n        </section>\n\n")

	_, err := io.WriteString(writer, b.String())
	return err
}

// writeFooter writes the HTML document footer
func (r *HTMLReporter) writeFooter(writer io.Writer) error {
	_, err := io.WriteString(writer, `        <footer>
            Generated by <strong>clex</strong> - C Lexical Analyzer
        </footer>
    </div>
</body>
</html>
`)
	return err
}

// FormatString returns analysis data as an HTML string
func (r *HTMLReporter) FormatString(a *analysis.Analysis) (string, error) {
	var buf strings.Builder
	if err := r.Format(a, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *HTMLReporter) Name() string {
	return "html"
}

// kindClass is the CSS class used for a token kind
func kindClass(k lexer.Kind) string {
	return "kind-" + k.String()
}
