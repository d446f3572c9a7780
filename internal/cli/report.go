package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/cybertec-postgresql/clex/internal/analysis"
	"github.com/cybertec-postgresql/clex/internal/database"
	"github.com/cybertec-postgresql/clex/internal/report"
)

// ReportOptions selects the analysis to render and where to
type ReportOptions struct {
	AnalysisFile string // JSON analysis written by `clex scan`
	Connection   string // when set, load from PostgreSQL instead of AnalysisFile
	RunID        int64  // stored run to load; 0 means the latest
	Format       string
	Output       string // file path, "-" or "" for stdout
}

// Report generates a report from saved analysis data
func Report(ctx context.Context, opts ReportOptions, stdout, stderr io.Writer) error {
	// Step 1: Validate format
	if !report.ValidFormat(opts.Format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", opts.Format, report.SupportedFormats())
	}

	// Step 2: Load analysis data
	a, err := loadAnalysis(ctx, opts)
	if err != nil {
		return err
	}

	formatter, err := report.GetFormatter(report.FormatType(opts.Format))
	if err != nil {
		return err
	}

	// Step 3: Format and output
	writer := stdout
	toFile := opts.Output != "-" && opts.Output != ""
	if toFile {
		f, err := os.Create(opts.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	if err := formatter.Format(a, writer); err != nil {
		return fmt.Errorf("failed to format analysis data: %w", err)
	}

	// Success message on stderr so it doesn't interfere with stdout output
	if toFile {
		fmt.Fprintf(stderr, "Report written to %s\n", opts.Output)
	}

	return nil
}

func loadAnalysis(ctx context.Context, opts ReportOptions) (*analysis.Analysis, error) {
	if opts.Connection == "" {
		store := analysis.NewStore(opts.AnalysisFile)
		if !store.Exists() {
			return nil, fmt.Errorf("analysis file not found: %s (run 'clex scan' first)", opts.AnalysisFile)
		}
		a, err := store.Load()
		if err != nil {
			return nil, fmt.Errorf("failed to load analysis data: %w", err)
		}
		return a, nil
	}

	pool, err := database.NewPool(ctx, &Config{ConnectionString: opts.Connection})
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	runID := opts.RunID
	if runID == 0 {
		if runID, err = pool.LatestRunID(ctx); err != nil {
			return nil, err
		}
	}
	return pool.LoadAnalysis(ctx, runID)
}
