package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/samber/do"

	"github.com/cybertec-postgresql/clex/internal/analysis"
	"github.com/cybertec-postgresql/clex/internal/database"
	"github.com/cybertec-postgresql/clex/internal/discovery"
	"github.com/cybertec-postgresql/clex/internal/logger"
	"github.com/cybertec-postgresql/clex/internal/report"
	"github.com/cybertec-postgresql/clex/internal/runner"
)

// Run executes the scan workflow: the text report goes to stdout, progress
// and the summary to stderr. The returned exit code is 1 when any file had
// lexical errors or could not be read.
func Run(ctx context.Context, config *Config, paths []string, stdout, stderr io.Writer) (int, error) {
	startTime := time.Now()

	injector := NewContainer(config, stderr)
	defer func() { _ = injector.Shutdown() }()

	log := do.MustInvoke[*logger.Logger](injector)
	logger.SetDefault(log)
	log.Dump("configuration", config)

	// Step 1: Discover source files
	files, err := discovery.DiscoverAll(paths)
	if err != nil {
		return 1, fmt.Errorf("failed to discover source files: %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintln(stderr, "No C source files found (*.c, *.h)")
		return 0, nil
	}

	log.Debug("found %d source file(s)", len(files))

	// Step 2: Tokenize (parallel or sequential based on config)
	executor := do.MustInvoke[*runner.Executor](injector)

	var runs []*runner.FileRun
	if config.Parallelism > 1 && len(files) > 1 {
		log.Debug("scanning in parallel (workers: %d)", config.Parallelism)
		workerPool := runner.NewWorkerPool(executor, config.Parallelism, config.Verbose)
		runs, err = workerPool.ExecuteParallel(ctx, files)
	} else {
		log.Debug("scanning sequentially")
		runs, err = executor.ExecuteBatch(ctx, files)
	}
	if err != nil {
		return 1, fmt.Errorf("scan failed: %w", err)
	}

	// Step 3: Collect results
	collector := analysis.NewCollector()
	if err := collector.CollectFromRuns(runs); err != nil {
		return 1, fmt.Errorf("failed to collect results: %w", err)
	}
	for _, run := range collector.Failed() {
		log.Error("%v", run.Error)
	}

	result := collector.Analysis()
	log.Dump("analysis", result.KindCounts())

	// Step 4: Print the token stream, lexical errors and symbol table
	if err := report.NewTextReporter().Format(result, stdout); err != nil {
		return 1, fmt.Errorf("failed to write report: %w", err)
	}

	// Step 5: Save analysis data
	store := do.MustInvoke[*analysis.Store](injector)
	if err := store.Save(result); err != nil {
		return 1, fmt.Errorf("failed to save analysis: %w", err)
	}

	// Step 6: Optionally persist into PostgreSQL
	if config.ConnectionString != "" {
		runID, err := persist(ctx, config, result)
		if err != nil {
			return 1, err
		}
		log.Info("analysis stored in PostgreSQL as run %d", runID)
	}

	// Step 7: Display summary
	summary := runner.SummarizeRuns(runs)

	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "Files:    %d clean, %d with lexical errors, %d failed, %d total\n",
		summary.CleanFiles, summary.ErrorFiles, summary.FailedFiles, summary.TotalFiles)
	fmt.Fprintf(stderr, "Tokens:   %d\n", summary.TotalTokens)
	fmt.Fprintf(stderr, "Symbols:  %d\n", len(result.Symbols()))
	fmt.Fprintf(stderr, "Errors:   %d\n", summary.TotalErrors)
	fmt.Fprintf(stderr, "Time:     %v\n", time.Since(startTime).Round(time.Millisecond))
	fmt.Fprintf(stderr, "\n")
	fmt.Fprintf(stderr, "Analysis data written to %s\n", store.Path())

	return summary.ExitCode(), nil
}

func persist(ctx context.Context, config *Config, a *analysis.Analysis) (int64, error) {
	pool, err := database.NewPool(ctx, config)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	if err := pool.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	runID, err := pool.SaveAnalysis(ctx, a)
	if err != nil {
		return 0, fmt.Errorf("failed to store analysis: %w", err)
	}
	return runID, nil
}
