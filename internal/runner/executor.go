package runner

import (
	"context"
	"os"
	"time"

	"github.com/cybertec-postgresql/clex/internal/discovery"
	"github.com/cybertec-postgresql/clex/internal/errors"
	"github.com/cybertec-postgresql/clex/internal/lexer"
	"github.com/cybertec-postgresql/clex/internal/logger"
)

// ScannerFactory builds a fresh Scanner. Each goroutine that tokenizes
// must own its Scanner.
type ScannerFactory func() *lexer.Scanner

// NewScannerFactory returns a factory over a fixed dialect and options
func NewScannerFactory(dialect *lexer.Dialect, opts lexer.Options) ScannerFactory {
	return func() *lexer.Scanner {
		return lexer.NewScanner(dialect, opts)
	}
}

// Executor reads and tokenizes files
type Executor struct {
	newScanner ScannerFactory
	verbose    bool
}

// NewExecutor creates a new executor
func NewExecutor(newScanner ScannerFactory, verbose bool) *Executor {
	if newScanner == nil {
		newScanner = NewScannerFactory(lexer.C(), lexer.Options{})
	}
	return &Executor{
		newScanner: newScanner,
		verbose:    verbose,
	}
}

// NewScanner returns a scanner from the executor's factory
func (e *Executor) NewScanner() *lexer.Scanner {
	return e.newScanner()
}

// Execute reads file and tokenizes it with scanner
func (e *Executor) Execute(ctx context.Context, file *discovery.DiscoveredFile, scanner *lexer.Scanner) (*FileRun, error) {
	run := &FileRun{
		File:      file,
		StartTime: time.Now(),
		Status:    RunPending,
	}

	if err := ctx.Err(); err != nil {
		return e.fail(run, err), err
	}

	content, err := os.ReadFile(file.Path)
	if err != nil {
		readErr := errors.NewReadError(file.RelativePath, err)
		return e.fail(run, readErr), readErr
	}

	run.Result = scanner.Tokenize(string(content))
	run.EndTime = time.Now()
	if run.Result.HasErrors() {
		run.Status = RunLexicalErrors
	} else {
		run.Status = RunClean
	}

	if e.verbose {
		logger.Debug("tokenized %s: %d tokens, %d symbols, %d errors (%v)",
			file.RelativePath, len(run.Result.Tokens), len(run.Result.Symbols),
			len(run.Result.Errors), run.Duration().Round(time.Microsecond))
	}

	return run, nil
}

// ExecuteBatch tokenizes files sequentially, reusing one scanner. A file
// that fails is recorded as a failed run and the batch continues.
func (e *Executor) ExecuteBatch(ctx context.Context, files []discovery.DiscoveredFile) ([]*FileRun, error) {
	scanner := e.newScanner()
	runs := make([]*FileRun, 0, len(files))

	for i := range files {
		run, err := e.Execute(ctx, &files[i], scanner)
		if err != nil && e.verbose {
			logger.Debug("failed %s: %v", files[i].RelativePath, err)
		}
		runs = append(runs, run)
	}

	return runs, nil
}

func (e *Executor) fail(run *FileRun, err error) *FileRun {
	run.EndTime = time.Now()
	run.Status = RunFailed
	run.Error = err
	return run
}
