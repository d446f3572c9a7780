package runner

import (
	"time"

	"github.com/cybertec-postgresql/clex/internal/discovery"
	"github.com/cybertec-postgresql/clex/internal/lexer"
)

// FileRun represents the tokenization of a single file
type FileRun struct {
	File      *discovery.DiscoveredFile
	StartTime time.Time
	EndTime   time.Time
	Status    RunStatus
	Result    *lexer.Result // nil unless the file was read
	Error     error         // Non-nil if the file could not be processed
}

// RunStatus represents the outcome of a file run
type RunStatus int

const (
	RunPending       RunStatus = iota // not yet processed
	RunClean                          // tokenized without lexical errors
	RunLexicalErrors                  // tokenized, lexical errors recorded
	RunFailed                         // not tokenized (read failure, cancellation)
)

// String returns a string representation of RunStatus
func (rs RunStatus) String() string {
	switch rs {
	case RunPending:
		return "pending"
	case RunClean:
		return "clean"
	case RunLexicalErrors:
		return "lexical-errors"
	case RunFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Duration returns the run duration
func (fr *FileRun) Duration() time.Duration {
	if fr.EndTime.IsZero() {
		return time.Since(fr.StartTime)
	}
	return fr.EndTime.Sub(fr.StartTime)
}

// RunSummary summarizes all file runs
type RunSummary struct {
	TotalFiles    int
	CleanFiles    int
	ErrorFiles    int // files with lexical errors
	FailedFiles   int
	TotalTokens   int
	TotalErrors   int
	TotalDuration time.Duration
}

// SummarizeRuns aggregates statistics from runs
func SummarizeRuns(runs []*FileRun) *RunSummary {
	summary := &RunSummary{TotalFiles: len(runs)}

	for _, run := range runs {
		switch run.Status {
		case RunClean:
			summary.CleanFiles++
		case RunLexicalErrors:
			summary.ErrorFiles++
		case RunFailed:
			summary.FailedFiles++
		}
		if run.Result != nil {
			summary.TotalTokens += len(run.Result.Tokens)
			summary.TotalErrors += len(run.Result.Errors)
		}
		summary.TotalDuration += run.Duration()
	}

	return summary
}

// AllClean returns true if every file tokenized without errors
func (s *RunSummary) AllClean() bool {
	return s.CleanFiles == s.TotalFiles
}

// ExitCode returns the process exit code for the summary: 0 when every
// file is clean, 1 otherwise.
func (s *RunSummary) ExitCode() int {
	if s.AllClean() {
		return 0
	}
	return 1
}
