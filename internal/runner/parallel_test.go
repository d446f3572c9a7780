package runner_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cybertec-postgresql/clex/internal/discovery"
	"github.com/cybertec-postgresql/clex/internal/lexer"
	"github.com/cybertec-postgresql/clex/internal/runner"
)

// writeSources creates n small C files and returns them as discovered files
func writeSources(t *testing.T, n int) []discovery.DiscoveredFile {
	t.Helper()
	root := t.TempDir()
	for i := 0; i < n; i++ {
		src := fmt.Sprintf("int v%d = %d;\nint f%d(int a) { return a + v%d; }\n", i, i, i, i)
		if i%3 == 0 {
			src += "9bad;\n"
		}
		path := filepath.Join(root, fmt.Sprintf("file%02d.c", i))
		if err := os.WriteFile(path, []byte(src), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}

	files, err := discovery.Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != n {
		t.Fatalf("expected %d files, got %d", n, len(files))
	}
	return files
}

func TestParallelExecution_MatchesSequential(t *testing.T) {
	files := writeSources(t, 12)
	ctx := context.Background()

	executor := runner.NewExecutor(runner.NewScannerFactory(lexer.C(), lexer.Options{}), false)

	sequential, err := executor.ExecuteBatch(ctx, files)
	if err != nil {
		t.Fatalf("sequential execution failed: %v", err)
	}

	pool := runner.NewWorkerPool(executor, 4, false)
	parallel, err := pool.ExecuteParallel(ctx, files)
	if err != nil {
		t.Fatalf("parallel execution failed: %v", err)
	}

	if len(parallel) != len(sequential) {
		t.Fatalf("run count mismatch: parallel %d, sequential %d", len(parallel), len(sequential))
	}
	for i := range files {
		if parallel[i].File.Path != files[i].Path {
			t.Errorf("run %d out of order: got %s, want %s", i, parallel[i].File.RelativePath, files[i].RelativePath)
		}
		if !reflect.DeepEqual(parallel[i].Result, sequential[i].Result) {
			t.Errorf("run %d: parallel result differs from sequential", i)
		}
		if parallel[i].Status != sequential[i].Status {
			t.Errorf("run %d: status %v, want %v", i, parallel[i].Status, sequential[i].Status)
		}
	}

	summary := runner.SummarizeRuns(parallel)
	if summary.TotalFiles != 12 || summary.ErrorFiles != 4 || summary.CleanFiles != 8 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.TotalErrors != 4 {
		t.Errorf("expected 4 lexical errors, got %d", summary.TotalErrors)
	}
	if summary.ExitCode() != 1 {
		t.Errorf("expected exit code 1 with lexical errors, got %d", summary.ExitCode())
	}
}

func TestExecute_FunctionNamesNotInSymbols(t *testing.T) {
	files := writeSources(t, 1)
	executor := runner.NewExecutor(nil, false)

	run, err := executor.Execute(context.Background(), &files[0], executor.NewScanner())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := []string{"a", "v0"}
	if !reflect.DeepEqual(run.Result.Symbols, want) {
		t.Errorf("symbols = %v, want %v", run.Result.Symbols, want)
	}
	if run.Status != runner.RunLexicalErrors {
		t.Errorf("status = %v, want lexical-errors", run.Status)
	}
}

func TestExecute_MissingFile(t *testing.T) {
	executor := runner.NewExecutor(nil, false)
	file := &discovery.DiscoveredFile{
		Path:         filepath.Join(t.TempDir(), "missing.c"),
		RelativePath: "missing.c",
	}

	run, err := executor.Execute(context.Background(), file, executor.NewScanner())
	if err == nil {
		t.Fatal("expected read error")
	}
	if run.Status != runner.RunFailed || run.Result != nil {
		t.Errorf("expected failed run without result, got %v", run.Status)
	}

	summary := runner.SummarizeRuns([]*runner.FileRun{run})
	if summary.FailedFiles != 1 || summary.ExitCode() != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestExecuteParallel_CancelledContext(t *testing.T) {
	files := writeSources(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pool := runner.NewWorkerPool(runner.NewExecutor(nil, false), 3, false)
	runs, err := pool.ExecuteParallel(ctx, files)
	if err != nil {
		t.Fatalf("ExecuteParallel failed: %v", err)
	}

	for i, run := range runs {
		if run.Status != runner.RunFailed {
			t.Errorf("run %d: status %v, want failed", i, run.Status)
		}
		if run.Error != context.Canceled {
			t.Errorf("run %d: error %v, want context.Canceled", i, run.Error)
		}
	}
}

func TestExecuteParallel_Empty(t *testing.T) {
	pool := runner.NewWorkerPool(runner.NewExecutor(nil, false), 0, false)
	runs, err := pool.ExecuteParallel(context.Background(), nil)
	if err != nil || runs != nil {
		t.Errorf("expected nil runs and error, got %v, %v", runs, err)
	}
}

func TestRunStatus_String(t *testing.T) {
	tests := map[runner.RunStatus]string{
		runner.RunPending:       "pending",
		runner.RunClean:         "clean",
		runner.RunLexicalErrors: "lexical-errors",
		runner.RunFailed:        "failed",
		runner.RunStatus(99):    "unknown",
	}
	for status, want := range tests {
		if got := status.String(); got != want {
			t.Errorf("RunStatus(%d).String() = %q, want %q", int(status), got, want)
		}
	}
}
