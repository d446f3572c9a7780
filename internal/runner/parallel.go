package runner

import (
	"context"
	"sync"

	"github.com/cybertec-postgresql/clex/internal/discovery"
	"github.com/cybertec-postgresql/clex/internal/logger"
)

// WorkerPool manages parallel tokenization
type WorkerPool struct {
	executor   *Executor
	maxWorkers int
	verbose    bool
}

// NewWorkerPool creates a new worker pool for parallel tokenization
func NewWorkerPool(executor *Executor, maxWorkers int, verbose bool) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		executor:   executor,
		maxWorkers: maxWorkers,
		verbose:    verbose,
	}
}

// ExecuteParallel tokenizes files with up to maxWorkers goroutines. Runs
// are returned in the order of files.
func (wp *WorkerPool) ExecuteParallel(ctx context.Context, files []discovery.DiscoveredFile) ([]*FileRun, error) {
	numFiles := len(files)
	if numFiles == 0 {
		return nil, nil
	}

	// If only one worker or one file, fall back to sequential execution
	if wp.maxWorkers == 1 || numFiles == 1 {
		return wp.executor.ExecuteBatch(ctx, files)
	}

	workers := min(wp.maxWorkers, numFiles)
	if wp.verbose {
		logger.Debug("starting parallel execution with %d workers for %d files", workers, numFiles)
	}

	jobs := make(chan *fileJob, numFiles)
	results := make(chan *fileResult, numFiles)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go wp.worker(ctx, i, jobs, results, &wg)
	}

	for i := range files {
		jobs <- &fileJob{
			file:  &files[i],
			index: i,
		}
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	runs := make([]*FileRun, numFiles)
	for result := range results {
		runs[result.index] = result.run
		if wp.verbose {
			logger.Debug("[%s] %s (worker %d)", result.run.Status, result.run.File.RelativePath, result.workerID)
		}
	}

	return runs, nil
}

// fileJob represents a single file to tokenize
type fileJob struct {
	file  *discovery.DiscoveredFile
	index int
}

// fileResult represents the result of a file run
type fileResult struct {
	run      *FileRun
	index    int
	workerID int
}

// worker owns one scanner for its lifetime and processes jobs until the
// channel closes
func (wp *WorkerPool) worker(ctx context.Context, workerID int, jobs <-chan *fileJob, results chan<- *fileResult, wg *sync.WaitGroup) {
	defer wg.Done()

	scanner := wp.executor.NewScanner()
	for job := range jobs {
		run, _ := wp.executor.Execute(ctx, job.file, scanner)
		results <- &fileResult{
			run:      run,
			index:    job.index,
			workerID: workerID,
		}
	}
}
