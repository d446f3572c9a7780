package analysis

import (
	"fmt"

	"github.com/cybertec-postgresql/clex/internal/lexer"
	"github.com/cybertec-postgresql/clex/internal/runner"
)

// Collector aggregates scanner results from file runs
type Collector struct {
	analysis *Analysis
	failed   []*runner.FileRun
}

// NewCollector creates a new collector
func NewCollector() *Collector {
	return &Collector{
		analysis: NewAnalysis(),
	}
}

// CollectFromRun records the result of a single run. Failed runs carry no
// result; they are kept aside and reported by Failed.
func (c *Collector) CollectFromRun(run *runner.FileRun) error {
	if run == nil || run.File == nil {
		return fmt.Errorf("run without file")
	}
	if run.Status == runner.RunFailed || run.Result == nil {
		c.failed = append(c.failed, run)
		return nil
	}
	c.Add(run.File.RelativePath, run.Result)
	return nil
}

// CollectFromRuns records the results of multiple runs
func (c *Collector) CollectFromRuns(runs []*runner.FileRun) error {
	for _, run := range runs {
		if err := c.CollectFromRun(run); err != nil {
			return err
		}
	}
	return nil
}

// Add records a result under path
func (c *Collector) Add(path string, res *lexer.Result) {
	c.analysis.AddResult(path, res)
}

// Analysis returns the aggregated analysis
func (c *Collector) Analysis() *Analysis {
	return c.analysis
}

// Failed returns the runs that produced no result
func (c *Collector) Failed() []*runner.FileRun {
	return c.failed
}
