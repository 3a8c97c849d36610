// Package batch fans label images out to a bounded worker pool so bulk
// compliance audits finish in reasonable time without unbounded OCR
// processes.
package batch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/labelscan/labelscan/internal/extract"
	"github.com/labelscan/labelscan/internal/pipeline"
)

// DefaultWorkers is the pool size when none is configured. OCR is
// CPU-bound and each worker spawns a native Tesseract instance, so the
// default stays modest.
const DefaultWorkers = 5

// Task identifies one image to audit: a local file path or an http(s) URL,
// plus the product category hint for extraction.
type Task struct {
	ID       string           `json:"id"`
	Source   string           `json:"source"`
	Category extract.Category `json:"category"`
}

// TaskResult pairs a task with its processing outcome.
type TaskResult struct {
	Task   Task             `json:"task"`
	Result *pipeline.Result `json:"result"`
}

// Progress aggregates a completed batch run. Results appear in submission
// order regardless of which worker finished first.
type Progress struct {
	Total     int          `json:"total"`
	Completed int          `json:"completed"`
	Failed    int          `json:"failed"`
	Results   []TaskResult `json:"results"`
	Errors    []string     `json:"errors"`
}

// Runner processes batches of tasks against one shared Pipeline.
type Runner struct {
	pipeline *pipeline.Pipeline
	workers  int
}

// NewRunner creates a Runner with the given pool size; non-positive sizes
// select DefaultWorkers.
func NewRunner(p *pipeline.Pipeline, workers int) *Runner {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Runner{pipeline: p, workers: workers}
}

// Run processes every task and blocks until the batch completes. One bad
// task never stops the rest: per-task failures surface as terminal Results
// and are tallied in Progress.Failed. The context is passed through to
// remote fetches so cancellation aborts in-flight downloads.
func (r *Runner) Run(ctx context.Context, tasks []Task) *Progress {
	results := make([]*pipeline.Result, len(tasks))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.process(ctx, tasks[i])
			}
		}()
	}
	for i := range tasks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	progress := &Progress{
		Total:   len(tasks),
		Results: make([]TaskResult, 0, len(tasks)),
		Errors:  []string{},
	}
	for i, task := range tasks {
		result := results[i]
		progress.Results = append(progress.Results, TaskResult{Task: task, Result: result})
		if result.Error != "" {
			progress.Failed++
			progress.Errors = append(progress.Errors, fmt.Sprintf("%s: %s", task.ID, result.Error))
		} else {
			progress.Completed++
		}
	}
	return progress
}

func (r *Runner) process(ctx context.Context, t Task) *pipeline.Result {
	if strings.HasPrefix(t.Source, "http://") || strings.HasPrefix(t.Source, "https://") {
		return r.pipeline.ProcessURL(ctx, t.Source, t.Category)
	}
	return r.pipeline.ProcessFile(t.Source, t.Category)
}
