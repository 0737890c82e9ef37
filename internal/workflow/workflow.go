// Package workflow runs the analysis pipeline over a batch of status files
// with a bounded worker pool. One broken file never stops the batch.
package workflow

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pmpulse/analyzer/internal/analyzer"
	"github.com/pmpulse/analyzer/internal/render"
	"github.com/pmpulse/analyzer/internal/report"
)

// #region config

// Config bounds batch execution.
type Config struct {
	Workers       int
	ReportTimeout time.Duration
}

// DefaultConfig returns the standard batch bounds.
func DefaultConfig() Config {
	return Config{
		Workers:       4,
		ReportTimeout: 2 * time.Minute,
	}
}

// #endregion config

// #region task-result

// Task is one status file to analyze.
type Task struct {
	Path   string
	Domain report.Domain
}

// Result pairs a task with its outcome. Err is set when the task failed;
// the rest of the batch is unaffected.
type Result struct {
	Task     Task
	Analysis *analyzer.Analysis
	Err      error
}

// #endregion task-result

// #region discover

// domainSuffixes maps the status-file name suffix to its domain.
var domainSuffixes = map[string]report.Domain{
	"_cronograma.txt": report.DomainSchedule,
	"_custos.txt":     report.DomainCost,
	"_escopo.txt":     report.DomainScope,
	"_riscos.txt":     report.DomainRisk,
}

// Discover lists the status files under dir as tasks, sorted by path. Files
// whose names match no domain suffix are skipped.
func Discover(dir string) ([]Task, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read status dir %s: %w", dir, err)
	}

	var tasks []Task
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for suffix, domain := range domainSuffixes {
			if strings.HasSuffix(entry.Name(), suffix) {
				tasks = append(tasks, Task{Path: filepath.Join(dir, entry.Name()), Domain: domain})
				break
			}
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].Path < tasks[j].Path })
	return tasks, nil
}

// #endregion discover

// #region runner

// Runner executes batches against one analyzer.
type Runner struct {
	analyzer *analyzer.Analyzer
	config   Config
}

// NewRunner creates a Runner.
func NewRunner(a *analyzer.Analyzer, config Config) *Runner {
	if config.Workers <= 0 {
		config.Workers = DefaultConfig().Workers
	}
	if config.ReportTimeout <= 0 {
		config.ReportTimeout = DefaultConfig().ReportTimeout
	}
	return &Runner{analyzer: a, config: config}
}

// Run analyzes all tasks and returns results in task order. Each task runs
// under its own timeout; a failed or timed-out task records its error and
// the batch continues.
func (r *Runner) Run(ctx context.Context, tasks []Task) []Result {
	results := make([]Result, len(tasks))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < r.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = r.runOne(ctx, tasks[i])
			}
		}()
	}

	for i := range tasks {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (r *Runner) runOne(ctx context.Context, task Task) Result {
	taskCtx, cancel := context.WithTimeout(ctx, r.config.ReportTimeout)
	defer cancel()

	analysis, err := r.analyzer.AnalyzeFile(taskCtx, task.Path, task.Domain)
	if err != nil {
		log.Printf("[BATCH] %s: %v", task.Path, err)
		return Result{Task: task, Err: err}
	}
	return Result{Task: task, Analysis: analysis}
}

// #endregion runner

// #region save

// SaveResults writes the rendered reports of a batch to a timestamped file
// under dir and returns its path.
func SaveResults(dir string, results []Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("results_%s.txt", time.Now().Format("20060102_150405")))

	var b strings.Builder
	for i, res := range results {
		fmt.Fprintf(&b, "=== RESULTADO %d ===\n\n", i+1)
		if res.Err != nil {
			fmt.Fprintf(&b, "ERRO: %s: %v\n\n", res.Task.Path, res.Err)
			continue
		}
		b.WriteString(render.AnalysisReport(res.Analysis))
		b.WriteString("\n\n")
	}

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write results: %w", err)
	}
	return path, nil
}

// #endregion save
