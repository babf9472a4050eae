package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/citeguard/citeguard/internal/pipeline"
)

// Analyzer checks one document against optional reference sources
type Analyzer interface {
	AnalyzeFile(ctx context.Context, path string, refPaths []string) (*pipeline.Result, error)
}

// CheckJob analyzes a single document
type CheckJob struct {
	Path     string
	RefPaths []string
	Analyzer Analyzer
}

// Execute runs the analysis for this job
func (j *CheckJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.AnalyzeFile(ctx, j.Path, j.RefPaths)
	return &CheckResult{
		Path:   j.Path,
		Result: result,
		Error:  err,
	}
}

// CheckResult is the outcome of one document check
type CheckResult struct {
	Path   string
	Result *pipeline.Result
	Error  error
}

// GetError returns the error from the check
func (r *CheckResult) GetError() error {
	return r.Error
}

// BatchProcessor checks multiple documents concurrently. All documents in
// a batch share the same reference sources.
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessPaths checks the given document paths concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string, refPaths []string) []*CheckResult {
	if len(paths) == 0 {
		return []*CheckResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&CheckJob{
			Path:     path,
			RefPaths: refPaths,
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	checkResults := make([]*CheckResult, len(results))
	for i, result := range results {
		checkResults[i] = result.(*CheckResult)
	}

	return checkResults
}

// ProcessFile reads document paths from a list file and checks them
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string, refPaths []string) ([]*CheckResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read document list: %w", err)
	}

	return b.ProcessPaths(ctx, paths, refPaths), nil
}

// ReadPathsFromFile reads document paths from a file, one per line.
// Blank lines and #-comments are skipped, duplicates collapsed.
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
