package worker

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Ingester defines the interface for ingesting a single file
type Ingester interface {
	IngestFile(path string) (string, error)
}

// IngestJob represents a file ingestion job
type IngestJob struct {
	Path     string
	Ingester Ingester
	Limiter  *Limiter // Optional; nil disables throttling
}

// Execute executes the ingestion job
func (j *IngestJob) Execute(ctx context.Context) Result {
	if j.Limiter != nil {
		if err := j.Limiter.Wait(ctx, j.Path); err != nil {
			return &IngestResult{Path: j.Path, Error: err}
		}
	}

	docID, err := j.Ingester.IngestFile(j.Path)
	if err != nil {
		return &IngestResult{Path: j.Path, Error: err}
	}
	return &IngestResult{Path: j.Path, DocumentID: docID}
}

// IngestResult represents the result of an ingestion job
type IngestResult struct {
	Path       string
	DocumentID string
	Error      error
}

// GetError returns the error from the ingestion result
func (r *IngestResult) GetError() error {
	return r.Error
}

// BatchProcessor ingests multiple files concurrently
type BatchProcessor struct {
	ingester    Ingester
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(ingester Ingester, concurrency int, filesPerSecond float64, burst int) *BatchProcessor {
	var limiter *Limiter
	if filesPerSecond > 0 {
		limiter = NewLimiter(filesPerSecond, burst)
	}
	return &BatchProcessor{
		ingester:    ingester,
		concurrency: concurrency,
		limiter:     limiter,
	}
}

// ProcessPaths ingests the given files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*IngestResult {
	if len(paths) == 0 {
		return []*IngestResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&IngestJob{
			Path:     path,
			Ingester: b.ingester,
			Limiter:  b.limiter,
		})
	}

	results := pool.Wait()

	ingestResults := make([]*IngestResult, len(results))
	for i, result := range results {
		ingestResults[i] = result.(*IngestResult)
	}

	return ingestResults
}

// CollectPaths expands the given targets into a deduplicated list of
// regular files. Directories are walked recursively; plain files pass
// through as-is.
func CollectPaths(targets []string) ([]string, error) {
	var paths []string
	seen := make(map[string]bool)

	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			paths = append(paths, path)
		}
	}

	for _, target := range targets {
		info, err := os.Stat(target)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", target, err)
		}

		if !info.IsDir() {
			add(target)
			continue
		}

		err = filepath.WalkDir(target, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", target, err)
		}
	}

	return paths, nil
}
