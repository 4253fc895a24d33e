package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/ppetrenko/textra/internal/model"
	"github.com/ppetrenko/textra/internal/pipeline"
	"github.com/ppetrenko/textra/internal/worker"
)

// Flags shared by the corpus-consuming commands. Cobra runs a single
// command per invocation, so sharing the backing variables is safe.
var (
	corpusTargets []string
	strategyName  string
	chunkSize     int
	noCache       bool
	jsonOut       bool
)

// buildConfig layers viper settings over the defaults. Flag overrides
// are applied by each command afterwards.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()

	if viper.IsSet("chunking.strategy") {
		cfg.Chunking.Strategy = viper.GetString("chunking.strategy")
	}
	if viper.IsSet("chunking.size") {
		cfg.Chunking.Size = viper.GetInt("chunking.size")
	}
	if viper.IsSet("search.limit") {
		cfg.Search.Limit = viper.GetInt("search.limit")
	}
	if viper.IsSet("cache.enabled") {
		cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	}
	if viper.IsSet("cache.ttl") {
		cfg.Cache.TTL = viper.GetDuration("cache.ttl")
	}
	if viper.IsSet("concurrency.workers") {
		cfg.Concurrency.Workers = viper.GetInt("concurrency.workers")
	}
	if viper.IsSet("rate_limit.files_per_second") {
		cfg.RateLimit.FilesPerSecond = viper.GetFloat64("rate_limit.files_per_second")
	}
	if viper.IsSet("rate_limit.burst_size") {
		cfg.RateLimit.BurstSize = viper.GetInt("rate_limit.burst_size")
	}
	cfg.Output.Verbose = verbose

	return cfg
}

// applyCorpusFlags folds the shared flags into the configuration.
func applyCorpusFlags(cfg *model.Config) {
	if strategyName != "" {
		cfg.Chunking.Strategy = strategyName
	}
	if chunkSize > 0 {
		cfg.Chunking.Size = chunkSize
	}
	if noCache {
		cfg.Cache.Enabled = false
	}
	if jsonOut {
		cfg.Output.JSON = true
	}
}

func newPipeline(cfg *model.Config) (*pipeline.Pipeline, error) {
	p, err := pipeline.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("create pipeline: %w", err)
	}
	return p, nil
}

// ingestCorpus expands targets into files and ingests them through the
// batch processor. Individual file failures are reported on stderr and
// skipped; the command fails only when nothing could be ingested.
func ingestCorpus(ctx context.Context, p *pipeline.Pipeline, cfg *model.Config, targets []string) ([]*worker.IngestResult, error) {
	paths, err := worker.CollectPaths(targets)
	if err != nil {
		return nil, fmt.Errorf("collect files: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no files found in %v", targets)
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, cfg.RateLimit.FilesPerSecond, cfg.RateLimit.BurstSize)
	results := processor.ProcessPaths(ctx, paths)

	succeeded := 0
	for _, r := range results {
		if r.Error != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Path, r.Error)
			continue
		}
		succeeded++
		if cfg.Output.Verbose {
			fmt.Fprintf(os.Stderr, "✓ %s → %s\n", r.Path, r.DocumentID)
		}
	}
	if succeeded == 0 {
		return nil, fmt.Errorf("all %d files failed to ingest", len(paths))
	}

	return results, nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printResults(results []model.SearchResult, asJSON bool) error {
	if asJSON {
		if results == nil {
			results = []model.SearchResult{}
		}
		return printJSON(results)
	}

	fmt.Printf("Found %d results:\n", len(results))
	for _, r := range results {
		fmt.Printf("  %d. [Score: %.3f] %s\n", r.Rank, r.Score, r.Content)
	}
	return nil
}

func printMetrics(metrics model.EvaluationMetrics, asJSON bool) error {
	if asJSON {
		return printJSON(metrics)
	}

	fmt.Println("Evaluation Results:")
	fmt.Printf("  Relevance: %.3f\n", metrics.Relevance)
	fmt.Printf("  Precision: %.3f\n", metrics.Precision)
	fmt.Printf("  Recall:    %.3f\n", metrics.Recall)
	fmt.Printf("  F1 Score:  %.3f\n", metrics.F1Score)
	return nil
}

func printStats(stats model.StorageStats, asJSON bool) error {
	if asJSON {
		return printJSON(stats)
	}

	fmt.Println("Storage Statistics:")
	fmt.Printf("  Total Documents: %d\n", stats.TotalDocuments)
	fmt.Printf("  Total Chunks:    %d\n", stats.TotalChunks)
	fmt.Printf("  Total Size:      %d bytes\n", stats.TotalSizeBytes)
	return nil
}
