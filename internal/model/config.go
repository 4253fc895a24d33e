package model

import "time"

// Config holds the complete runtime configuration
type Config struct {
	Chunking    ChunkingConfig    `json:"chunking" yaml:"chunking"`
	Search      SearchConfig      `json:"search" yaml:"search"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	RateLimit   RateLimitConfig   `json:"rate_limit" yaml:"rate_limit"`
	Output      OutputConfig      `json:"output" yaml:"output"`
}

// ChunkingConfig selects and sizes the segmentation strategy
type ChunkingConfig struct {
	Strategy string `json:"strategy" yaml:"strategy"` // "fixed" or "paragraph"
	Size     int    `json:"size" yaml:"size"`         // Words per chunk for the fixed strategy
}

// SearchConfig controls query behavior
type SearchConfig struct {
	Limit int `json:"limit" yaml:"limit"` // Default result count
}

// CacheConfig controls the query-result cache
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// ConcurrencyConfig controls batch ingestion parallelism
type ConcurrencyConfig struct {
	Workers int `json:"workers" yaml:"workers"`
}

// RateLimitConfig throttles file reads during batch ingestion
type RateLimitConfig struct {
	FilesPerSecond float64 `json:"files_per_second" yaml:"files_per_second"`
	BurstSize      int     `json:"burst_size" yaml:"burst_size"`
}

// OutputConfig controls CLI output
type OutputConfig struct {
	Verbose bool `json:"verbose" yaml:"verbose"`
	JSON    bool `json:"json" yaml:"json"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Chunking: ChunkingConfig{
			Strategy: "fixed",
			Size:     500,
		},
		Search: SearchConfig{
			Limit: 5,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		RateLimit: RateLimitConfig{
			FilesPerSecond: 100,
			BurstSize:      10,
		},
		Output: OutputConfig{
			Verbose: false,
			JSON:    false,
		},
	}
}
