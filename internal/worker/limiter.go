package worker

import (
	"context"
	"path/filepath"
	"sync"

	"golang.org/x/time/rate"
)

// Limiter implements per-directory rate limiting for file ingestion,
// so a batch run cannot hammer a single (possibly network-mounted)
// directory.
type Limiter struct {
	limiters     map[string]*rate.Limiter
	mu           sync.RWMutex
	defaultRate  rate.Limit
	defaultBurst int
}

// NewLimiter creates a new rate limiter
func NewLimiter(filesPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}

	return &Limiter{
		limiters:     make(map[string]*rate.Limiter),
		defaultRate:  rate.Limit(filesPerSecond),
		defaultBurst: burst,
	}
}

// Wait waits for rate limit clearance for the given file path
func (l *Limiter) Wait(ctx context.Context, path string) error {
	limiter := l.getLimiter(filepath.Dir(path))
	return limiter.Wait(ctx)
}

// Allow checks if a file read is allowed without waiting
func (l *Limiter) Allow(path string) bool {
	limiter := l.getLimiter(filepath.Dir(path))
	return limiter.Allow()
}

// getLimiter returns the rate limiter for a directory
func (l *Limiter) getLimiter(dir string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[dir]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Double-check after acquiring write lock
	if limiter, exists := l.limiters[dir]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(l.defaultRate, l.defaultBurst)
	l.limiters[dir] = limiter

	return limiter
}
