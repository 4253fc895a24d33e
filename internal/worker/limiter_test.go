package worker

import (
	"context"
	"testing"
	"time"
)

func TestNewLimiter_DefaultBurst(t *testing.T) {
	l := NewLimiter(10, 0)
	if l.defaultBurst != 5 {
		t.Errorf("expected default burst 5, got %d", l.defaultBurst)
	}

	l = NewLimiter(10, 3)
	if l.defaultBurst != 3 {
		t.Errorf("expected burst 3, got %d", l.defaultBurst)
	}
}

func TestLimiter_Allow(t *testing.T) {
	// Burst of 2 means the third immediate read from the same
	// directory is rejected.
	l := NewLimiter(0.001, 2)

	if !l.Allow("/data/a.txt") {
		t.Error("expected first read to be allowed")
	}
	if !l.Allow("/data/b.txt") {
		t.Error("expected second read in burst to be allowed")
	}
	if l.Allow("/data/c.txt") {
		t.Error("expected third read to be rejected")
	}

	// A different directory has its own limiter
	if !l.Allow("/other/a.txt") {
		t.Error("expected read from a different directory to be allowed")
	}
}

func TestLimiter_WaitRespectsContext(t *testing.T) {
	l := NewLimiter(0.001, 1)

	// Exhaust the burst
	if err := l.Wait(context.Background(), "/data/a.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := l.Wait(ctx, "/data/b.txt"); err == nil {
		t.Error("expected wait to fail when the context expires first")
	}
}

func TestLimiter_ReusesLimiterPerDirectory(t *testing.T) {
	l := NewLimiter(10, 5)

	first := l.getLimiter("/data")
	second := l.getLimiter("/data")
	if first != second {
		t.Error("expected the same limiter instance for one directory")
	}

	other := l.getLimiter("/other")
	if first == other {
		t.Error("expected distinct limiters for distinct directories")
	}
}
