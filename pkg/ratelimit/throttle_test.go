package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestWaitEnforcesSpacing(t *testing.T) {
	throttle := New(20) // 50ms minimum spacing
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := throttle.Wait(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	elapsed := time.Since(start)

	// First pass is immediate, the next two wait 50ms each.
	if elapsed < 90*time.Millisecond {
		t.Fatalf("three sends completed in %v, expected at least ~100ms", elapsed)
	}
}

func TestWaitUnderConcurrency(t *testing.T) {
	throttle := New(50) // 20ms spacing
	ctx := context.Background()

	const workers = 5
	var wg sync.WaitGroup
	start := time.Now()

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := throttle.Wait(ctx); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	// 5 concurrent callers through one gate: 4 spacings minimum.
	if elapsed := time.Since(start); elapsed < 70*time.Millisecond {
		t.Fatalf("concurrent sends completed in %v, expected at least ~80ms", elapsed)
	}
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	throttle := New(1) // 1s spacing keeps the second caller waiting

	if err := throttle.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := throttle.Wait(ctx); err == nil {
		t.Fatalf("expected context error for cancelled wait")
	}
}

func TestNewDefaultsInvalidRate(t *testing.T) {
	throttle := New(0)
	if err := throttle.Wait(context.Background()); err != nil {
		t.Fatalf("unexpected error with default rate: %v", err)
	}
}
