// Package ratelimit paces outbound sends so the process never exceeds the
// throughput ceiling imposed by SMS aggregators.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// DefaultRatePerSecond matches the ceiling of the Africa's Talking
// sandbox tier.
const DefaultRatePerSecond = 10

// Throttle is a single-token leaky bucket: every send passes through
// Wait, and no two sends are admitted closer together than
// 1s / ratePerSecond. It is a single shared gate, safe for concurrent
// callers.
type Throttle struct {
	limiter *rate.Limiter
}

func New(ratePerSecond int) *Throttle {
	if ratePerSecond <= 0 {
		ratePerSecond = DefaultRatePerSecond
	}
	// Burst of 1 keeps the spacing strict instead of window-averaged.
	return &Throttle{
		limiter: rate.NewLimiter(rate.Limit(ratePerSecond), 1),
	}
}

// Wait blocks until the caller may send, or until ctx is done.
func (t *Throttle) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}
