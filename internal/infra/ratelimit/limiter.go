// Package ratelimit spaces outbound calls to providers with strict usage policies.
package ratelimit

import (
	"context"
	"time"

	"justchoose/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Limiter enforces a minimum interval between calls. It is safe for concurrent use:
// concurrent callers are queued and released one interval apart.
type Limiter struct {
	limiter *rate.Limiter
	clock   service.Clock
	sleep   SleepFunc
}

// New creates a limiter allowing one call per interval on the wall clock.
func New(interval time.Duration) *Limiter {
	return NewWithClock(interval, service.SystemClock{}, sleepContext)
}

// NewWithClock creates a limiter driven by clock, waiting through sleep.
func NewWithClock(interval time.Duration, clock service.Clock, sleep SleepFunc) *Limiter {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}

	return &Limiter{
		limiter: rate.NewLimiter(limit, 1),
		clock:   clock,
		sleep:   sleep,
	}
}

// Wait blocks until the next call is permitted. Calls are delayed, never rejected,
// unless ctx ends first, in which case the reserved slot is released.
func (l *Limiter) Wait(ctx context.Context) error {
	now := l.clock.Now()
	reservation := l.limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return errors.New("rate limiter cannot grant a single token")
	}

	delay := reservation.DelayFrom(now)
	if delay <= 0 {
		return nil
	}

	if err := l.sleep(ctx, delay); err != nil {
		reservation.CancelAt(l.clock.Now())

		return errors.Wrap(err, "wait for rate limit")
	}

	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
