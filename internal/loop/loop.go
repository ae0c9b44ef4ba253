// Package loop drives the cooperative tick at a fixed cadence.
package loop

import (
	"context"
	"time"
)

// DefaultInterval is the soft 60 Hz cadence.
const DefaultInterval = 16 * time.Millisecond

// Run calls tick once immediately and then every interval until tick
// returns false or ctx is cancelled. Ticks never overlap; a slow tick
// delays the next one instead of queueing extra ticks.
func Run(ctx context.Context, interval time.Duration, tick func() bool) error {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if !tick() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if !tick() {
				return nil
			}
		}
	}
}
