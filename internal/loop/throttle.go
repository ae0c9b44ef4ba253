package loop

import (
	"sync"
	"time"
)

// Throttle enforces a minimum interval between successive operations.
type Throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	next time.Time
}

// NewThrottle returns a throttle; a non-positive interval never throttles.
func NewThrottle(interval time.Duration) *Throttle {
	if interval <= 0 {
		interval = 0
	}
	return &Throttle{interval: interval, now: time.Now}
}

// Allow reports whether an operation may run now and, if so, reserves the
// slot. It never blocks.
func (t *Throttle) Allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}

// Wait blocks until the next slot is free and reserves it.
func (t *Throttle) Wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	for {
		t.mu.Lock()
		wait := t.next.Sub(t.now())
		if wait <= 0 {
			t.next = t.now().Add(t.interval)
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		time.Sleep(wait)
	}
}
