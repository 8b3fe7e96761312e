package genai

import (
	"sync"
	"time"
)

// Throttle defaults: the shared upstream quota allows 10 requests per
// minute, and requests are additionally spaced at least 3s apart.
const (
	DefaultMaxPerWindow = 10
	DefaultWindow       = time.Minute
	DefaultMinSpacing   = 3 * time.Second
)

// Throttle is the process-wide admission gate in front of the model API.
// It tracks a rolling one-minute window count and the time of the last
// admitted request behind a single mutex. State is per-process; nothing
// survives a restart.
type Throttle struct {
	now func() time.Time

	maxPerWindow int
	window       time.Duration
	minSpacing   time.Duration

	mu           sync.Mutex
	windowStart  time.Time
	admitted     int
	lastAdmitted time.Time
}

// NewThrottle creates a throttle with an injectable clock. Pass time.Now
// outside tests.
func NewThrottle(maxPerWindow int, window, minSpacing time.Duration, now func() time.Time) *Throttle {
	return &Throttle{
		now:          now,
		maxPerWindow: maxPerWindow,
		window:       window,
		minSpacing:   minSpacing,
	}
}

// NewDefaultThrottle creates a throttle with the production limits.
func NewDefaultThrottle() *Throttle {
	return NewThrottle(DefaultMaxPerWindow, DefaultWindow, DefaultMinSpacing, time.Now)
}

// Admit decides whether a request may be sent now. It returns
// ErrRateLimited when the window is exhausted or the last admitted
// request was too recent. The check is advisory: it only makes this
// process self-throttle, it cannot speak for the remote service.
func (t *Throttle) Admit() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()

	if now.Sub(t.windowStart) >= t.window {
		t.windowStart = now
		t.admitted = 0
	}

	if t.admitted >= t.maxPerWindow {
		return ErrRateLimited
	}
	if !t.lastAdmitted.IsZero() && now.Sub(t.lastAdmitted) < t.minSpacing {
		return ErrRateLimited
	}

	t.admitted++
	t.lastAdmitted = now
	return nil
}
