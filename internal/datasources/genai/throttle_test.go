package genai

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced clock for throttle tests.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func TestThrottle_WindowExhaustion(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewThrottle(10, time.Minute, 3*time.Second, clock.Now)

	// 10 requests spaced at the minimum interval all fit in the window.
	for i := 0; i < 10; i++ {
		require.NoError(t, throttle.Admit(), "request %d should be admitted", i+1)
		clock.Advance(3 * time.Second)
	}

	// The 11th exceeds the window count even though spacing is satisfied.
	err := throttle.Admit()
	require.ErrorIs(t, err, ErrRateLimited)
}

func TestThrottle_MinSpacing(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewThrottle(10, time.Minute, 3*time.Second, clock.Now)

	require.NoError(t, throttle.Admit())

	clock.Advance(time.Second)
	assert.ErrorIs(t, throttle.Admit(), ErrRateLimited)

	clock.Advance(2 * time.Second)
	assert.NoError(t, throttle.Admit())
}

func TestThrottle_WindowReset(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewThrottle(2, time.Minute, 0, clock.Now)

	require.NoError(t, throttle.Admit())
	require.NoError(t, throttle.Admit())
	require.ErrorIs(t, throttle.Admit(), ErrRateLimited)

	// A fresh window restores the full budget.
	clock.Advance(time.Minute)
	assert.NoError(t, throttle.Admit())
}

func TestThrottle_DeniedCallDoesNotConsumeBudget(t *testing.T) {
	clock := &fakeClock{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	throttle := NewThrottle(2, time.Minute, 3*time.Second, clock.Now)

	require.NoError(t, throttle.Admit())
	require.ErrorIs(t, throttle.Admit(), ErrRateLimited)

	// The denied call above must not count toward the window.
	clock.Advance(3 * time.Second)
	assert.NoError(t, throttle.Admit())
	clock.Advance(3 * time.Second)
	assert.ErrorIs(t, throttle.Admit(), ErrRateLimited)
}
