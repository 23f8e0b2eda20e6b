package gfx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventTimeoutMs(t *testing.T) {
	now := time.Now()

	assert.Equal(t, 0, eventTimeoutMs(now, now.Add(-time.Second)))
	assert.Equal(t, 0, eventTimeoutMs(now, now))
	assert.Equal(t, 1, eventTimeoutMs(now, now.Add(100*time.Microsecond)))
	assert.Equal(t, 16, eventTimeoutMs(now, now.Add(16*time.Millisecond)))
	assert.Equal(t, int(maxEventWait/time.Millisecond), eventTimeoutMs(now, now.Add(time.Second)))
}

func TestStepUpdater_FixedSteps(t *testing.T) {
	var total time.Duration
	u := newStepUpdater(10*time.Millisecond, func(d time.Duration) { total += d })
	start := u.lastTime

	assert.Equal(t, 2, u.advance(start.Add(25*time.Millisecond)))
	assert.Equal(t, 20*time.Millisecond, total)

	// the 5ms remainder carries over
	assert.Equal(t, 1, u.advance(start.Add(30*time.Millisecond)))
	assert.Equal(t, 30*time.Millisecond, total)
}

func TestStepUpdater_CapsCatchUp(t *testing.T) {
	u := newStepUpdater(10*time.Millisecond, func(time.Duration) {})

	steps := u.advance(u.lastTime.Add(10 * time.Second))
	assert.Equal(t, int(maxFrameTime/(10*time.Millisecond)), steps)
}

func TestRenderUpdater_RespectsRefreshRate(t *testing.T) {
	calls := 0
	r := newRenderUpdater(time.Hour, func() { calls++ })

	assert.False(t, r.run())
	r.nextRenderTime = time.Now().Add(-time.Millisecond)
	assert.True(t, r.run())
	assert.False(t, r.run())
	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(1), r.frames)
	assert.Greater(t, r.fps(), 0.0)
}
