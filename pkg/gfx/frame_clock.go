package gfx

import "time"

// renderUpdater renders at a fixed refresh rate and counts frames.
type renderUpdater struct {
	refreshRate    time.Duration
	nextRenderTime time.Time
	render         func()
	frames         uint64
	started        time.Time
}

func newRenderUpdater(refreshRate time.Duration, render func()) *renderUpdater {
	if refreshRate <= 0 {
		refreshRate = time.Second / 60
	}
	now := time.Now()
	return &renderUpdater{
		refreshRate:    refreshRate,
		nextRenderTime: now.Add(refreshRate),
		render:         render,
		started:        now,
	}
}

func (r *renderUpdater) run() bool {
	now := time.Now()
	if now.Before(r.nextRenderTime) {
		return false
	}
	r.render()
	r.frames++
	r.nextRenderTime = now.Add(r.refreshRate)
	return true
}

func (r *renderUpdater) fps() float64 {
	elapsed := time.Since(r.started).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(r.frames) / elapsed
}

// stepUpdater calls update with a fixed time step, catching up on missed
// steps.
type stepUpdater struct {
	lastTime    time.Time
	step        time.Duration
	accumulator time.Duration
	update      func(time.Duration)
}

// maxFrameTime bounds how much time one run may catch up on after a stall.
const maxFrameTime = 250 * time.Millisecond

func newStepUpdater(step time.Duration, update func(time.Duration)) *stepUpdater {
	if step <= 0 {
		step = time.Second / 120
	}
	return &stepUpdater{
		lastTime: time.Now(),
		step:     step,
		update:   update,
	}
}

func (u *stepUpdater) run() int {
	return u.advance(time.Now())
}

func (u *stepUpdater) advance(now time.Time) int {
	frameTime := now.Sub(u.lastTime)
	u.lastTime = now
	if frameTime > maxFrameTime {
		frameTime = maxFrameTime
	}
	u.accumulator += frameTime
	steps := 0
	for u.accumulator >= u.step {
		u.update(u.step)
		u.accumulator -= u.step
		steps++
	}
	return steps
}

// eventTimeoutMs is how long the loop may block on events before the next
// frame is due.
func eventTimeoutMs(now, nextRender time.Time) int {
	timeout := nextRender.Sub(now)
	if timeout < 0 {
		timeout = 0
	}
	if timeout > maxEventWait {
		timeout = maxEventWait
	}
	ms := int(timeout / time.Millisecond)
	if timeout > 0 && ms == 0 {
		ms = 1
	}
	return ms
}
