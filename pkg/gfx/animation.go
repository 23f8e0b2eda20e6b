package gfx

import (
	"context"
	"sync"
	"time"
)

// Animation calls Evolve on the render loop every Duration.
type Animation struct {
	Duration time.Duration
	Evolve   func()
	running  bool
}

func NewAnimation(duration time.Duration, evolve func()) *Animation {
	return &Animation{
		Duration: duration,
		Evolve:   evolve,
	}
}

func (a *Animation) Run(ctx context.Context, wg *sync.WaitGroup, updates chan<- func()) {
	if a.running || a.Evolve == nil {
		return
	}
	a.running = true
	duration := a.Duration
	if duration <= 0 {
		duration = 50 * time.Millisecond
	}
	wg.Add(1)

	go func() {
		defer wg.Done()

		ticker := time.NewTicker(duration)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// GL objects are not safe to touch off the render thread
				select {
				case updates <- a.Evolve:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
}
