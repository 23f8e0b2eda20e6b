package gfx

// Poller returns the next event, waiting at most timeoutMs; false when none
// arrived in time.
type Poller func(timeoutMs int) (Event, bool)

// EventsConsumerStrategy decides how many pending events one loop
// iteration handles before the next frame.
type EventsConsumerStrategy interface {
	Consume(poll Poller, handle func(Event), timeoutMs int) int
}

type DrainAllStrategy struct{}

func (DrainAllStrategy) Consume(poll Poller, handle func(Event), timeoutMs int) int {
	return drain(poll, handle, timeoutMs, 0)
}

// DrainMaxStrategy handles at most Max events per iteration, so a flood of
// input cannot starve rendering.
type DrainMaxStrategy struct {
	Max int
}

func (s DrainMaxStrategy) Consume(poll Poller, handle func(Event), timeoutMs int) int {
	max := s.Max
	if max <= 0 {
		max = 1
	}
	return drain(poll, handle, timeoutMs, max)
}

// drain waits up to timeoutMs for a first event, then takes already queued
// events without waiting. max <= 0 means no limit.
func drain(poll Poller, handle func(Event), timeoutMs, max int) int {
	event, ok := poll(timeoutMs)
	if !ok {
		return 0
	}
	handle(event)
	count := 1
	for max <= 0 || count < max {
		event, ok = poll(0)
		if !ok {
			break
		}
		handle(event)
		count++
	}
	return count
}

func DrainAll() EventsConsumerStrategy {
	return DrainAllStrategy{}
}

func DrainMax(max int) EventsConsumerStrategy {
	return DrainMaxStrategy{Max: max}
}
