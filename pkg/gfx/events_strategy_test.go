package gfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func queuePoller(events ...Event) (Poller, *[]int) {
	var timeouts []int
	return func(timeoutMs int) (Event, bool) {
		timeouts = append(timeouts, timeoutMs)
		if len(events) == 0 {
			return nil, false
		}
		e := events[0]
		events = events[1:]
		return e, true
	}, &timeouts
}

func TestDrainAll(t *testing.T) {
	poll, timeouts := queuePoller(Expose{}, EnterNotify{}, LeaveNotify{})
	var got []Event

	n := DrainAll().Consume(poll, func(e Event) { got = append(got, e) }, 16)

	assert.Equal(t, 3, n)
	assert.Equal(t, []Event{Expose{}, EnterNotify{}, LeaveNotify{}}, got)
	// only the first poll waits
	assert.Equal(t, []int{16, 0, 0, 0}, *timeouts)
}

func TestDrainAll_NoEvents(t *testing.T) {
	poll, _ := queuePoller()
	n := DrainAll().Consume(poll, func(Event) { t.Fatal("unexpected event") }, 5)
	assert.Zero(t, n)
}

func TestDrainMax(t *testing.T) {
	poll, _ := queuePoller(Expose{}, Expose{}, Expose{})
	handled := 0

	assert.Equal(t, 2, DrainMax(2).Consume(poll, func(Event) { handled++ }, 0))
	assert.Equal(t, 1, DrainMax(0).Consume(poll, func(Event) { handled++ }, 0))
	assert.Equal(t, 3, handled)
}
