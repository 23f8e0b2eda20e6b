package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventQueue_FIFO(t *testing.T) {
	q := newEventQueue()
	q.push(Expose{})
	q.push(KeyPress{Code: 1, Label: "Left"})

	e, ok := q.pop()
	assert.True(t, ok)
	assert.Equal(t, Expose{}, e)
	e, ok = q.pop()
	assert.True(t, ok)
	assert.Equal(t, KeyPress{Code: 1, Label: "Left"}, e)

	_, ok = q.pop()
	assert.False(t, ok)
}

func TestEventQueue_DropsWhenFull(t *testing.T) {
	q := newEventQueue()
	for i := 0; i < cap(q)+10; i++ {
		q.push(MotionNotify{X: i})
	}
	assert.Len(t, q, cap(q))

	e, _ := q.pop()
	assert.Equal(t, MotionNotify{X: 0}, e)
}

func TestWindowConfig_GLVersion(t *testing.T) {
	major, minor := WindowConfig{}.glVersion()
	assert.Equal(t, 4, major)
	assert.Equal(t, 1, minor)

	major, minor = WindowConfig{GLMajor: 3, GLMinor: 3}.glVersion()
	assert.Equal(t, 3, major)
	assert.Equal(t, 3, minor)
}
