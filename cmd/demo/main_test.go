package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/kjkrol/glprim/pkg/gfx"
	"github.com/kjkrol/glprim/pkg/primitives"
)

func TestHandleEvent_ArrowKeysMoveRectangle(t *testing.T) {
	rect := primitives.NewRectangle(10, 10, "")
	ctx := &DemoContext{rect: rect, speed: 5}

	handleEvent(gfx.KeyPress{Label: "Right"}, ctx)
	handleEvent(gfx.KeyPress{Label: "Right"}, ctx)
	handleEvent(gfx.KeyPress{Label: "Down"}, ctx)
	handleEvent(gfx.KeyPress{Label: "Left"}, ctx)
	handleEvent(gfx.KeyPress{Label: "a"}, ctx)

	assert.Equal(t, mgl32.Vec3{5, 5, 0}, rect.Matrix.Model)
}

func TestHandleEvent_DragRectangle(t *testing.T) {
	rect := primitives.NewRectangle(10, 10, "")
	ctx := &DemoContext{rect: rect, speed: 5}

	// press outside does not grab
	handleEvent(gfx.ButtonPress{Button: 1, X: 50, Y: 50}, ctx)
	handleEvent(gfx.MotionNotify{X: 60, Y: 60}, ctx)
	assert.Equal(t, mgl32.Vec3{}, rect.Matrix.Model)

	handleEvent(gfx.ButtonPress{Button: 1, X: 5, Y: 5}, ctx)
	handleEvent(gfx.MotionNotify{X: 15, Y: 8}, ctx)
	handleEvent(gfx.ButtonRelease{Button: 1, X: 15, Y: 8}, ctx)
	handleEvent(gfx.MotionNotify{X: 100, Y: 100}, ctx)

	assert.Equal(t, mgl32.Vec3{10, 3, 0}, rect.Matrix.Model)
}
