package gfx

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func project(m mgl32.Mat4, x, y float32) mgl32.Vec2 {
	v := m.Mul4x1(mgl32.Vec4{x, y, 0, 1})
	return mgl32.Vec2{v.X(), v.Y()}
}

func TestMVP_MapsWindowCornersToClipSpace(t *testing.T) {
	m := NewMVP(800, 600)

	assert.True(t, project(m.Matrix(), 0, 0).ApproxEqual(mgl32.Vec2{-1, 1}))
	assert.True(t, project(m.Matrix(), 800, 600).ApproxEqual(mgl32.Vec2{1, -1}))
	assert.True(t, project(m.Matrix(), 400, 300).ApproxEqual(mgl32.Vec2{0, 0}))
}

func TestMVP_TranslateAndResize(t *testing.T) {
	m := NewMVP(800, 600)
	m.Translate(400, 300, 0)
	m.Translate(-200, 0, 0)

	assert.Equal(t, mgl32.Vec3{200, 300, 0}, m.Model)
	assert.Equal(t, mgl32.Vec3{200, 300, 0}, m.Position())

	m.Resize(400, 300)
	assert.True(t, project(m.Matrix(), 0, 0).ApproxEqual(mgl32.Vec2{0, -1}))
}

func TestColorToFloat(t *testing.T) {
	assert.Equal(t, [4]float32{}, ColorToFloat(nil))
	white := ColorToFloat(color.White)
	black := ColorToFloat(color.Black)
	half := ColorToFloat(color.RGBA{R: 0x80, A: 0xff})
	for i := 0; i < 4; i++ {
		assert.InDelta(t, 1, white[i], 1e-6)
	}
	assert.InDelta(t, 0, black[0], 1e-6)
	assert.InDelta(t, 1, black[3], 1e-6)
	assert.InDelta(t, 0.5, half[0], 0.01)
	assert.InDelta(t, 0, half[1], 1e-6)
}

func TestResizeAsFloats(t *testing.T) {
	e := Resize{Width: 800, Height: 600, FbWidth: 1600, FbHeight: 1200}
	assert.Equal(t, [2]float32{800, 600}, e.Size())
	assert.Equal(t, [2]float32{1600, 1200}, e.DrawSize())
}
