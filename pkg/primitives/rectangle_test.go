package primitives

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRectangleVertices(t *testing.T) {
	assert.Equal(t, []float32{0, 0, 0, 30, 20, 30, 20, 0}, rectangleVertices(20, 30))
}

func TestRectangle_MoveAndBounds(t *testing.T) {
	r := NewRectangle(100, 50, "")
	r.SetModel(10, 20, 0)

	assert.True(t, r.InBounds(10, 20))
	assert.True(t, r.InBounds(110, 70))
	assert.False(t, r.InBounds(9, 20))
	assert.False(t, r.InBounds(50, 71))

	r.MoveModel(-10, -20, 0)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, r.Matrix.Model)
	assert.True(t, r.InBounds(0, 0))
	assert.False(t, r.InBounds(101, 0))
}

func TestRectangle_ResizeKeepsModel(t *testing.T) {
	r := NewRectangle(10, 10, "")
	r.SetModel(5, 5, 0)
	r.Resize([2]float32{400, 300}, [2]float32{800, 600})

	assert.Equal(t, mgl32.Ortho(0, 400, 300, 0, -1, 1), r.Matrix.Projection)
	assert.Equal(t, mgl32.Vec3{5, 5, 0}, r.Matrix.Model)
}

func TestRectangle_DetachedIsInert(t *testing.T) {
	r := NewRectangle(10, 10, "")
	r.Render()
	r.Detach()
	assert.Zero(t, r.program)
}

func TestLoadSource(t *testing.T) {
	src, err := loadSource("", rectangleShader)
	assert.NoError(t, err)
	assert.Contains(t, src.Vertex.Source, "u_proj_matrix")
	assert.Contains(t, src.Fragment.Source, "u_color")

	_, err = loadSource("testdata/missing.shader", rectangleShader)
	assert.Error(t, err)
}
