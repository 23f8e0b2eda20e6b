package gfx

import "github.com/go-gl/mathgl/mgl32"

// MVP holds the transforms of a 2D object placed in window pixels, with the
// origin in the top-left corner.
type MVP struct {
	Model      mgl32.Vec3
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

func NewMVP(width, height float32) MVP {
	return MVP{
		Projection: ortho(width, height),
		View:       mgl32.Ident4(),
	}
}

func ortho(width, height float32) mgl32.Mat4 {
	return mgl32.Ortho(0, width, height, 0, -1, 1)
}

// Resize rebuilds the projection for a window of the given size.
func (m *MVP) Resize(width, height float32) {
	m.Projection = ortho(width, height)
}

func (m *MVP) Translate(dx, dy, dz float32) {
	m.Model = m.Model.Add(mgl32.Vec3{dx, dy, dz})
}

// Matrix returns projection * view * translate(model).
func (m MVP) Matrix() mgl32.Mat4 {
	return m.Projection.Mul4(m.View).Mul4(mgl32.Translate3D(m.Model.X(), m.Model.Y(), m.Model.Z()))
}

// Position returns the model origin after the view transform.
func (m MVP) Position() mgl32.Vec3 {
	return m.View.Mul4x1(m.Model.Vec4(1)).Vec3()
}
