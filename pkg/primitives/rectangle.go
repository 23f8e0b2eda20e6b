package primitives

import (
	"image/color"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/glprim/pkg/gfx"
)

var rectangleIndices = []uint32{0, 1, 2, 2, 3, 0}

// Rectangle is an axis-aligned filled rectangle in window pixels, placed by
// its model translation.
type Rectangle struct {
	Width  uint32
	Height uint32
	Color  color.Color
	Matrix gfx.MVP

	source      string
	program     uint32
	buffers     gfx.BufferData
	projUniform int32
}

// NewRectangle creates a rectangle drawn with the shader at source, or the
// bundled rectangle shader when source is empty.
func NewRectangle(width, height uint32, source string) *Rectangle {
	return &Rectangle{
		Width:  width,
		Height: height,
		Color:  color.White,
		Matrix: gfx.NewMVP(800, 600),
		source: source,
	}
}

func rectangleVertices(width, height uint32) []float32 {
	w, h := float32(width), float32(height)
	return []float32{
		0, 0,
		0, h,
		w, h,
		w, 0,
	}
}

func (r *Rectangle) Attach() error {
	src, err := loadSource(r.source, rectangleShader)
	if err != nil {
		return err
	}
	program, err := gfx.BuildProgram(src, "position")
	if err != nil {
		return err
	}
	r.program = program
	r.buffers = gfx.SetupBuffers(rectangleVertices(r.Width, r.Height), rectangleIndices, 2)
	r.projUniform = gfx.UniformLocation(program, "u_proj_matrix")

	gl.UseProgram(program)
	c := gfx.ColorToFloat(r.Color)
	gl.Uniform4f(gfx.UniformLocation(program, "u_color"), c[0], c[1], c[2], c[3])
	r.uploadMatrix()
	return nil
}

func (r *Rectangle) uploadMatrix() {
	if r.program == 0 {
		return
	}
	m := r.Matrix.Matrix()
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.projUniform, 1, false, &m[0])
}

func (r *Rectangle) Render() {
	if r.program == 0 {
		return
	}
	r.uploadMatrix()
	r.buffers.Draw()
}

func (r *Rectangle) Detach() {
	r.buffers.Delete()
	if r.program != 0 {
		gl.DeleteProgram(r.program)
		r.program = 0
	}
}

func (r *Rectangle) Resize(size, _ [2]float32) {
	r.Matrix.Resize(size[0], size[1])
}

func (r *Rectangle) MoveModel(dx, dy, dz float32) {
	r.Matrix.Translate(dx, dy, dz)
}

func (r *Rectangle) SetModel(x, y, z float32) {
	r.Matrix.Model[0], r.Matrix.Model[1], r.Matrix.Model[2] = x, y, z
}

// InBounds reports whether the window point (x, y) lies on the rectangle,
// edges included.
func (r *Rectangle) InBounds(x, y int) bool {
	pos := r.Matrix.Position()
	fx, fy := float32(x), float32(y)
	return fx >= pos.X() && fx <= pos.X()+float32(r.Width) &&
		fy >= pos.Y() && fy <= pos.Y()+float32(r.Height)
}
