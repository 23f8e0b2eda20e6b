package primitives

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/glprim/pkg/gfx"
)

var triangleIndices = []uint32{0, 1, 2}

// Triangle draws three vertices given directly in clip-space-like
// coordinates; the bundled shader shifts them by -0.5.
type Triangle struct {
	Positions [6]float32

	source  string
	program uint32
	buffers gfx.BufferData
}

func NewTriangle(positions [6]float32, source string) *Triangle {
	return &Triangle{Positions: positions, source: source}
}

func (t *Triangle) Attach() error {
	src, err := loadSource(t.source, triangleShader)
	if err != nil {
		return err
	}
	program, err := gfx.BuildProgram(src, "in_position")
	if err != nil {
		return err
	}
	t.program = program
	t.buffers = gfx.SetupBuffers(t.Positions[:], triangleIndices, 2)
	return nil
}

func (t *Triangle) Render() {
	if t.program == 0 {
		return
	}
	gl.UseProgram(t.program)
	t.buffers.Draw()
}

func (t *Triangle) Detach() {
	t.buffers.Delete()
	if t.program != 0 {
		gl.DeleteProgram(t.program)
		t.program = 0
	}
}

func (t *Triangle) Resize(_, _ [2]float32) {}
