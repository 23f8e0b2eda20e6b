package gfx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/glprim/pkg/shader"
)

var (
	ErrCompile = errors.New("shader compile error")
	ErrLink    = errors.New("program link error")
)

// BufferData groups the GL objects backing one indexed mesh.
type BufferData struct {
	VBO   uint32
	VAO   uint32
	IBO   uint32
	Count int32
}

// BuildProgram compiles both stages of src, binds attribs[i] to attribute
// location i and links the program. The shader objects are released once
// linked.
func BuildProgram(src shader.ProgramSource, attribs ...string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, src.Vertex)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", src.Path, err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, src.Fragment)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("%s: %w", src.Path, err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	for i, name := range attribs {
		gl.BindAttribLocation(program, uint32(i), gl.Str(name+"\x00"))
	}
	gl.LinkProgram(program)

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%s: %w: %s", src.Path, ErrLink, strings.TrimRight(log, "\x00"))
	}

	Logger().Debug("program linked", "path", src.Path, "program", program)
	return program, nil
}

func compileShader(shaderType uint32, unit shader.Unit) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csources, free := gl.Strs(unit.Source + "\x00")
	gl.ShaderSource(sh, 1, csources, nil)
	free()
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(sh, logLength, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("%s %w: %s", unit.Stage, ErrCompile, strings.TrimRight(log, "\x00"))
	}
	return sh, nil
}

// SetupBuffers uploads an indexed mesh of float vertices. sizes lists the
// component count of each interleaved attribute, in location order.
func SetupBuffers(vertices []float32, indices []uint32, sizes ...int32) BufferData {
	var b BufferData
	b.Count = int32(len(indices))

	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	stride, offsets := attribLayout(sizes)
	for i, size := range sizes {
		gl.EnableVertexAttribArray(uint32(i))
		gl.VertexAttribPointer(uint32(i), size, gl.FLOAT, false, stride, gl.PtrOffset(offsets[i]))
	}

	gl.GenBuffers(1, &b.IBO)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.IBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return b
}

// attribLayout returns the byte stride of an interleaved vertex and the
// byte offset of each attribute.
func attribLayout(sizes []int32) (int32, []int) {
	offsets := make([]int, len(sizes))
	var stride int32
	for i, size := range sizes {
		offsets[i] = int(stride)
		stride += size * 4
	}
	return stride, offsets
}

// Draw binds the mesh and draws it as triangles.
func (b BufferData) Draw() {
	if b.VAO == 0 {
		return
	}
	gl.BindVertexArray(b.VAO)
	gl.DrawElements(gl.TRIANGLES, b.Count, gl.UNSIGNED_INT, nil)
}

func (b *BufferData) Delete() {
	if b.IBO != 0 {
		gl.DeleteBuffers(1, &b.IBO)
	}
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
	}
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
	}
	*b = BufferData{}
}

// UniformLocation looks up a uniform by name; -1 if the program has none.
func UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
