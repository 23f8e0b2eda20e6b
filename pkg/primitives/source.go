// Package primitives provides the drawable shapes: rectangles, triangles
// and text labels. Each primitive builds its own GL program from a
// single-file shader source on Attach.
package primitives

import (
	"github.com/kjkrol/glprim/pkg/shader"
	"github.com/kjkrol/glprim/pkg/shader/resources"
)

// loadSource splits the shader at path, or the bundled one when path is
// empty.
func loadSource(path, bundled string) (shader.ProgramSource, error) {
	if path == "" {
		return resources.Load(bundled)
	}
	return shader.Load(path)
}

const (
	rectangleShader = resources.Rectangle
	triangleShader  = resources.Triangle
	textShader      = resources.Text
)
