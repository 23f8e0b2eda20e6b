// Package resources bundles the shader sources used by the primitives.
package resources

import (
	"embed"

	"github.com/kjkrol/glprim/pkg/shader"
)

const (
	Rectangle = "rectangle.shader"
	Triangle  = "triangle.shader"
	Text      = "text.shader"
)

//go:embed *.shader
var FS embed.FS

// Load splits the bundled shader with the given name.
func Load(name string) (shader.ProgramSource, error) {
	return shader.LoadFS(FS, name)
}
