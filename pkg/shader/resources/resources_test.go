package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kjkrol/glprim/pkg/shader"
)

func TestBundledShadersSplit(t *testing.T) {
	for _, name := range []string{Rectangle, Triangle, Text} {
		t.Run(name, func(t *testing.T) {
			ps, err := Load(name)
			require.NoError(t, err)
			assert.Contains(t, ps.Vertex.Source, "void main()")
			assert.Contains(t, ps.Fragment.Source, "void main()")
			assert.NotContains(t, ps.Vertex.Source, "#shader")
			assert.NotContains(t, ps.Fragment.Source, "#shader")
		})
	}
}

func TestRectangleHeaderTextDropped(t *testing.T) {
	ps, err := Load(Rectangle)
	require.NoError(t, err)
	assert.NotContains(t, ps.Vertex.Source, "Rectangle in window pixel")
	assert.Contains(t, ps.Vertex.Source, "u_proj_matrix")
}

func TestMissingBundledShader(t *testing.T) {
	_, err := Load("circle.shader")
	assert.ErrorIs(t, err, shader.ErrSourceUnreadable)
}
