package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTriangle_KeepsPositions(t *testing.T) {
	positions := [6]float32{0.5, 1, 0, 0, 1, 0}
	tr := NewTriangle(positions, "")
	tr.Resize([2]float32{1, 1}, [2]float32{1, 1})
	tr.Render()
	tr.Detach()
	assert.Equal(t, positions, tr.Positions)
}
