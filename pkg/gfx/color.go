package gfx

import "image/color"

// ColorToFloat converts c to normalized RGBA, the form GL uniforms take.
// A nil color maps to transparent black.
func ColorToFloat(c color.Color) [4]float32 {
	if c == nil {
		return [4]float32{}
	}
	r, g, b, a := c.RGBA()
	const inv = 1.0 / 65535.0
	return [4]float32{
		float32(r) * inv,
		float32(g) * inv,
		float32(b) * inv,
		float32(a) * inv,
	}
}
