package gfx

import "image/color"

// RendererConfig describes how the frame is prepared before objects draw.
// A nil ClearColor clears to opaque black.
type RendererConfig struct {
	ClearColor color.Color
}
