package renderer

import "github.com/kjkrol/glprim/pkg/gfx"

// NewRendererFactory returns a factory for a renderer drawing objects in
// the given order every frame.
func NewRendererFactory(conf gfx.RendererConfig, objects ...gfx.Object) gfx.RendererFactory {
	return func(w *gfx.Window) gfx.Renderer {
		return newRenderer(w, conf, objects)
	}
}
