package gfx

// Renderer draws a window's content. All methods run on the thread that
// owns the window's GL context.
type Renderer interface {
	// Init loads GL entry points and prepares every object. It runs once,
	// before the first frame.
	Init(w *Window) error
	Render(w *Window)
	Resize(e Resize)
	Close()
}

type RendererFactory func(w *Window) Renderer
