package gfx

// Object is a drawable primitive that owns its GL program and buffers.
//
// Attach runs once, on the render thread, after GL entry points are loaded.
// An Attach error is fatal for the window: rendering does not start.
type Object interface {
	Attach() error
	Render()
	Detach()
	// Resize receives the new window size and drawable size in pixels.
	Resize(size, drawSize [2]float32)
}

// Mover is implemented by objects placed with a model translation.
type Mover interface {
	MoveModel(dx, dy, dz float32)
	SetModel(x, y, z float32)
}
