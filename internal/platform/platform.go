package platform

import (
	"log/slog"
	"unsafe"
)

type WindowConfig struct {
	PositionX    int
	PositionY    int
	Width        int
	Height       int
	Title        string
	GLMajor      int
	GLMinor      int
	SwapInterval int
	Resizable    bool
	// Logger receives backend warnings; nil discards them.
	Logger *slog.Logger
}

// PlatformWindowWrapper is a native window owning an OpenGL context.
// All methods must be called from the thread that created the wrapper.
type PlatformWindowWrapper interface {
	Show()
	Close()
	NextEventTimeout(timeoutMs int) Event
	MakeCurrent()
	SwapBuffers()
	Size() (int, int)
	FramebufferSize() (int, int)
	ProcAddress(name string) unsafe.Pointer
	Backend() string
}

func (c WindowConfig) glVersion() (int, int) {
	if c.GLMajor <= 0 {
		return 4, 1
	}
	return c.GLMajor, c.GLMinor
}

func (c WindowConfig) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.Logger
}
