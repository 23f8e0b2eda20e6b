//go:build sdl2

package platform

import (
	"fmt"
	"log/slog"
	"runtime"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

type sdlWindowWrapper struct {
	window    *sdl.Window
	glContext sdl.GLContext
	title     string
	log       *slog.Logger
}

func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	runtime.LockOSThread()
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("SDL_Init: %w", err)
	}

	major, minor := conf.glVersion()
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, major},
		{sdl.GL_CONTEXT_MINOR_VERSION, minor},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_DEBUG_FLAG | sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			sdl.Quit()
			runtime.UnlockOSThread()
			return nil, fmt.Errorf("SDL_GL_SetAttribute: %w", err)
		}
	}

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_HIDDEN | sdl.WINDOW_ALLOW_HIGHDPI)
	if conf.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if conf.PositionX != 0 || conf.PositionY != 0 {
		x, y = int32(conf.PositionX), int32(conf.PositionY)
	}
	window, err := sdl.CreateWindow(conf.Title, x, y, int32(conf.Width), int32(conf.Height), flags)
	if err != nil {
		sdl.Quit()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("SDL_CreateWindow: %w", err)
	}

	glContext, err := window.GLCreateContext()
	if err != nil {
		window.Destroy()
		sdl.Quit()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("SDL_GL_CreateContext: %w", err)
	}
	if err := window.GLMakeCurrent(glContext); err != nil {
		sdl.GLDeleteContext(glContext)
		window.Destroy()
		sdl.Quit()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("SDL_GL_MakeCurrent: %w", err)
	}
	log := conf.logger()
	if err := sdl.GLSetSwapInterval(conf.SwapInterval); err != nil {
		log.Warn("SDL_GL_SetSwapInterval failed", "interval", conf.SwapInterval, "err", err)
	}

	return &sdlWindowWrapper{
		window:    window,
		glContext: glContext,
		title:     conf.Title,
		log:       log,
	}, nil
}

func (w *sdlWindowWrapper) Show() {
	w.window.Show()
	sdl.EventState(sdl.QUIT, sdl.ENABLE)
}

func (w *sdlWindowWrapper) Close() {
	sdl.GLDeleteContext(w.glContext)
	w.window.Destroy()
	sdl.Quit()
	runtime.UnlockOSThread()
}

func (w *sdlWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	var event sdl.Event
	if timeoutMs <= 0 {
		event = sdl.PollEvent()
	} else {
		event = sdl.WaitEventTimeout(timeoutMs)
	}
	if event == nil {
		return TimeoutEvent{}
	}
	return w.convert(event)
}

func (w *sdlWindowWrapper) convert(event sdl.Event) Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return DestroyNotify{}
	case *sdl.KeyboardEvent:
		code := uint64(e.Keysym.Scancode)
		label := sdl.GetKeyName(e.Keysym.Sym)
		if e.Type == sdl.KEYDOWN {
			return KeyPress{Code: code, Label: label}
		}
		return KeyRelease{Code: code, Label: label}
	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return ButtonPress{Button: uint32(e.Button), X: int(e.X), Y: int(e.Y)}
		}
		return ButtonRelease{Button: uint32(e.Button), X: int(e.X), Y: int(e.Y)}
	case *sdl.MouseMotionEvent:
		return MotionNotify{X: int(e.X), Y: int(e.Y)}
	case *sdl.MouseWheelEvent:
		dx := float64(e.X)
		dy := float64(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dx = -dx
			dy = -dy
		}
		mx, my, _ := sdl.GetMouseState()
		return MouseWheel{DeltaX: dx, DeltaY: dy, X: int(mx), Y: int(my)}
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
			width, height := w.Size()
			fbWidth, fbHeight := w.FramebufferSize()
			return Resize{Width: width, Height: height, FbWidth: fbWidth, FbHeight: fbHeight}
		case sdl.WINDOWEVENT_EXPOSED:
			return Expose{}
		case sdl.WINDOWEVENT_ENTER:
			return EnterNotify{}
		case sdl.WINDOWEVENT_LEAVE:
			return LeaveNotify{}
		case sdl.WINDOWEVENT_CLOSE:
			return DestroyNotify{}
		}
	}
	return UnexpectedEvent{}
}

func (w *sdlWindowWrapper) MakeCurrent() {
	if err := w.window.GLMakeCurrent(w.glContext); err != nil {
		w.log.Warn("SDL_GL_MakeCurrent failed", "err", err)
	}
}

func (w *sdlWindowWrapper) SwapBuffers() {
	w.window.GLSwap()
}

func (w *sdlWindowWrapper) Size() (int, int) {
	width, height := w.window.GetSize()
	return int(width), int(height)
}

func (w *sdlWindowWrapper) FramebufferSize() (int, int) {
	width, height := w.window.GLGetDrawableSize()
	return int(width), int(height)
}

func (w *sdlWindowWrapper) ProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

func (w *sdlWindowWrapper) Backend() string {
	var v sdl.Version
	sdl.GetVersion(&v)
	return fmt.Sprintf("SDL %d.%d.%d", v.Major, v.Minor, v.Patch)
}
