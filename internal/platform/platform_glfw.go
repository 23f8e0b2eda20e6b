//go:build !sdl2

package platform

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type glfwWindowWrapper struct {
	window *glfw.Window
	events eventQueue
	title  string
}

func NewPlatformWindowWrapper(conf WindowConfig) (PlatformWindowWrapper, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	major, minor := conf.glVersion()
	glfw.WindowHint(glfw.ContextVersionMajor, major)
	glfw.WindowHint(glfw.ContextVersionMinor, minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfwBool(conf.Resizable))

	window, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("glfw create window: %w", err)
	}
	if conf.PositionX != 0 || conf.PositionY != 0 {
		window.SetPos(conf.PositionX, conf.PositionY)
	}

	window.MakeContextCurrent()
	glfw.SwapInterval(conf.SwapInterval)

	w := &glfwWindowWrapper{
		window: window,
		events: newEventQueue(),
		title:  conf.Title,
	}
	w.installCallbacks()
	return w, nil
}

func (w *glfwWindowWrapper) installCallbacks() {
	resize := func(win *glfw.Window, _, _ int) {
		width, height := win.GetSize()
		fbWidth, fbHeight := win.GetFramebufferSize()
		w.events.push(Resize{Width: width, Height: height, FbWidth: fbWidth, FbHeight: fbHeight})
	}
	w.window.SetSizeCallback(resize)
	w.window.SetFramebufferSizeCallback(resize)

	w.window.SetRefreshCallback(func(*glfw.Window) {
		w.events.push(Expose{})
	})
	w.window.SetCloseCallback(func(*glfw.Window) {
		w.events.push(DestroyNotify{})
	})
	w.window.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		if entered {
			w.events.push(EnterNotify{})
		} else {
			w.events.push(LeaveNotify{})
		}
	})
	w.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, _ glfw.ModifierKey) {
		label := glfwKeyLabel(key, scancode)
		switch action {
		case glfw.Press, glfw.Repeat:
			w.events.push(KeyPress{Code: uint64(scancode), Label: label})
		case glfw.Release:
			w.events.push(KeyRelease{Code: uint64(scancode), Label: label})
		}
	})
	w.window.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		x, y := win.GetCursorPos()
		// SDL numbers buttons from 1
		b := uint32(button) + 1
		if action == glfw.Press {
			w.events.push(ButtonPress{Button: b, X: int(x), Y: int(y)})
		} else {
			w.events.push(ButtonRelease{Button: b, X: int(x), Y: int(y)})
		}
	})
	w.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		w.events.push(MotionNotify{X: int(x), Y: int(y)})
	})
	w.window.SetScrollCallback(func(win *glfw.Window, dx, dy float64) {
		x, y := win.GetCursorPos()
		w.events.push(MouseWheel{DeltaX: dx, DeltaY: dy, X: int(x), Y: int(y)})
	})
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// glfwKeyLabel names keys the way SDL_GetKeyName does, so handlers see the
// same labels on both backends.
func glfwKeyLabel(key glfw.Key, scancode int) string {
	switch key {
	case glfw.KeyLeft:
		return "Left"
	case glfw.KeyRight:
		return "Right"
	case glfw.KeyUp:
		return "Up"
	case glfw.KeyDown:
		return "Down"
	case glfw.KeyEscape:
		return "Escape"
	case glfw.KeySpace:
		return "Space"
	case glfw.KeyEnter:
		return "Return"
	case glfw.KeyTab:
		return "Tab"
	case glfw.KeyBackspace:
		return "Backspace"
	}
	return glfw.GetKeyName(key, scancode)
}

func (w *glfwWindowWrapper) Show() {
	w.window.Show()
}

func (w *glfwWindowWrapper) Close() {
	w.window.Destroy()
	glfw.Terminate()
	runtime.UnlockOSThread()
}

func (w *glfwWindowWrapper) NextEventTimeout(timeoutMs int) Event {
	if e, ok := w.events.pop(); ok {
		return e
	}
	if timeoutMs <= 0 {
		glfw.PollEvents()
	} else {
		glfw.WaitEventsTimeout(float64(timeoutMs) / 1000)
	}
	if e, ok := w.events.pop(); ok {
		return e
	}
	if w.window.ShouldClose() {
		return DestroyNotify{}
	}
	return TimeoutEvent{}
}

func (w *glfwWindowWrapper) MakeCurrent() {
	w.window.MakeContextCurrent()
}

func (w *glfwWindowWrapper) SwapBuffers() {
	w.window.SwapBuffers()
}

func (w *glfwWindowWrapper) Size() (int, int) {
	return w.window.GetSize()
}

func (w *glfwWindowWrapper) FramebufferSize() (int, int) {
	return w.window.GetFramebufferSize()
}

func (w *glfwWindowWrapper) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (w *glfwWindowWrapper) Backend() string {
	return "GLFW " + glfw.GetVersionString()
}
