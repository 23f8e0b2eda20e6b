package gfx

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"
	"unsafe"

	"github.com/kjkrol/glprim/internal/platform"
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
}

func (w WindowConfig) convert() platform.WindowConfig {
	return platform.WindowConfig{
		PositionX:    w.PositionX,
		PositionY:    w.PositionY,
		Width:        w.Width,
		Height:       w.Height,
		Title:        w.Title,
		GLMajor:      w.GLMajor,
		GLMinor:      w.GLMinor,
		SwapInterval: w.SwapInterval,
		Resizable:    w.Resizable,
		Logger:       Logger(),
	}
}

// Window is a native window with a current GL context and the render loop
// driving it. A Window must be used from the goroutine that created it.
type Window struct {
	platformWinWrapper platform.PlatformWindowWrapper
	renderer           Renderer
	refreshDelay       time.Duration
	updateStep         time.Duration
	update             func(time.Duration)
	width              int
	height             int
	fbWidth            int
	fbHeight           int
	frames             uint64
	wg                 sync.WaitGroup
	ctx                context.Context
	cancel             context.CancelFunc

	updates chan func()
}

const (
	maxEventWait      = 50 * time.Millisecond
	updatesBufferSize = 1024
)

// NewWindow opens a window using the backend selected at build time.
func NewWindow(conf WindowConfig, factory RendererFactory) (*Window, error) {
	if conf.Width <= 0 || conf.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", conf.Width, conf.Height)
	}
	wrapper, err := platform.NewPlatformWindowWrapper(conf.convert())
	if err != nil {
		return nil, err
	}
	Logger().Info("window created", "backend", wrapper.Backend(), "title", conf.Title)
	return newWindow(wrapper, factory), nil
}

func newWindow(wrapper platform.PlatformWindowWrapper, factory RendererFactory) *Window {
	window := &Window{
		platformWinWrapper: wrapper,
		updates:            make(chan func(), updatesBufferSize),
	}
	window.width, window.height = wrapper.Size()
	window.fbWidth, window.fbHeight = wrapper.FramebufferSize()
	window.ctx, window.cancel = context.WithCancel(context.Background())
	if factory != nil {
		window.renderer = factory(window)
	}
	return window
}

func (w *Window) Size() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.width, w.height
}

// FramebufferSize is the drawable size in pixels, larger than Size on
// high-DPI displays.
func (w *Window) FramebufferSize() (int, int) {
	if w == nil {
		return 0, 0
	}
	return w.fbWidth, w.fbHeight
}

// ProcAddress resolves a GL entry point through the window's backend.
func (w *Window) ProcAddress(name string) unsafe.Pointer {
	return w.platformWinWrapper.ProcAddress(name)
}

func (w *Window) Backend() string {
	return w.platformWinWrapper.Backend()
}

// Frames is the number of frames rendered so far.
func (w *Window) Frames() uint64 {
	return w.frames
}

func (w *Window) Show() {
	w.platformWinWrapper.Show()
}

func (w *Window) RefreshRate(fps int) {
	if fps <= 0 {
		fps = 60
	}
	w.refreshDelay = time.Second / time.Duration(fps)
}

// OnUpdate registers a function called with a fixed time step from the
// render loop, before rendering.
func (w *Window) OnUpdate(step time.Duration, update func(time.Duration)) {
	w.updateStep = step
	w.update = update
}

// Post schedules fn to run on the render loop before the next frame. It
// never blocks, so it is safe to call from the loop itself: when the queue
// is full fn is dropped and a warning logged. Post after Stop is a no-op.
func (w *Window) Post(fn func()) {
	if w.ctx.Err() != nil {
		return
	}
	select {
	case w.updates <- fn:
	default:
		Logger().Warn("update queue full, update dropped", "capacity", cap(w.updates))
	}
}

func (w *Window) Stop() {
	w.cancel()
}

func (w *Window) Close() {
	w.cancel()
	if w.renderer != nil {
		w.renderer.Close()
		w.renderer = nil
	}
	w.platformWinWrapper.Close()
}

func (w *Window) SetRenderer(renderer Renderer) {
	if w == nil {
		return
	}
	if w.renderer != nil {
		w.renderer.Close()
	}
	w.renderer = renderer
}

// ListenEvents runs the render loop until Stop is called or the window is
// closed by the user. Events are passed to handleEvent; resize events reach
// the renderer first. It returns the renderer's Init error, if any.
func (w *Window) ListenEvents(handleEvent func(event Event), strategy EventsConsumerStrategy) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	w.platformWinWrapper.MakeCurrent()
	if w.renderer != nil {
		if err := w.renderer.Init(w); err != nil {
			return fmt.Errorf("renderer init: %w", err)
		}
	}

	if strategy == nil {
		strategy = DrainAll()
	}
	poll := func(timeoutMs int) (Event, bool) {
		platformEvent := w.platformWinWrapper.NextEventTimeout(timeoutMs)
		if _, ok := platformEvent.(platform.TimeoutEvent); ok {
			return nil, false
		}
		return convert(platformEvent), true
	}
	dispatch := func(event Event) {
		if e, ok := event.(Resize); ok {
			w.resize(e)
		}
		if handleEvent != nil {
			handleEvent(event)
		}
		if _, ok := event.(DestroyNotify); ok {
			w.Stop()
		}
	}

	render := newRenderUpdater(w.refreshDelay, w.renderFrame)
	var step *stepUpdater
	if w.update != nil {
		step = newStepUpdater(w.updateStep, w.update)
	}

	for {
		select {
		case <-w.ctx.Done():
			w.wg.Wait()
			Logger().Info("render loop stopped",
				"frames", render.frames,
				"seconds", time.Since(render.started).Seconds(),
				"fps", render.fps())
			return nil
		default:
			strategy.Consume(poll, dispatch, eventTimeoutMs(time.Now(), render.nextRenderTime))
			w.drainUpdates()
			if step != nil {
				step.run()
			}
			render.run()
		}
	}
}

func (w *Window) drainUpdates() {
	for {
		select {
		case upd := <-w.updates:
			upd()
		default:
			return
		}
	}
}

func (w *Window) resize(e Resize) {
	w.width, w.height = e.Width, e.Height
	w.fbWidth, w.fbHeight = e.FbWidth, e.FbHeight
	Logger().Debug("window resized", "width", e.Width, "height", e.Height, "fbWidth", e.FbWidth, "fbHeight", e.FbHeight)
	if w.renderer != nil {
		w.renderer.Resize(e)
	}
}

func (w *Window) renderFrame() {
	if w.renderer != nil {
		w.renderer.Render(w)
	}
	w.platformWinWrapper.SwapBuffers()
	w.frames++
}

func (w *Window) StartAnimation(animation *Animation) {
	animation.Run(w.ctx, &w.wg, w.updates)
}
