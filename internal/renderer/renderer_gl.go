package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/glprim/pkg/gfx"
)

type renderer struct {
	initialized bool
	clearColor  [4]float32
	objects     objectSet
	fbWidth     int
	fbHeight    int
}

func newRenderer(_ *gfx.Window, conf gfx.RendererConfig, objects []gfx.Object) *renderer {
	clearColor := [4]float32{0, 0, 0, 1}
	if conf.ClearColor != nil {
		clearColor = gfx.ColorToFloat(conf.ClearColor)
	}
	return &renderer{
		clearColor: clearColor,
		objects:    objectSet{objects: objects},
	}
}

func (r *renderer) Init(w *gfx.Window) error {
	if r.initialized {
		return nil
	}
	if err := gl.InitWithProcAddrFunc(w.ProcAddress); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	gfx.Logger().Info("GL context ready",
		"backend", w.Backend(),
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)

	r.fbWidth, r.fbHeight = w.FramebufferSize()
	if err := r.objects.attachAll(); err != nil {
		return err
	}
	// objects are built for the default projection; bring them to the
	// actual window size
	width, height := w.Size()
	r.objects.resizeAll(gfx.Resize{Width: width, Height: height, FbWidth: r.fbWidth, FbHeight: r.fbHeight})

	r.initialized = true
	return nil
}

func (r *renderer) Render(w *gfx.Window) {
	if !r.initialized {
		return
	}
	gl.Viewport(0, 0, int32(r.fbWidth), int32(r.fbHeight))
	gl.ClearColor(r.clearColor[0], r.clearColor[1], r.clearColor[2], r.clearColor[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.objects.renderAll()

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		gfx.Logger().Warn("GL error after frame", "code", fmt.Sprintf("0x%04x", errCode), "frame", w.Frames())
	}
}

func (r *renderer) Resize(e gfx.Resize) {
	r.fbWidth, r.fbHeight = e.FbWidth, e.FbHeight
	r.objects.resizeAll(e)
}

func (r *renderer) Close() {
	if !r.initialized {
		return
	}
	r.objects.detachAll()
	r.initialized = false
}
