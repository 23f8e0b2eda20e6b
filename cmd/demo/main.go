package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/kjkrol/glprim/internal/config"
	"github.com/kjkrol/glprim/internal/renderer"
	"github.com/kjkrol/glprim/pkg/gfx"
	"github.com/kjkrol/glprim/pkg/primitives"
)

func init() {
	// GL and the window system must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "demo:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	gfx.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Log.Level})))

	rect := primitives.NewRectangle(cfg.Rectangle.Width, cfg.Rectangle.Height, cfg.Rectangle.Shader)
	rect.Color = cfg.Rectangle.Color
	rect.SetModel(cfg.Rectangle.X, cfg.Rectangle.Y, 0)

	triangle := primitives.NewTriangle(cfg.Triangle.Positions, cfg.Triangle.Shader)

	label := primitives.NewText(cfg.Text.Content, cfg.Text.Size, cfg.Text.Width, cfg.Text.Shader)
	label.Color = cfg.Text.Color
	label.SetModel(cfg.Text.X, cfg.Text.Y, 0)

	window, err := gfx.NewWindow(gfx.WindowConfig{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		Title:        cfg.Window.Title,
		SwapInterval: cfg.Window.SwapInterval,
		Resizable:    cfg.Window.Resizable,
	}, renderer.NewRendererFactory(
		gfx.RendererConfig{ClearColor: cfg.Window.ClearColor},
		triangle, rect, label,
	))
	if err != nil {
		return err
	}
	defer window.Close()

	ctx := &DemoContext{window: window, rect: rect, speed: cfg.Rectangle.Speed}

	window.RefreshRate(cfg.Window.FPS)
	window.Show()
	if err := window.ListenEvents(func(event gfx.Event) {
		handleEvent(event, ctx)
	}, gfx.DrainMax(64)); err != nil {
		return err
	}

	fmt.Println("Program closed")
	return nil
}

type DemoContext struct {
	lmbPressed bool
	lastX      int
	lastY      int
	window     *gfx.Window
	rect       *primitives.Rectangle
	speed      float32
}

func handleEvent(event gfx.Event, ctx *DemoContext) {
	switch e := event.(type) {
	case gfx.KeyPress:
		switch e.Label {
		case "Left":
			ctx.rect.MoveModel(-ctx.speed, 0, 0)
		case "Right":
			ctx.rect.MoveModel(ctx.speed, 0, 0)
		case "Up":
			ctx.rect.MoveModel(0, -ctx.speed, 0)
		case "Down":
			ctx.rect.MoveModel(0, ctx.speed, 0)
		case "Escape":
			ctx.window.Stop()
		}
	case gfx.ButtonPress:
		if e.Button == 1 && ctx.rect.InBounds(e.X, e.Y) {
			ctx.lmbPressed = true
			ctx.lastX, ctx.lastY = e.X, e.Y
		}
	case gfx.ButtonRelease:
		if e.Button == 1 {
			ctx.lmbPressed = false
		}
	case gfx.MotionNotify:
		if ctx.lmbPressed {
			ctx.rect.MoveModel(float32(e.X-ctx.lastX), float32(e.Y-ctx.lastY), 0)
			ctx.lastX, ctx.lastY = e.X, e.Y
		}
	case gfx.Resize:
		gfx.Logger().Info("window resized", "width", e.Width, "height", e.Height)
	case gfx.DestroyNotify:
		gfx.Logger().Info("window closed", "frames", ctx.window.Frames())
	}
}
