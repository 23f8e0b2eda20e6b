// Package config loads the demo application settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window    Window    `toml:"window"`
	Log       Log       `toml:"log"`
	Rectangle Rectangle `toml:"rectangle"`
	Triangle  Triangle  `toml:"triangle"`
	Text      Text      `toml:"text"`
}

type Window struct {
	Title        string `toml:"title"`
	Width        int    `toml:"width"`
	Height       int    `toml:"height"`
	FPS          int    `toml:"fps"`
	SwapInterval int    `toml:"swap_interval"`
	Resizable    bool   `toml:"resizable"`
	ClearColor   Color  `toml:"clear_color"`
}

type Log struct {
	Level slog.Level `toml:"level"`
}

type Rectangle struct {
	Shader string  `toml:"shader"`
	Width  uint32  `toml:"width"`
	Height uint32  `toml:"height"`
	X      float32 `toml:"x"`
	Y      float32 `toml:"y"`
	Color  Color   `toml:"color"`
	Speed  float32 `toml:"speed"`
}

type Triangle struct {
	Shader    string     `toml:"shader"`
	Positions [6]float32 `toml:"positions"`
}

type Text struct {
	Shader  string  `toml:"shader"`
	Content string  `toml:"content"`
	Size    float64 `toml:"size"`
	Width   int     `toml:"width"`
	X       float32 `toml:"x"`
	Y       float32 `toml:"y"`
	Color   Color   `toml:"color"`
}

// Color is written in TOML as "#rrggbb" or "#rrggbbaa".
type Color color.RGBA

func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	s, ok := strings.CutPrefix(string(text), "#")
	if !ok || (len(s) != 6 && len(s) != 8) {
		return fmt.Errorf("%w: color %q: want #rrggbb or #rrggbbaa", ErrInvalid, text)
	}
	if len(s) == 6 {
		s += "ff"
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("%w: color %q: %w", ErrInvalid, text, err)
	}
	*c = Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

func Default() Config {
	return Config{
		Window: Window{
			Title:        "GL Window",
			Width:        800,
			Height:       600,
			FPS:          60,
			SwapInterval: 1,
			Resizable:    true,
			ClearColor:   Color{R: 0x1a, G: 0x33, B: 0x4d, A: 0xff},
		},
		Log: Log{Level: slog.LevelInfo},
		Rectangle: Rectangle{
			Width:  200,
			Height: 200,
			X:      40,
			Y:      40,
			Color:  Color{R: 0x33, G: 0xcc, B: 0x66, A: 0xff},
			Speed:  10,
		},
		Triangle: Triangle{
			Positions: [6]float32{0.5, 1, 0, 0, 1, 0},
		},
		Text: Text{
			Content: "Hello from glprim",
			Size:    24,
			Width:   400,
			X:       300,
			Y:       40,
			Color:   Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		},
	}
}

// Load reads the file at path over the defaults: keys absent from the file
// keep their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Window.FPS < 0 {
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.Window.FPS)
	}
	if c.Text.Size < 0 {
		return fmt.Errorf("%w: text size %g", ErrInvalid, c.Text.Size)
	}
	return nil
}

// Encode writes c back as TOML.
func (c Config) Encode() ([]byte, error) {
	return toml.Marshal(c)
}
