package primitives

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"unicode"

	"github.com/go-gl/gl/v3.3-core/gl"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/kjkrol/glprim/pkg/gfx"
)

const defaultTextSize = 24

// Text is a paragraph rasterized once into a texture and drawn as a quad.
// Lines wrap at Width pixels; 0 disables wrapping.
type Text struct {
	Content  string
	Size     float64
	Width    int
	Color    color.Color
	FontData []byte
	Matrix   gfx.MVP

	source   string
	program  uint32
	buffers  gfx.BufferData
	texture  uint32
	uniforms struct {
		proj    int32
		texture int32
		color   int32
	}
}

// NewText creates a label using Go Regular at size points.
func NewText(content string, size float64, width int, source string) *Text {
	return &Text{
		Content: content,
		Size:    size,
		Width:   width,
		Color:   color.White,
		Matrix:  gfx.NewMVP(800, 600),
		source:  source,
	}
}

type glyph struct {
	r   rune
	dot fixed.Point26_6
}

func newFace(data []byte, size float64) (font.Face, error) {
	if data == nil {
		data = goregular.TTF
	}
	if size <= 0 {
		size = defaultTextSize
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("new face: %w", err)
	}
	return face, nil
}

// layoutParagraph positions every printable rune of text on baselines.
// Kerning is applied between neighbours on a line; a glyph crossing width
// starts a new line.
func layoutParagraph(face font.Face, width int, text string) []glyph {
	metrics := face.Metrics()
	lineHeight := metrics.Height
	caret := fixed.Point26_6{Y: metrics.Ascent}
	limit := fixed.I(width)
	prev := rune(-1)

	text = strings.ReplaceAll(text, "\r\n", "\n")
	glyphs := make([]glyph, 0, len(text))
	for _, c := range text {
		if unicode.IsControl(c) {
			if c == '\n' || c == '\r' {
				caret = fixed.Point26_6{Y: caret.Y + lineHeight}
				prev = -1
			}
			continue
		}
		if prev >= 0 {
			caret.X += face.Kern(prev, c)
		}
		prev = c
		bounds, advance, _ := face.GlyphBounds(c)
		if width > 0 && caret.X > 0 && caret.X+bounds.Max.X > limit {
			caret = fixed.Point26_6{Y: caret.Y + lineHeight}
			prev = -1
		}
		glyphs = append(glyphs, glyph{r: c, dot: caret})
		caret.X += advance
	}
	return glyphs
}

// textExtent returns the pixel size of the laid out glyphs.
func textExtent(face font.Face, glyphs []glyph) (int, int) {
	if len(glyphs) == 0 {
		return 0, 0
	}
	descent := face.Metrics().Descent
	var maxX, maxY fixed.Int26_6
	for _, g := range glyphs {
		bounds, advance, _ := face.GlyphBounds(g.r)
		right := g.dot.X + advance
		if b := g.dot.X + bounds.Max.X; b > right {
			right = b
		}
		if right > maxX {
			maxX = right
		}
		if bottom := g.dot.Y + descent; bottom > maxY {
			maxY = bottom
		}
	}
	return maxX.Ceil(), maxY.Ceil()
}

func rasterize(face font.Face, glyphs []glyph) *image.RGBA {
	width, height := textExtent(face, glyphs)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for _, g := range glyphs {
		dr, mask, maskp, _, ok := face.Glyph(g.dot, g.r)
		if !ok {
			continue
		}
		draw.DrawMask(img, dr, image.White, image.Point{}, mask, maskp, draw.Over)
	}
	return img
}

// Rasterize renders Content into an image without touching GL.
func (t *Text) Rasterize() (*image.RGBA, error) {
	face, err := newFace(t.FontData, t.Size)
	if err != nil {
		return nil, err
	}
	defer face.Close()
	return rasterize(face, layoutParagraph(face, t.Width, t.Content)), nil
}

func quadVertices(width, height int) []float32 {
	w, h := float32(width), float32(height)
	return []float32{
		0, 0, 0, 0,
		0, h, 0, 1,
		w, h, 1, 1,
		w, 0, 1, 0,
	}
}

func (t *Text) Attach() error {
	img, err := t.Rasterize()
	if err != nil {
		return err
	}
	src, err := loadSource(t.source, textShader)
	if err != nil {
		return err
	}
	program, err := gfx.BuildProgram(src, "position", "tex_coord")
	if err != nil {
		return err
	}
	t.program = program
	t.uniforms.proj = gfx.UniformLocation(program, "u_proj_matrix")
	t.uniforms.texture = gfx.UniformLocation(program, "u_texture")
	t.uniforms.color = gfx.UniformLocation(program, "u_color")

	bounds := img.Bounds()
	if bounds.Empty() {
		gfx.Logger().Debug("text has no glyphs", "content", t.Content)
		return nil
	}

	gl.GenTextures(1, &t.texture)
	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(bounds.Dx()), int32(bounds.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	t.buffers = gfx.SetupBuffers(quadVertices(bounds.Dx(), bounds.Dy()), rectangleIndices, 2, 2)

	gl.UseProgram(program)
	gl.Uniform1i(t.uniforms.texture, 0)
	c := gfx.ColorToFloat(t.Color)
	gl.Uniform4f(t.uniforms.color, c[0], c[1], c[2], c[3])
	return nil
}

func (t *Text) Render() {
	if t.program == 0 || t.texture == 0 {
		return
	}
	m := t.Matrix.Matrix()
	gl.UseProgram(t.program)
	gl.UniformMatrix4fv(t.uniforms.proj, 1, false, &m[0])
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	t.buffers.Draw()
}

func (t *Text) Detach() {
	t.buffers.Delete()
	if t.texture != 0 {
		gl.DeleteTextures(1, &t.texture)
		t.texture = 0
	}
	if t.program != 0 {
		gl.DeleteProgram(t.program)
		t.program = 0
	}
}

func (t *Text) Resize(size, _ [2]float32) {
	t.Matrix.Resize(size[0], size[1])
}

func (t *Text) MoveModel(dx, dy, dz float32) {
	t.Matrix.Translate(dx, dy, dz)
}

func (t *Text) SetModel(x, y, z float32) {
	t.Matrix.Model[0], t.Matrix.Model[1], t.Matrix.Model[2] = x, y, z
}
