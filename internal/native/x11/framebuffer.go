package x11

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/notcha/notcha/internal/native"
)

// framebuffer is the client-side copy of a window's pixels. Drawing calls
// land here and FlushWindow uploads it.
type framebuffer struct {
	img        *image.RGBA
	background native.Color
}

func newFramebuffer(width, height int, bg native.Color) *framebuffer {
	fb := &framebuffer{img: image.NewRGBA(image.Rect(0, 0, max(width, 1), max(height, 1)))}
	fb.clear(bg)
	return fb
}

func rgba(c native.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

func (fb *framebuffer) bounds() image.Rectangle { return fb.img.Bounds() }

func (fb *framebuffer) clear(c native.Color) {
	fb.background = c
	draw.Draw(fb.img, fb.img.Bounds(), image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

// resize keeps the overlapping pixels and paints new area with the
// background.
func (fb *framebuffer) resize(width, height int) {
	if width == fb.img.Bounds().Dx() && height == fb.img.Bounds().Dy() {
		return
	}
	next := newFramebuffer(width, height, fb.background)
	draw.Draw(next.img, fb.img.Bounds(), fb.img, image.Point{}, draw.Src)
	*fb = *next
}

func (fb *framebuffer) set(x, y int, c native.Color) {
	if image.Pt(x, y).In(fb.img.Bounds()) {
		fb.img.SetRGBA(x, y, rgba(c))
	}
}

func (fb *framebuffer) fill(x, y, w, h int, c native.Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(fb.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(fb.img, r, image.NewUniform(rgba(c)), image.Point{}, draw.Src)
}

// text draws s with its baseline at y using the 7x13 bitmap face, scaled
// by size with nearest-neighbour sampling.
func (fb *framebuffer) text(x, y int, s string, c native.Color, size int) {
	if s == "" {
		return
	}
	size = max(size, 1)
	face := basicfont.Face7x13
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := metrics.Height.Ceil()
	width := font.MeasureString(face, s).Ceil()
	if width <= 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  glyphs,
		Src:  image.NewUniform(rgba(c)),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(s)

	dst := image.Rect(x, y-ascent*size, x+width*size, y+(height-ascent)*size)
	draw.NearestNeighbor.Scale(fb.img, dst, glyphs, glyphs.Bounds(), draw.Over, nil)
}

// rows returns the upload payload for rows [y0, y1) in the server's
// 32-bit BGRX layout.
func (fb *framebuffer) rows(y0, y1 int) []byte {
	b := fb.img.Bounds()
	width := b.Dx()
	out := make([]byte, 0, width*(y1-y0)*4)
	for y := y0; y < y1; y++ {
		row := fb.img.Pix[y*fb.img.Stride : y*fb.img.Stride+width*4]
		for i := 0; i < len(row); i += 4 {
			out = append(out, row[i+2], row[i+1], row[i], 0)
		}
	}
	return out
}

// chunkRows splits a height into bands that fit one PutImage request of at
// most maxBytes payload.
func chunkRows(width, height, maxBytes int) [][2]int {
	if width <= 0 || height <= 0 {
		return nil
	}
	per := max(maxBytes/(width*4), 1)
	var bands [][2]int
	for y := 0; y < height; y += per {
		bands = append(bands, [2]int{y, min(y+per, height)})
	}
	return bands
}
