package native

import "testing"

type pixelSurface struct {
	pixels map[[2]int]Color
}

func (p *pixelSurface) DrawPixel(_ Handle, x, y int, c Color) {
	p.pixels[[2]int{x, y}] = c
}
func (p *pixelSurface) SetBackground(Handle, Color)                     {}
func (p *pixelSurface) DrawText(Handle, int, int, string, Color, int) {}

type rectSurface struct {
	pixelSurface
	rects int
}

func (r *rectSurface) FillRect(Handle, int, int, int, int, Color) { r.rects++ }

func TestFillRectFallsBackToPixels(t *testing.T) {
	s := &pixelSurface{pixels: map[[2]int]Color{}}
	FillRect(s, 1, 2, 3, 4, 2, 0xFF0000)
	if len(s.pixels) != 8 {
		t.Fatalf("expected 8 pixels, got %d", len(s.pixels))
	}
	if s.pixels[[2]int{5, 4}] != 0xFF0000 {
		t.Fatalf("expected bottom-right pixel filled")
	}
	FillRect(s, 1, 0, 0, 0, 5, 0x00FF00)
	if len(s.pixels) != 8 {
		t.Fatalf("zero-width rect should draw nothing")
	}
}

func TestFillRectUsesNativePrimitive(t *testing.T) {
	s := &rectSurface{pixelSurface: pixelSurface{pixels: map[[2]int]Color{}}}
	FillRect(s, 1, 0, 0, 10, 10, 0)
	if s.rects != 1 || len(s.pixels) != 0 {
		t.Fatalf("expected one native fill and no pixels, got %d fills %d pixels", s.rects, len(s.pixels))
	}
}

func TestColorRGB(t *testing.T) {
	r, g, b := Color(0x102030).RGB()
	if r != 0x10 || g != 0x20 || b != 0x30 {
		t.Fatalf("unexpected components %x %x %x", r, g, b)
	}
}

func TestMouseNames(t *testing.T) {
	if MouseScroll.String() != "scroll" || ButtonScrollDown.String() != "Down" {
		t.Fatalf("unexpected names %q %q", MouseScroll, ButtonScrollDown)
	}
}
