// Package scroll implements a vertical scrollbar whose thumb size reflects
// the visible fraction of the content.
package scroll

import (
	"math"

	"github.com/notcha/notcha/internal/logging/events"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/theme"
)

const (
	Width          = 12
	MinThumbHeight = 30
	MinStep        = 50
	StepFraction   = 0.2
)

// Canvas is the drawing surface a Bar renders onto.
type Canvas interface {
	FillRect(x, y, w, h int, c native.Color)
}

// Viewport places the track: the full window size and the height reserved
// above the track (the menu bar).
type Viewport struct {
	Width, Height, Top int
}

func (v Viewport) trackHeight() float64 {
	return float64(v.Height - v.Top)
}

// Thumb is the thumb rectangle in window coordinates.
type Thumb struct {
	X, Y, Height int
}

// Bar holds the scroll offset and drag/hover state for one window.
type Bar struct {
	offset   float64
	content  float64
	visible  float64
	dragging bool
	hovered  bool
	colors   theme.Scroll
}

func NewBar() *Bar {
	return &Bar{colors: theme.Default().Scroll}
}

// UpdateDimensions records new content and viewport heights. The offset is
// pulled down when it no longer fits; it is never pushed up.
func (b *Bar) UpdateDimensions(contentHeight, visibleHeight int) {
	b.content = float64(contentHeight)
	b.visible = float64(visibleHeight)
	if m := b.MaxScroll(); b.offset > m {
		b.offset = m
	}
}

func (b *Bar) ContentHeight() int { return int(b.content) }
func (b *Bar) VisibleHeight() int { return int(b.visible) }
func (b *Bar) Offset() float64    { return b.offset }
func (b *Bar) Dragging() bool     { return b.dragging }
func (b *Bar) Hovered() bool      { return b.hovered }

// IsScrollable reports whether the content overflows the viewport.
func (b *Bar) IsScrollable() bool {
	return b.content > b.visible
}

// MaxScroll is the largest valid offset.
func (b *Bar) MaxScroll() float64 {
	return math.Max(0, b.content-b.visible)
}

func (b *Bar) clamp(v float64) float64 {
	return math.Max(0, math.Min(b.MaxScroll(), v))
}

// SetOffset moves to v, clamped, and reports whether the offset changed.
func (b *Bar) SetOffset(v float64) bool {
	old := b.offset
	b.offset = b.clamp(v)
	if b.offset != old {
		events.Scroll.Offset(b.offset, b.MaxScroll())
		return true
	}
	return false
}

// HandleScroll moves by delta steps of max(50, 20% of the viewport).
func (b *Bar) HandleScroll(delta int) bool {
	if !b.IsScrollable() {
		return false
	}
	step := math.Max(MinStep, b.visible*StepFraction)
	return b.SetOffset(b.offset + float64(delta)*step)
}

// geometry returns the unrounded thumb top (relative to the track) and height.
func (b *Bar) geometry(v Viewport) (top, height float64) {
	track := v.trackHeight()
	if b.content <= 0 || track <= 0 {
		return 0, math.Max(track, 0)
	}
	height = track * b.visible / b.content
	height = math.Min(math.Max(height, MinThumbHeight), track)
	if m := b.MaxScroll(); m > 0 {
		top = (track - height) * (b.offset / m)
	}
	return top, height
}

// ThumbBounds returns the thumb rectangle for the given viewport.
func (b *Bar) ThumbBounds(v Viewport) Thumb {
	top, height := b.geometry(v)
	return Thumb{
		X:      v.Width - Width,
		Y:      int(math.Round(float64(v.Top) + top)),
		Height: int(math.Round(height)),
	}
}

// OffsetForThumbCenter converts a pointer y that the thumb's center should
// follow into a clamped scroll offset.
func (b *Bar) OffsetForThumbCenter(y int, v Viewport) float64 {
	_, height := b.geometry(v)
	span := v.trackHeight() - height
	if span <= 0 {
		return b.offset
	}
	top := math.Max(0, math.Min(span, float64(y-v.Top)-height/2))
	return b.clamp(top / span * b.MaxScroll())
}

// InScrollbar reports whether (x, y) falls on the track.
func (b *Bar) InScrollbar(x, y int, v Viewport) bool {
	if !b.IsScrollable() {
		return false
	}
	return x >= v.Width-Width && x < v.Width && y >= v.Top && y < v.Height
}

// InThumb reports whether (x, y) falls on the thumb.
func (b *Bar) InThumb(x, y int, v Viewport) bool {
	if !b.IsScrollable() {
		return false
	}
	t := b.ThumbBounds(v)
	return x >= t.X && x < v.Width && y >= t.Y && y < t.Y+t.Height
}

// HandleMousePress starts a drag on the thumb or jumps on the track. It
// reports whether the press landed on the scrollbar.
func (b *Bar) HandleMousePress(x, y int, v Viewport) bool {
	if !b.IsScrollable() {
		return false
	}
	if b.InThumb(x, y, v) {
		b.dragging = true
		events.Scroll.Drag(true)
		return true
	}
	if b.InScrollbar(x, y, v) {
		track := v.trackHeight()
		if track > 0 {
			b.SetOffset(float64(y-v.Top) / track * b.MaxScroll())
		}
		return true
	}
	return false
}

// HandleMouseRelease ends a drag and reports whether one was in progress.
func (b *Bar) HandleMouseRelease() bool {
	if !b.dragging {
		return false
	}
	b.dragging = false
	events.Scroll.Drag(false)
	return true
}

// HandleMouseMove updates hover and, while dragging, recenters the thumb on
// the pointer. It reports whether a redraw is needed.
func (b *Bar) HandleMouseMove(x, y int, v Viewport) bool {
	was := b.hovered
	b.hovered = b.InThumb(x, y, v)
	if b.dragging {
		b.SetOffset(b.OffsetForThumbCenter(y, v))
		return true
	}
	return was != b.hovered
}

// VisibleWidth is the content width left beside the scrollbar.
func (b *Bar) VisibleWidth(windowWidth int) int {
	if b.IsScrollable() {
		return windowWidth - Width
	}
	return windowWidth
}

// Draw paints the track and thumb; nothing is drawn when not scrollable.
func (b *Bar) Draw(c Canvas, v Viewport) {
	if !b.IsScrollable() {
		return
	}
	x := v.Width - Width
	c.FillRect(x, v.Top, Width, v.Height-v.Top, b.colors.Track)
	color := b.colors.Thumb
	switch {
	case b.dragging:
		color = b.colors.ThumbActive
	case b.hovered:
		color = b.colors.ThumbHover
	}
	t := b.ThumbBounds(v)
	c.FillRect(t.X, t.Y, Width, min(t.Height, v.Height-t.Y), color)
}
