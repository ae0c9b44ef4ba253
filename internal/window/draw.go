package window

import "github.com/notcha/notcha/internal/native"

// Draw sets one pixel.
func (w *Window) Draw(x, y int, c native.Color) *Window {
	if w.usable("draw") {
		w.backend.DrawPixel(w.handle, x, y, c)
	}
	return w
}

// FillRect fills a rectangle, natively when the backend supports it.
func (w *Window) FillRect(x, y, width, height int, c native.Color) *Window {
	if w.usable("fill rectangle") {
		native.FillRect(w.backend, w.handle, x, y, width, height, c)
	}
	return w
}

// SetBackground clears the window to c.
func (w *Window) SetBackground(c native.Color) *Window {
	if w.usable("set background") {
		w.backend.SetBackground(w.handle, c)
	}
	return w
}

// Write draws text with its baseline at y. Sizes below 1 draw at size 1.
func (w *Window) Write(x, y int, text string, c native.Color, size int) *Window {
	if size < 1 {
		size = 1
	}
	if w.usable("write text") {
		w.backend.DrawText(w.handle, x, y, text, c, size)
	}
	return w
}

// canvas adapts a window to the menu and scroll drawing interfaces.
type canvas struct{ w *Window }

func (c canvas) FillRect(x, y, width, height int, col native.Color) {
	c.w.FillRect(x, y, width, height, col)
}

func (c canvas) Text(x, y int, text string, col native.Color, size int) {
	c.w.Write(x, y, text, col, size)
}
