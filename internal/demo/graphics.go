package demo

import "github.com/notcha/notcha/internal/window"

const (
	crossThickness = 5
	squareSize     = 90
	squareMargin   = 10
)

func openGraphics(h Host) error {
	w := h.CreateWindow("Graphics Demo", 800, 600)
	return open(w, func(width, height int) {
		drawGraphics(w, width, height)
		w.DrawMenuBar().Flush()
	})
}

func drawGraphics(w *window.Window, width, height int) {
	top := w.MenuBarHeight()
	content := height - top
	w.SetBackground(0xF0F0F0)

	cx := width / 2
	cy := top + content/2
	half := int(float64(min(width, content))*0.6) / 2
	clip := func(x0, y0, x1, y1 int) (int, int, int, int) {
		return max(x0, 0), max(y0, top), min(x1, width), min(y1, height)
	}
	x0, y0, x1, y1 := clip(cx-half, cy-crossThickness, cx+half, cy+crossThickness)
	w.FillRect(x0, y0, x1-x0, y1-y0, red)
	x0, y0, x1, y1 = clip(cx-crossThickness, cy-half, cx+crossThickness, cy+half)
	w.FillRect(x0, y0, x1-x0, y1-y0, blue)

	left := squareMargin
	right := width - squareMargin - squareSize
	upper := top + squareMargin
	lower := height - squareMargin - squareSize
	fitsX := width > squareMargin+squareSize
	fitsY := height > top+squareMargin+squareSize

	w.FillRect(left, upper, min(squareSize, width-left), min(squareSize, height-upper), green)
	if fitsX {
		w.FillRect(right, upper, squareSize, min(squareSize, height-upper), yellow)
	}
	if fitsY {
		w.FillRect(left, lower, min(squareSize, width-left), squareSize, blue)
	}
	if fitsX && fitsY {
		w.FillRect(right, lower, squareSize, squareSize, red)
	}
}
