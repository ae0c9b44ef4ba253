package demo

import (
	"github.com/notcha/notcha/internal/menu"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/window"
)

type button struct {
	x, y, width, height int
	label               string
	action              func()
}

// contains uses inclusive edges, so the border pixel row below the button
// still counts as a hit.
func (b button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.width && y >= b.y && y <= b.y+b.height
}

func (b button) draw(w *window.Window) {
	w.FillRect(b.x, b.y, b.width, b.height, lightBlue)
	w.FillRect(b.x, b.y, b.width, 1, blue).
		FillRect(b.x, b.y+b.height-1, b.width, 1, blue).
		FillRect(b.x, b.y, 1, b.height, blue).
		FillRect(b.x+b.width-1, b.y, 1, b.height, blue)
	labelX := b.x + (b.width-len(b.label)*menu.CharWidth)/2
	labelY := b.y + (b.height-10)/2
	w.Write(labelX, labelY, b.label, black, 2)
}

// buttonRow tracks the buttons laid out by the last frame.
type buttonRow struct {
	buttons []button
}

func (r *buttonRow) draw(w *window.Window) {
	for _, b := range r.buttons {
		b.draw(w)
	}
}

// press runs the first button under ev and reports whether one was hit.
func (r *buttonRow) press(ev native.MouseEvent) bool {
	for _, b := range r.buttons {
		if b.contains(int(ev.X), int(ev.Y)) {
			if b.action != nil {
				b.action()
			}
			return true
		}
	}
	return false
}
