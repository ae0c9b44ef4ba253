package demo

import (
	"fmt"
	"time"

	"github.com/notcha/notcha/internal/loop"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/window"
)

const (
	historyLimit = 12
	historyShown = 8

	// moveRedrawInterval rate-limits repaints driven by pointer motion.
	moveRedrawInterval = 100 * time.Millisecond
)

func focusLine(w *window.Window, x, y int) {
	if w.IsFocused() {
		w.Write(x, y, "Focus: YES", green, 1)
		return
	}
	w.Write(x, y, "Focus: NO", red, 1)
}

func drawHistory(w *window.Window, entries []string, y, height int) {
	for _, entry := range tail(entries, historyShown) {
		if y+20 > height {
			return
		}
		w.Write(40, y, entry, blue, 1)
		y += 25
	}
}

func openKeyboard(h Host) error {
	w := h.CreateWindow("Keyboard Test", 600, 400)
	var keys []string
	record := func(prefix string) func(native.KeyEvent) {
		return func(ev native.KeyEvent) {
			keys = pushCapped(keys, prefix+" "+ev.Key, historyLimit)
			w.Redraw()
		}
	}
	w.Keyboard().OnKeyPress(record("[DOWN]"))
	w.Keyboard().OnKeyRelease(record("[UP]"))
	return open(w, func(width, height int) {
		top := w.MenuBarHeight() + 20
		w.SetBackground(paper)
		w.Write(width/2-80, top, "Keyboard Event Test", black, 1)
		w.Write(20, top+40, "Type on this window to see keyboard events", gray, 1)
		focusLine(w, 20, top+70)
		w.Write(20, top+90, "(Per-window keyboard handling)", blue, 1)
		w.Write(20, top+120, "Recent Keys:", black, 1)
		drawHistory(w, keys, top+150, height)
		w.DrawMenuBar().Flush()
	})
}

func openMouse(h Host) error {
	w := h.CreateWindow("Mouse Test", 600, 500)
	var log []string
	var lastX, lastY int32
	moves := loop.NewThrottle(moveRedrawInterval)
	record := func(label string) func(native.MouseEvent) {
		return func(ev native.MouseEvent) {
			log = pushCapped(log, fmt.Sprintf("[%s] %s (%d, %d)", label, ev.Button, ev.X, ev.Y), historyLimit)
			lastX, lastY = ev.X, ev.Y
			w.Redraw()
		}
	}
	w.Mouse().OnMousePress(record("PRESS"))
	w.Mouse().OnMouseRelease(record("RELEASE"))
	w.Mouse().OnScroll(record("SCROLL"))
	w.Mouse().OnMouseMove(func(ev native.MouseEvent) {
		lastX, lastY = ev.X, ev.Y
		if moves.Allow() {
			w.Redraw()
		}
	})
	return open(w, func(width, height int) {
		w.SetBackground(paper)
		w.Write(width/2-70, 40, "Mouse Event Test", black, 1)
		w.Write(20, 80, "Use your mouse in this window", gray, 1)
		focusLine(w, 20, 110)
		w.Write(20, 130, "(Per-window mouse handling)", blue, 1)
		w.Write(20, 160, fmt.Sprintf("Mouse Position: (%d, %d)", lastX, lastY), magenta, 1)
		w.Write(20, 190, "Recent Events:", black, 1)
		drawHistory(w, log, 220, height)
		w.Flush()
	})
}
