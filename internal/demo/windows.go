package demo

import (
	"errors"

	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/window"
)

const lightGray native.Color = 0xF0F0F0

// openWindows opens three independent static windows at once. A window that
// fails to open does not stop the others.
func openWindows(h Host) error {
	panes := []struct {
		title         string
		width, height int
		draw          func(*window.Window)
	}{
		{"Window 1 - Graphics Demo", 800, 600, staticGraphics},
		{"Window 2 - Text Demo", 600, 400, staticText},
		{"Window 3 - Color Test", 500, 300, staticPalette},
	}
	var errs []error
	for _, p := range panes {
		w := h.CreateWindow(p.title, p.width, p.height)
		title := p.title
		w.OnClose(func() { logging.Info("%s closed", title) })
		draw := p.draw
		if err := open(w, func(int, int) { draw(w); w.Flush() }); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func staticGraphics(w *window.Window) {
	w.SetBackground(lightGray).
		FillRect(100, 295, 600, 10, red).
		FillRect(395, 100, 10, 400, blue).
		FillRect(10, 10, 90, 90, green).
		FillRect(700, 10, 90, 90, yellow).
		Write(300, 50, "Graphics Demo Window", black, 1).
		Write(320, 570, "Colorful pixels!", blue, 1)
}

func staticText(w *window.Window) {
	w.SetBackground(lightBlue)
	lines := []struct {
		text string
		c    native.Color
	}{
		{"Hello from Notcha!", black},
		{"Multiple windows work!", red},
		{"Text rendering test", green},
		{"Pure Go over X11", blue},
		{"Each window redraws on its own", magenta},
	}
	for i, l := range lines {
		w.Write(50, 50+i*50, l.text, l.c, 1)
	}
	for x := 0; x < 600; x += 20 {
		w.FillRect(x, 300, 10, 1, cyan)
	}
	w.Write(50, 350, "Press Ctrl+C to exit", gray, 1)
}

func staticPalette(w *window.Window) {
	w.SetBackground(white).Write(150, 30, "Color Palette", black, 1)
	y := 80
	for _, entry := range palette {
		w.FillRect(50, y, 150, 20, entry.color).Write(220, y+15, entry.name, black, 1)
		y += 30
	}
}
