package demo

import (
	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/native"
)

var suiteEntries = []struct {
	name  string
	label string
}{
	{"graphics", "Graphics Demo"},
	{"text", "Text Demo"},
	{"color", "Color Demo"},
	{"keyboard", "Keyboard Demo"},
	{"mouse", "Mouse Demo"},
	{"menu", "Menu Demo"},
	{"scroll", "Scroll Demo"},
	{"sound", "Sound Demo"},
	{"sysinfo", "System Info"},
	{"windows", "Multi-Window"},
}

const (
	suiteTop     = 120
	suiteButtonH = 40
	suiteSpacing = 50
)

func openSuite(h Host) error {
	w := h.CreateWindow("Notcha Test Suite", 500, suiteTop+len(suiteEntries)*suiteSpacing+60)
	row := &buttonRow{}
	for i, entry := range suiteEntries {
		name := entry.name
		row.buttons = append(row.buttons, button{
			x: 100, y: suiteTop + i*suiteSpacing, width: 300, height: suiteButtonH,
			label: entry.label,
			action: func() {
				if err := Open(h, name); err != nil {
					logging.Error(err)
				}
			},
		})
	}
	w.Mouse().OnMousePress(func(ev native.MouseEvent) {
		if row.press(ev) && h.Sound().Initialized() {
			h.Sound().Click()
		}
	})
	return open(w, func(width, height int) {
		centerX := width / 2
		w.SetBackground(white)
		w.Write(centerX-80, 40, "Notcha Test Suite", black, 2)
		w.Write(centerX-100, 70, "Click a button to open demo", gray, 1)
		row.draw(w)
		w.Write(50, height-40, "Each demo window is independent", gray, 1)
		w.Flush()
	})
}
