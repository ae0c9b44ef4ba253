package demo

import (
	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/sound"
)

type toneButton struct {
	label string
	play  func(*sound.Sound) bool
}

var toneButtons = []toneButton{
	{"Play Beep (440 Hz)", (*sound.Sound).Beep},
	{"Play Click (1000 Hz)", (*sound.Sound).Click},
	{"Play Success (600 Hz)", (*sound.Sound).Success},
	{"Play Error (200 Hz)", (*sound.Sound).Error},
	{"Custom Tone (880 Hz)", func(s *sound.Sound) bool { return s.PlayTone(880, 300, 0.4) }},
}

func openSound(h Host) error {
	w := h.CreateWindow("Sound Test", 700, 500)
	row := &buttonRow{}
	w.Mouse().OnMousePress(func(ev native.MouseEvent) { row.press(ev) })
	return open(w, func(width, height int) {
		s := h.Sound()
		top := w.MenuBarHeight() + 20
		w.SetBackground(paper)
		w.Write(width/2-50, top, "Sound Test", black, 3)
		if s.Initialized() {
			w.Write(20, top+40, "Audio Status: Initialized", green, 2)
		} else {
			w.Write(20, top+40, "Audio Status: Not Initialized", gray, 2)
		}
		w.Write(20, top+65, "Tone Generation:", black, 2)

		bw := min(280, width-100)
		bx := (width - bw) / 2
		row.buttons = row.buttons[:0]
		for i, tb := range toneButtons {
			row.buttons = append(row.buttons, button{
				x: bx, y: top + 80 + i*55, width: bw, height: 45,
				label: tb.label,
				action: func() {
					if tb.play(s) {
						logging.Info("played %s", tb.label)
					} else {
						logging.Warn("failed to play %s", tb.label)
					}
				},
			})
		}
		row.draw(w)

		w.Write(20, height-60, "Tone Frequencies:", black, 2)
		w.Write(20, height-40, "Beep: 440Hz | Click: 1000Hz | Success: 600Hz", gray, 1)
		w.Write(20, height-25, "Error: 200Hz | Custom: 880Hz", gray, 1)
		w.DrawMenuBar().Flush()
	})
}
