package demo

import (
	"strings"

	"github.com/notcha/notcha/internal/native"
)

type textLine struct {
	text string
	size int
}

var textSamples = []textLine{
	{"Text Size Demo", 4},
	{"This demonstrates variable text sizes", 2},
	{"", 2},
	{"Size 1 (Small) - 12px", 1},
	{"Size 2 (Medium) - 14px", 2},
	{"Size 3 (Large) - 18px", 3},
	{"Size 4 (XLarge) - 24px", 4},
	{"", 2},
	{"Features:", 2},
	{"- Multi-line text", 1},
	{"- Color support", 1},
	{"- Variable text sizes", 1},
	{"- Framebuffer rendering", 1},
}

// lineSpacing is the advance after a line of the given size.
func lineSpacing(size int) int {
	switch size {
	case 4:
		return 35
	case 3:
		return 28
	case 1:
		return 18
	}
	return 22
}

func openText(h Host) error {
	w := h.CreateWindow("Text Demo", 600, 400)
	return open(w, func(width, height int) {
		centerX := width / 2
		top := w.MenuBarHeight() + 20
		w.SetBackground(white)
		w.Write(centerX-60, top+10, "Text Rendering", black, 3)
		w.Write(centerX-80, top+40, "Built with Notcha", gray, 2)

		y := top + 80
		for _, line := range textSamples {
			if y > height-30 {
				break
			}
			c := black
			if strings.HasPrefix(line.text, "-") {
				c = blue
			}
			w.Write(50, y, line.text, c, line.size)
			y += lineSpacing(line.size)
		}
		w.DrawMenuBar().Flush()
	})
}

var palette = []struct {
	name  string
	color native.Color
}{
	{"Red", red},
	{"Green", green},
	{"Blue", blue},
	{"Yellow", yellow},
	{"Magenta", magenta},
	{"Cyan", cyan},
}

const (
	paletteLeft = 50
	paletteBarH = 30
	paletteStep = 45
)

func openColor(h Host) error {
	w := h.CreateWindow("Color Test", 500, 400)
	return open(w, func(width, height int) {
		top := w.MenuBarHeight() + 10
		w.SetBackground(white)
		w.Write(width/2-50, top, "Color Palette", black, 1)

		barWidth := width - 150
		visible := min(paletteLeft+barWidth, width-80) - paletteLeft
		y := top + 40
		for _, entry := range palette {
			if y+paletteBarH > height {
				break
			}
			w.FillRect(paletteLeft, y, visible, paletteBarH, entry.color)
			if paletteLeft+barWidth+20 < width {
				w.Write(paletteLeft+barWidth+20, y+10, entry.name, black, 1)
			}
			y += paletteStep
		}
		w.DrawMenuBar().Flush()
	})
}
