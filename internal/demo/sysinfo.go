package demo

import (
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/sysinfo"
)

const (
	infoLeft    = 20
	infoRight   = 250
	infoLineH   = 25
	infoTitleH  = 40
	infoHeadH   = 30
	infoSection = 15
)

const (
	heading native.Color = 0x2563EB
	label   native.Color = 0x666666
)

// infoHeight is the scrollable height of the rendered report.
func infoHeight(sections []sysinfo.Section) int {
	h := 2*infoLeft + infoTitleH
	for _, s := range sections {
		h += infoHeadH + len(s.Lines)*infoLineH + infoSection
	}
	return h
}

func openSysinfo(h Host) error {
	sections := sysinfo.Sections(sysinfo.Collect(h.Backend(), nil))
	w := h.CreateWindow("System Information", 700, 650)
	w.EnableScrolling(infoHeight(sections))
	return open(w, func(width, height int) {
		w.SetBackground(0xF5F5F5)
		y := w.MenuBarHeight() + infoLeft - w.ScrollOffset()
		w.Write(infoLeft, y, "System Information", black, 4)
		y += infoTitleH
		for _, s := range sections {
			w.Write(infoLeft, y, s.Title, heading, 3)
			y += infoHeadH
			for _, line := range s.Lines {
				w.Write(infoLeft, y, line.Label+":", label, 1)
				w.Write(infoRight, y, line.Value, black, 1)
				y += infoLineH
			}
			y += infoSection
		}
		w.DrawScrollbar().DrawMenuBar().Flush()
	})
}
