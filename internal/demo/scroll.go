package demo

import (
	"fmt"

	"github.com/notcha/notcha/internal/native"
)

const (
	scrollItems   = 50
	scrollItemH   = 40
	scrollPadding = 20

	// scrollHeader is the height of the title block above the first item.
	scrollHeader = 70
)

var itemColors = [...]native.Color{blue, red, green}

func openScroll(h Host) error {
	w := h.CreateWindow("Scroll Demo", 600, 400)
	total := 2*scrollPadding + scrollHeader + scrollItems*scrollItemH
	w.EnableScrolling(total)
	return open(w, func(width, height int) {
		top := w.MenuBarHeight()
		offset := w.ScrollOffset()
		visibleWidth := w.VisibleWidth()
		w.SetBackground(white)

		y := top + scrollPadding - offset
		w.Write(20, y, "Scrolling Content Demo", black, 3)
		w.Write(20, y+30, fmt.Sprintf("This window has %d items. Use mouse wheel or drag scrollbar!", scrollItems), 0xC0C0C0, 1)

		first := top + scrollPadding + scrollHeader
		for i := 0; i < scrollItems; i++ {
			itemY := first + i*scrollItemH - offset
			if itemY+30 < top || itemY >= height {
				continue
			}
			w.Write(40, itemY+12, fmt.Sprintf("Item #%d", i+1), itemColors[i%len(itemColors)], 2)
			w.Write(visibleWidth-180, itemY+12, fmt.Sprintf("Y: %d", itemY), 0xC0C0C0, 1)
			w.FillRect(30, itemY+35, visibleWidth-60, 1, 0xE0E0E0)
		}

		w.Write(20, height-25, fmt.Sprintf("Scroll: %dpx / %dpx", offset, max(total-w.VisibleHeight(), 0)), black, 1)
		w.DrawScrollbar().DrawMenuBar().Flush()
	})
}
