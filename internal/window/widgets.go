package window

import (
	"github.com/notcha/notcha/internal/input"
	"github.com/notcha/notcha/internal/menu"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/scroll"
)

// AddMenu appends a top-level menu, creating the bar on first use.
func (w *Window) AddMenu(m menu.Menu) *Window {
	if w.menu == nil {
		w.menu = menu.NewBar()
	}
	w.menu.AddMenu(m)
	w.syncScroll()
	w.Redraw()
	return w
}

// MenuBar returns the window's menu bar, or nil when none was added.
func (w *Window) MenuBar() *menu.Bar { return w.menu }

// MenuBarHeight is the vertical space taken by the menu bar.
func (w *Window) MenuBarHeight() int {
	if w.menu == nil {
		return 0
	}
	return w.menu.Height()
}

// DrawMenuBar paints the bar and any open dropdown. Call it last so the
// dropdown sits above the content.
func (w *Window) DrawMenuBar() *Window {
	if w.menu == nil || !w.usable("draw menu bar") {
		return w
	}
	w.menu.Draw(canvas{w}, w.width, w.height)
	return w
}

// EnableScrolling attaches a scrollbar sized for contentHeight.
func (w *Window) EnableScrolling(contentHeight int) *Window {
	if w.scroll == nil {
		w.scroll = scroll.NewBar()
	}
	return w.SetContentHeight(contentHeight)
}

// Scrollbar returns the window's scrollbar, or nil when scrolling is off.
func (w *Window) Scrollbar() *scroll.Bar { return w.scroll }

// SetContentHeight updates the scrollable height.
func (w *Window) SetContentHeight(h int) *Window {
	w.contentHeight = h
	w.syncScroll()
	return w
}

// ScrollOffset is the current vertical scroll position in pixels.
func (w *Window) ScrollOffset() int {
	if w.scroll == nil {
		return 0
	}
	return int(w.scroll.Offset())
}

// VisibleWidth is the content width left beside the scrollbar.
func (w *Window) VisibleWidth() int {
	if w.scroll == nil {
		return w.width
	}
	return w.scroll.VisibleWidth(w.width)
}

// VisibleHeight is the content height below the menu bar.
func (w *Window) VisibleHeight() int {
	return max(w.height-w.MenuBarHeight(), 0)
}

// DrawScrollbar paints the scrollbar when the content overflows.
func (w *Window) DrawScrollbar() *Window {
	if w.scroll == nil || !w.usable("draw scrollbar") {
		return w
	}
	w.scroll.Draw(canvas{w}, w.viewport())
	return w
}

func (w *Window) viewport() scroll.Viewport {
	return scroll.Viewport{Width: w.width, Height: w.height, Top: w.MenuBarHeight()}
}

func (w *Window) syncScroll() {
	if w.scroll != nil {
		w.scroll.UpdateDimensions(w.contentHeight, w.VisibleHeight())
	}
}

// Hooks returns the per-window mouse entry points. The menu bar sees events
// first, then the scrollbar, then the handlers registered on Mouse().
func (w *Window) Hooks() input.Hooks {
	return input.Hooks{
		Press:   w.handlePress,
		Release: w.handleRelease,
		Move:    w.handleMove,
		Scroll:  w.handleScroll,
	}
}

func (w *Window) handlePress(ev native.MouseEvent) {
	x, y := int(ev.X), int(ev.Y)
	if w.menu != nil && w.menu.HandleClick(x, y, w.width, w.height) {
		w.Redraw()
		return
	}
	if w.scroll != nil && w.scroll.HandleMousePress(x, y, w.viewport()) {
		w.Redraw()
		return
	}
	w.mouse.Dispatch(ev)
}

func (w *Window) handleRelease(ev native.MouseEvent) {
	if w.scroll != nil && w.scroll.HandleMouseRelease() {
		w.Redraw()
		return
	}
	w.mouse.Dispatch(ev)
}

func (w *Window) handleMove(ev native.MouseEvent) {
	x, y := int(ev.X), int(ev.Y)
	if w.menu != nil && w.menu.IsOpen() {
		if w.menu.HandleMouseMove(x, y, w.width, w.height) {
			w.Redraw()
		}
		return
	}
	if w.scroll != nil {
		if w.scroll.HandleMouseMove(x, y, w.viewport()) {
			w.Redraw()
		}
		if w.scroll.Dragging() {
			return
		}
	}
	w.mouse.Dispatch(ev)
}

func (w *Window) handleScroll(ev native.MouseEvent) {
	if w.scroll != nil && w.scroll.IsScrollable() {
		delta := 1
		if ev.Button == native.ButtonScrollUp {
			delta = -1
		}
		if w.scroll.HandleScroll(delta) {
			w.Redraw()
		}
		return
	}
	w.mouse.Dispatch(ev)
}
