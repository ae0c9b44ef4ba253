// Package window wraps one native window: its handle lifecycle, drawing
// calls, per-window input handlers and the optional menu bar and scrollbar
// overlays.
package window

import (
	"errors"
	"fmt"

	"github.com/notcha/notcha/internal/input"
	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/logging/events"
	"github.com/notcha/notcha/internal/menu"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/scroll"
)

const (
	DefaultTitle  = "Notcha"
	DefaultWidth  = 800
	DefaultHeight = 600
)

var (
	ErrNotOpen      = errors.New("window is not open")
	ErrCreateFailed = errors.New("native window creation failed")
)

// FrameHandler receives the window size whenever a new frame is due.
type FrameHandler func(width, height int)

// Window is created closed; Open binds a native handle and Close or an
// external close releases it again.
type Window struct {
	backend native.Backend
	handle  native.Handle
	title   string
	width   int
	height  int

	closeHandlers []func()
	frameHandlers []FrameHandler
	keys          input.KeyHandlers
	mouse         input.MouseHandlers

	menu          *menu.Bar
	scroll        *scroll.Bar
	contentHeight int
	redrawPending bool
}

// New returns a closed window. Empty titles and non-positive sizes fall back
// to the defaults.
func New(b native.Backend, title string, width, height int) *Window {
	if title == "" {
		title = DefaultTitle
	}
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Window{backend: b, title: title, width: width, height: height}
}

func (w *Window) Title() string         { return w.title }
func (w *Window) Handle() native.Handle { return w.handle }
func (w *Window) Width() int            { return w.width }
func (w *Window) Height() int           { return w.height }
func (w *Window) IsOpen() bool          { return w.handle != native.NoHandle }

// IsFocused asks the backend whether this window holds keyboard focus.
func (w *Window) IsFocused() bool {
	return w.IsOpen() && w.backend.IsWindowFocused(w.handle)
}

// Keyboard exposes the per-window key handlers.
func (w *Window) Keyboard() *input.KeyHandlers { return &w.keys }

// Mouse exposes the per-window mouse handlers. They only see events that
// the menu bar and scrollbar did not consume.
func (w *Window) Mouse() *input.MouseHandlers { return &w.mouse }

// Open creates the native window. Opening an open window only warns.
func (w *Window) Open() error {
	if w.IsOpen() {
		logging.Warn("window %q is already open", w.title)
		return nil
	}
	h := w.backend.CreateWindow(w.title, w.width, w.height)
	if h == native.NoHandle {
		return fmt.Errorf("open %q: %w", w.title, ErrCreateFailed)
	}
	w.handle = h
	events.Window.Open(w.title, uint64(h), w.width, w.height)
	logging.Info("window %q opened with handle %d", w.title, h)
	w.redrawPending = true
	return nil
}

// OnClose registers fn to run once each time the window closes.
func (w *Window) OnClose(fn func()) *Window {
	if fn != nil {
		w.closeHandlers = append(w.closeHandlers, fn)
	}
	return w
}

// OnNewFrame registers fn to run whenever the window needs repainting.
func (w *Window) OnNewFrame(fn FrameHandler) *Window {
	if fn != nil {
		w.frameHandlers = append(w.frameHandlers, fn)
	}
	return w
}

// Close destroys the native window and fires the close handlers. Closing a
// closed window returns ErrNotOpen and fires nothing.
func (w *Window) Close() error {
	if !w.IsOpen() {
		return ErrNotOpen
	}
	return w.release(events.ReasonProgram)
}

// CheckClosed polls for an external close and releases the window when one
// happened. It reports whether the window is closed.
func (w *Window) CheckClosed() bool {
	if !w.IsOpen() {
		return true
	}
	if !w.backend.CheckWindowClosed(w.handle) {
		return false
	}
	if err := w.release(events.ReasonUser); err != nil {
		logging.Error(err)
	}
	return true
}

func (w *Window) release(reason events.CloseReason) error {
	h := w.handle
	w.handle = native.NoHandle
	w.redrawPending = false
	if w.menu != nil {
		w.menu.Close()
	}
	if w.scroll != nil {
		w.scroll.HandleMouseRelease()
	}
	var err error
	if derr := w.backend.DestroyWindow(h); derr != nil {
		err = fmt.Errorf("destroy %q: %w", w.title, derr)
	}
	events.Window.Close(w.title, reason)
	logging.Info("window %q closed (%s)", w.title, reason)
	for _, fn := range append([]func(){}, w.closeHandlers...) {
		fn()
	}
	return err
}

// Redraw schedules a new frame for the next lifecycle check.
func (w *Window) Redraw() {
	if w.IsOpen() {
		w.redrawPending = true
	}
}

// CheckRedraw fires the new-frame handlers when the backend asks for a
// repaint or a redraw was scheduled. Sizes are re-read from the backend
// first. It reports whether a frame was produced.
func (w *Window) CheckRedraw() bool {
	if !w.IsOpen() {
		return false
	}
	due := w.backend.CheckWindowNeedsRedraw(w.handle)
	if !due && !w.redrawPending {
		return false
	}
	w.redrawPending = false
	if width := w.backend.WindowWidth(w.handle); width > 0 {
		w.width = width
	}
	if height := w.backend.WindowHeight(w.handle); height > 0 {
		w.height = height
	}
	w.syncScroll()
	events.Window.NewFrame(w.title, w.width, w.height)
	for _, fn := range append([]FrameHandler{}, w.frameHandlers...) {
		fn(w.width, w.height)
	}
	return true
}

// Flush pushes pending drawing to the screen.
func (w *Window) Flush() *Window {
	if !w.usable("flush") {
		return w
	}
	w.backend.FlushWindow(w.handle)
	return w
}

func (w *Window) usable(op string) bool {
	if w.IsOpen() {
		return true
	}
	logging.Warn("cannot %s: window %q is not open", op, w.title)
	return false
}
