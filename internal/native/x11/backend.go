// Package x11 is a pure-Go native.Backend speaking the X protocol through
// xgb. Each window keeps a client-side framebuffer that FlushWindow uploads
// with PutImage; there is no audio device.
package x11

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/native"
)

const eventMask = xproto.EventMaskExposure |
	xproto.EventMaskStructureNotify |
	xproto.EventMaskFocusChange |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskPointerMotion

const defaultBackground native.Color = 0xFFFFFF

// putImageHeader is the fixed part of a PutImage request in bytes.
const putImageHeader = 24

var errNoDisplay = errors.New("x11: display not initialised")

type window struct {
	id     xproto.Window
	gc     xproto.Gcontext
	fb     *framebuffer
	closed bool
	gone   bool
	redraw bool
}

// Backend implements native.Backend on an X server connection.
type Backend struct {
	display string

	conn        *xgb.Conn
	setup       *xproto.SetupInfo
	screen      *xproto.ScreenInfo
	wmProtocols xproto.Atom
	wmDelete    xproto.Atom
	keymap      keymap

	windows map[native.Handle]*window
	focused native.Handle
	pointer [2]int
	keys    []native.KeyEvent
	mice    []native.MouseEvent
}

var _ native.Backend = (*Backend)(nil)

// New returns a backend for display (empty means $DISPLAY). Nothing is
// connected until InitDisplay.
func New(display string) *Backend {
	return &Backend{display: display, windows: make(map[native.Handle]*window)}
}

func (b *Backend) InitDisplay() bool {
	if b.conn != nil {
		return true
	}
	if err := b.connect(); err != nil {
		logging.Error(err)
		return false
	}
	return true
}

func (b *Backend) connect() error {
	conn, err := xgb.NewConnDisplay(b.display)
	if err != nil {
		return fmt.Errorf("x11 connect: %w", err)
	}
	setup := xproto.Setup(conn)
	km, err := loadKeymap(conn, setup)
	if err != nil {
		conn.Close()
		return err
	}
	protocols, err := internAtom(conn, "WM_PROTOCOLS")
	if err != nil {
		conn.Close()
		return err
	}
	deleteWindow, err := internAtom(conn, "WM_DELETE_WINDOW")
	if err != nil {
		conn.Close()
		return err
	}
	b.conn = conn
	b.setup = setup
	b.screen = setup.DefaultScreen(conn)
	b.keymap = km
	b.wmProtocols = protocols
	b.wmDelete = deleteWindow
	return nil
}

func internAtom(conn *xgb.Conn, name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern %s: %w", name, err)
	}
	return reply.Atom, nil
}

func (b *Backend) CloseDisplay() {
	if b.conn == nil {
		return
	}
	for h := range b.windows {
		if err := b.DestroyWindow(h); err != nil {
			logging.Error(err)
		}
	}
	b.conn.Close()
	b.conn = nil
	b.focused = native.NoHandle
	b.keys, b.mice = nil, nil
}

func (b *Backend) CreateWindow(title string, width, height int) native.Handle {
	if b.conn == nil {
		logging.Error(errNoDisplay)
		return native.NoHandle
	}
	h, err := b.createWindow(title, width, height)
	if err != nil {
		logging.Error(err)
		return native.NoHandle
	}
	return h
}

func (b *Backend) createWindow(title string, width, height int) (native.Handle, error) {
	wid, err := xproto.NewWindowId(b.conn)
	if err != nil {
		return native.NoHandle, fmt.Errorf("window id: %w", err)
	}
	err = xproto.CreateWindowChecked(b.conn, b.screen.RootDepth, wid, b.screen.Root,
		0, 0, uint16(width), uint16(height), 0,
		xproto.WindowClassInputOutput, b.screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{uint32(defaultBackground), eventMask}).Check()
	if err != nil {
		return native.NoHandle, fmt.Errorf("create window %q: %w", title, err)
	}

	xproto.ChangeProperty(b.conn, xproto.PropModeReplace, wid, xproto.AtomWmName,
		xproto.AtomString, 8, uint32(len(title)), []byte(title))
	atom := make([]byte, 4)
	xgb.Put32(atom, uint32(b.wmDelete))
	xproto.ChangeProperty(b.conn, xproto.PropModeReplace, wid, b.wmProtocols,
		xproto.AtomAtom, 32, 1, atom)

	gc, err := xproto.NewGcontextId(b.conn)
	if err != nil {
		xproto.DestroyWindow(b.conn, wid)
		return native.NoHandle, fmt.Errorf("gc id: %w", err)
	}
	xproto.CreateGC(b.conn, gc, xproto.Drawable(wid), 0, nil)
	xproto.MapWindow(b.conn, wid)

	h := native.Handle(wid)
	b.windows[h] = &window{id: wid, gc: gc, fb: newFramebuffer(width, height, defaultBackground), redraw: true}
	return h, nil
}

func (b *Backend) DestroyWindow(h native.Handle) error {
	w, ok := b.windows[h]
	if !ok {
		return fmt.Errorf("x11: unknown window %d", h)
	}
	delete(b.windows, h)
	if b.focused == h {
		b.focused = native.NoHandle
	}
	if b.conn == nil || w.gone {
		return nil
	}
	xproto.FreeGC(b.conn, w.gc)
	if err := xproto.DestroyWindowChecked(b.conn, w.id).Check(); err != nil {
		return fmt.Errorf("x11: destroy window %d: %w", h, err)
	}
	return nil
}

func (b *Backend) CheckWindowClosed(h native.Handle) bool {
	w, ok := b.windows[h]
	return !ok || w.closed
}

func (b *Backend) WindowWidth(h native.Handle) int {
	if w, ok := b.windows[h]; ok {
		return w.fb.bounds().Dx()
	}
	return 0
}

func (b *Backend) WindowHeight(h native.Handle) int {
	if w, ok := b.windows[h]; ok {
		return w.fb.bounds().Dy()
	}
	return 0
}

func (b *Backend) CheckWindowNeedsRedraw(h native.Handle) bool {
	w, ok := b.windows[h]
	if !ok || !w.redraw {
		return false
	}
	w.redraw = false
	return true
}

// FlushWindow uploads the framebuffer in bands that respect the server's
// maximum request length.
func (b *Backend) FlushWindow(h native.Handle) {
	w, ok := b.windows[h]
	if !ok || b.conn == nil {
		return
	}
	bounds := w.fb.bounds()
	maxBytes := int(b.setup.MaximumRequestLength)*4 - putImageHeader
	for _, band := range chunkRows(bounds.Dx(), bounds.Dy(), maxBytes) {
		xproto.PutImage(b.conn, xproto.ImageFormatZPixmap, xproto.Drawable(w.id), w.gc,
			uint16(bounds.Dx()), uint16(band[1]-band[0]), 0, int16(band[0]), 0,
			b.screen.RootDepth, w.fb.rows(band[0], band[1]))
	}
	b.conn.Sync()
}

func (b *Backend) DrawPixel(h native.Handle, x, y int, c native.Color) {
	if w, ok := b.windows[h]; ok {
		w.fb.set(x, y, c)
	}
}

func (b *Backend) FillRect(h native.Handle, x, y, width, height int, c native.Color) {
	if w, ok := b.windows[h]; ok {
		w.fb.fill(x, y, width, height, c)
	}
}

func (b *Backend) SetBackground(h native.Handle, c native.Color) {
	w, ok := b.windows[h]
	if !ok {
		return
	}
	w.fb.clear(c)
	if b.conn != nil {
		xproto.ChangeWindowAttributes(b.conn, w.id, xproto.CwBackPixel, []uint32{uint32(c)})
	}
}

func (b *Backend) DrawText(h native.Handle, x, y int, text string, c native.Color, size int) {
	if w, ok := b.windows[h]; ok {
		w.fb.text(x, y, text, c, size)
	}
}

func (b *Backend) ScreenWidth() int {
	if b.screen == nil {
		return 0
	}
	return int(b.screen.WidthInPixels)
}

func (b *Backend) ScreenHeight() int {
	if b.screen == nil {
		return 0
	}
	return int(b.screen.HeightInPixels)
}

// The X protocol carries no audio.
func (b *Backend) InitAudio() bool                 { return false }
func (b *Backend) CloseAudio()                     {}
func (b *Backend) PlayTone(int, int, float32) bool { return false }
func (b *Backend) PlayBeep() bool                  { return false }
func (b *Backend) PlayClick() bool                 { return false }
func (b *Backend) PlaySuccess() bool               { return false }
func (b *Backend) PlayError() bool                 { return false }
