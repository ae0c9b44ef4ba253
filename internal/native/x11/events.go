package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/native"
)

// ProcessEvents drains everything the server has sent without blocking.
func (b *Backend) ProcessEvents() bool {
	if b.conn == nil {
		return false
	}
	for {
		ev, err := b.conn.PollForEvent()
		if ev == nil && err == nil {
			return true
		}
		if err != nil {
			logging.Warn("x11 error: %v", err)
		}
		if ev != nil {
			b.handle(ev)
		}
	}
}

// handle folds one X event into the window flags and input queues.
func (b *Backend) handle(ev xgb.Event) {
	switch e := ev.(type) {
	case xproto.ExposeEvent:
		if w := b.lookup(e.Window); w != nil && e.Count == 0 {
			w.redraw = true
		}
	case xproto.ConfigureNotifyEvent:
		if w := b.lookup(e.Window); w != nil {
			bounds := w.fb.bounds()
			if int(e.Width) != bounds.Dx() || int(e.Height) != bounds.Dy() {
				w.fb.resize(int(e.Width), int(e.Height))
				w.redraw = true
			}
		}
	case xproto.ClientMessageEvent:
		if w := b.lookup(e.Window); w != nil && e.Type == b.wmProtocols &&
			e.Format == 32 && len(e.Data.Data32) > 0 && xproto.Atom(e.Data.Data32[0]) == b.wmDelete {
			w.closed = true
		}
	case xproto.DestroyNotifyEvent:
		if w := b.lookup(e.Window); w != nil {
			w.closed = true
			w.gone = true
		}
	case xproto.FocusInEvent:
		if b.lookup(e.Event) != nil {
			b.focused = native.Handle(e.Event)
		}
	case xproto.FocusOutEvent:
		if b.focused == native.Handle(e.Event) {
			b.focused = native.NoHandle
		}
	case xproto.KeyPressEvent:
		b.queueKey(e.Detail, e.State, true)
	case xproto.KeyReleaseEvent:
		b.queueKey(e.Detail, e.State, false)
	case xproto.ButtonPressEvent:
		b.queueButton(e.Event, e.Detail, e.EventX, e.EventY, true)
	case xproto.ButtonReleaseEvent:
		b.queueButton(e.Event, e.Detail, e.EventX, e.EventY, false)
	case xproto.MotionNotifyEvent:
		b.pointer = [2]int{int(e.EventX), int(e.EventY)}
		b.mice = append(b.mice, native.MouseEvent{
			Kind:   native.MouseMove,
			X:      int32(e.EventX),
			Y:      int32(e.EventY),
			Window: native.Handle(e.Event),
		})
	}
}

func (b *Backend) lookup(id xproto.Window) *window {
	return b.windows[native.Handle(id)]
}

func (b *Backend) queueKey(code xproto.Keycode, state uint16, pressed bool) {
	sym := b.keymap.lookup(code, state)
	b.keys = append(b.keys, native.KeyEvent{
		Keycode: uint32(code),
		Keysym:  sym,
		State:   uint32(state),
		Pressed: pressed,
		Key:     keysymName(sym),
	})
}

// queueButton maps buttons 4 and 5 to scroll events; their releases carry
// no information and are dropped.
func (b *Backend) queueButton(win xproto.Window, detail xproto.Button, x, y int16, pressed bool) {
	ev := native.MouseEvent{
		Button: native.MouseButton(detail),
		X:      int32(x),
		Y:      int32(y),
		Window: native.Handle(win),
	}
	b.pointer = [2]int{int(x), int(y)}
	switch {
	case detail == 4 || detail == 5:
		if !pressed {
			return
		}
		ev.Kind = native.MouseScroll
	case detail > 5:
		return
	case pressed:
		ev.Kind = native.MousePress
	default:
		ev.Kind = native.MouseRelease
	}
	b.mice = append(b.mice, ev)
}

func (b *Backend) HasKeyEvents() bool { return len(b.keys) > 0 }
func (b *Backend) ClearKeyEvents()    { b.keys = nil }

func (b *Backend) NextKeyEvent() (native.KeyEvent, bool) {
	if len(b.keys) == 0 {
		return native.KeyEvent{}, false
	}
	ev := b.keys[0]
	b.keys = b.keys[1:]
	return ev, true
}

func (b *Backend) HasMouseEvents() bool { return len(b.mice) > 0 }
func (b *Backend) ClearMouseEvents()    { b.mice = nil }

func (b *Backend) NextMouseEvent() (native.MouseEvent, bool) {
	if len(b.mice) == 0 {
		return native.MouseEvent{}, false
	}
	ev := b.mice[0]
	b.mice = b.mice[1:]
	return ev, true
}

// MousePosition is the last pointer position reported in any window.
func (b *Backend) MousePosition() (int, int) { return b.pointer[0], b.pointer[1] }

func (b *Backend) FocusedWindow() native.Handle { return b.focused }

func (b *Backend) IsWindowFocused(h native.Handle) bool {
	return h != native.NoHandle && b.focused == h
}
