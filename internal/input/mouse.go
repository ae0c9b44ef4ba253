package input

import (
	"github.com/notcha/notcha/internal/logging/events"
	"github.com/notcha/notcha/internal/native"
)

type MouseHandler func(native.MouseEvent)

// MouseSource is the pointer half of the native event queue.
type MouseSource interface {
	HasMouseEvents() bool
	NextMouseEvent() (native.MouseEvent, bool)
}

// MouseHandlers holds one callback list per event kind.
type MouseHandlers struct {
	press   []MouseHandler
	release []MouseHandler
	move    []MouseHandler
	scroll  []MouseHandler
}

func (h *MouseHandlers) OnMousePress(fn MouseHandler)   { h.add(&h.press, fn) }
func (h *MouseHandlers) OnMouseRelease(fn MouseHandler) { h.add(&h.release, fn) }
func (h *MouseHandlers) OnMouseMove(fn MouseHandler)    { h.add(&h.move, fn) }
func (h *MouseHandlers) OnScroll(fn MouseHandler)       { h.add(&h.scroll, fn) }

func (h *MouseHandlers) add(list *[]MouseHandler, fn MouseHandler) {
	if fn != nil {
		*list = append(*list, fn)
	}
}

// Clear drops every registered callback.
func (h *MouseHandlers) Clear() {
	h.press, h.release, h.move, h.scroll = nil, nil, nil, nil
}

// Dispatch delivers ev to the list matching its kind.
func (h *MouseHandlers) Dispatch(ev native.MouseEvent) {
	if h == nil {
		return
	}
	for _, fn := range snapshot(h.listFor(ev.Kind)) {
		fn(ev)
	}
}

func (h *MouseHandlers) listFor(kind native.MouseKind) []MouseHandler {
	switch kind {
	case native.MousePress:
		return h.press
	case native.MouseRelease:
		return h.release
	case native.MouseMove:
		return h.move
	case native.MouseScroll:
		return h.scroll
	}
	return nil
}

// Hooks are the optional single per-window callbacks, one per kind.
type Hooks struct {
	Press   MouseHandler
	Release MouseHandler
	Move    MouseHandler
	Scroll  MouseHandler
}

func (h Hooks) forKind(kind native.MouseKind) MouseHandler {
	switch kind {
	case native.MousePress:
		return h.Press
	case native.MouseRelease:
		return h.Release
	case native.MouseMove:
		return h.Move
	case native.MouseScroll:
		return h.Scroll
	}
	return nil
}

// HookResolver maps an event to the hooks of the window it belongs to.
type HookResolver func(native.MouseEvent) Hooks

// Mouse is the global mouse dispatcher.
type Mouse struct {
	MouseHandlers
	buf []native.MouseEvent
}

func NewMouse() *Mouse {
	return &Mouse{}
}

// ProcessEvents drains the queue, compacts runs of moves and delivers each
// remaining event to the per-window hook and then to the global handlers.
func (m *Mouse) ProcessEvents(src MouseSource, resolve HookResolver) int {
	m.buf = m.buf[:0]
	for src.HasMouseEvents() {
		ev, ok := src.NextMouseEvent()
		if !ok {
			break
		}
		m.buf = append(m.buf, ev)
	}
	if len(m.buf) == 0 {
		return 0
	}
	batch := Compact(m.buf)
	events.Input.MouseBatch(len(m.buf), len(batch))
	for _, ev := range batch {
		var hook MouseHandler
		if resolve != nil {
			hook = resolve(ev).forKind(ev.Kind)
		}
		Deliver(ev, hook, &m.MouseHandlers)
	}
	return len(batch)
}

// Deliver is the two-tier fan-out: the per-target hook first, then globals.
func Deliver(ev native.MouseEvent, hook MouseHandler, globals *MouseHandlers) {
	if hook != nil {
		hook(ev)
	}
	globals.Dispatch(ev)
}

// Compact collapses every run of consecutive moves to its last member. The
// relative order of all other events is preserved. The result never aliases
// the input.
func Compact(in []native.MouseEvent) []native.MouseEvent {
	out := make([]native.MouseEvent, 0, len(in))
	var pending *native.MouseEvent
	for i := range in {
		if in[i].Kind == native.MouseMove {
			pending = &in[i]
			continue
		}
		if pending != nil {
			out = append(out, *pending)
			pending = nil
		}
		out = append(out, in[i])
	}
	if pending != nil {
		out = append(out, *pending)
	}
	return out
}
