// Package input drains the native keyboard and mouse queues once per tick
// and fans each event out to per-window handlers, then to global handlers.
package input

import (
	"github.com/notcha/notcha/internal/logging/events"
	"github.com/notcha/notcha/internal/native"
)

type KeyHandler func(native.KeyEvent)

// KeySource is the keyboard half of the native event queue.
type KeySource interface {
	HasKeyEvents() bool
	NextKeyEvent() (native.KeyEvent, bool)
}

// KeyHandlers holds press and release callbacks for one dispatch target.
type KeyHandlers struct {
	press   []KeyHandler
	release []KeyHandler
}

// OnKeyPress registers fn for key presses.
func (h *KeyHandlers) OnKeyPress(fn KeyHandler) {
	if fn != nil {
		h.press = append(h.press, fn)
	}
}

// OnKeyRelease registers fn for key releases.
func (h *KeyHandlers) OnKeyRelease(fn KeyHandler) {
	if fn != nil {
		h.release = append(h.release, fn)
	}
}

// Clear drops every registered callback.
func (h *KeyHandlers) Clear() {
	h.press = nil
	h.release = nil
}

// Dispatch delivers ev to the press or release list. The list is
// snapshotted so callbacks may register further handlers.
func (h *KeyHandlers) Dispatch(ev native.KeyEvent) {
	if h == nil {
		return
	}
	list := h.release
	if ev.Pressed {
		list = h.press
	}
	for _, fn := range snapshot(list) {
		fn(ev)
	}
}

// Keyboard is the global keyboard dispatcher.
type Keyboard struct {
	KeyHandlers
}

func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// FocusResolver returns the handlers of the window that currently owns
// keyboard focus, or nil when no known window is focused. It is consulted
// per event because callbacks may open or close windows mid-drain.
type FocusResolver func() (native.Handle, *KeyHandlers)

// ProcessEvents pops every pending key event in order, delivering each to
// the focused window first and then to the global handlers.
func (k *Keyboard) ProcessEvents(src KeySource, focused FocusResolver) int {
	n := 0
	for src.HasKeyEvents() {
		ev, ok := src.NextKeyEvent()
		if !ok {
			break
		}
		n++
		var handle native.Handle
		var target *KeyHandlers
		if focused != nil {
			handle, target = focused()
		}
		events.Input.Key(ev.Key, ev.Pressed, uint64(handle))
		target.Dispatch(ev)
		k.Dispatch(ev)
	}
	return n
}

func snapshot[T any](list []T) []T {
	if len(list) == 0 {
		return nil
	}
	out := make([]T, len(list))
	copy(out, list)
	return out
}
