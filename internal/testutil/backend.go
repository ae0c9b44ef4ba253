package testutil

import (
	"fmt"
	"sync"

	"github.com/notcha/notcha/internal/native"
)

// TextOp is a recorded DrawText call.
type TextOp struct {
	Handle native.Handle
	X, Y   int
	Text   string
	Color  native.Color
	Size   int
}

// Tone is a recorded PlayTone call.
type Tone struct {
	Frequency, DurationMs int
	Volume                float32
}

type fakeWindow struct {
	title         string
	width, height int
	closed        bool
	redraw        bool
	background    native.Color
	pixels        map[[2]int]native.Color
	flushes       int
}

// Backend is a scripted in-memory native.Backend. Tests queue input and
// flip close/redraw flags, then inspect what the code under test drew.
type Backend struct {
	mu sync.Mutex

	InitOK      bool
	AudioOK     bool
	DisplayOpen bool
	AudioOpen   bool
	Screen      [2]int
	Mouse       [2]int

	next      native.Handle
	windows   map[native.Handle]*fakeWindow
	destroyed []native.Handle
	failing   map[native.Handle]error
	focused   native.Handle
	keys      []native.KeyEvent
	mice      []native.MouseEvent
	texts     []TextOp
	tones     []Tone
	presets   []string
	pumps     int
}

// NewBackend returns a backend whose display and audio init succeed.
func NewBackend() *Backend {
	return &Backend{
		InitOK:  true,
		AudioOK: true,
		Screen:  [2]int{1920, 1080},
		next:    100,
		windows: make(map[native.Handle]*fakeWindow),
		failing: make(map[native.Handle]error),
	}
}

func (b *Backend) InitDisplay() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.DisplayOpen = b.InitOK
	return b.InitOK
}

func (b *Backend) CloseDisplay() {
	b.mu.Lock()
	b.DisplayOpen = false
	b.mu.Unlock()
}

func (b *Backend) CreateWindow(title string, width, height int) native.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.DisplayOpen {
		return native.NoHandle
	}
	b.next++
	h := b.next
	b.windows[h] = &fakeWindow{title: title, width: width, height: height, pixels: make(map[[2]int]native.Color)}
	return h
}

func (b *Backend) DestroyWindow(h native.Handle) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.destroyed = append(b.destroyed, h)
	if err, ok := b.failing[h]; ok {
		return err
	}
	if _, ok := b.windows[h]; !ok {
		return fmt.Errorf("unknown window %d", h)
	}
	delete(b.windows, h)
	if b.focused == h {
		b.focused = native.NoHandle
	}
	return nil
}

func (b *Backend) CheckWindowClosed(h native.Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows[h]
	return !ok || w.closed
}

func (b *Backend) WindowWidth(h native.Handle) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		return w.width
	}
	return 0
}

func (b *Backend) WindowHeight(h native.Handle) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		return w.height
	}
	return 0
}

func (b *Backend) CheckWindowNeedsRedraw(h native.Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows[h]
	if !ok || !w.redraw {
		return false
	}
	w.redraw = false
	return true
}

func (b *Backend) FlushWindow(h native.Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		w.flushes++
	}
}

func (b *Backend) DrawPixel(h native.Handle, x, y int, c native.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		w.pixels[[2]int{x, y}] = c
	}
}

func (b *Backend) SetBackground(h native.Handle, c native.Color) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		w.background = c
		w.pixels = make(map[[2]int]native.Color)
	}
}

func (b *Backend) DrawText(h native.Handle, x, y int, text string, c native.Color, size int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.texts = append(b.texts, TextOp{Handle: h, X: x, Y: y, Text: text, Color: c, Size: size})
}

func (b *Backend) ProcessEvents() bool {
	b.mu.Lock()
	b.pumps++
	b.mu.Unlock()
	return true
}

func (b *Backend) HasKeyEvents() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.keys) > 0
}

func (b *Backend) NextKeyEvent() (native.KeyEvent, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.keys) == 0 {
		return native.KeyEvent{}, false
	}
	ev := b.keys[0]
	b.keys = b.keys[1:]
	return ev, true
}

func (b *Backend) ClearKeyEvents() {
	b.mu.Lock()
	b.keys = nil
	b.mu.Unlock()
}

func (b *Backend) HasMouseEvents() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.mice) > 0
}

func (b *Backend) NextMouseEvent() (native.MouseEvent, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.mice) == 0 {
		return native.MouseEvent{}, false
	}
	ev := b.mice[0]
	b.mice = b.mice[1:]
	return ev, true
}

func (b *Backend) ClearMouseEvents() {
	b.mu.Lock()
	b.mice = nil
	b.mu.Unlock()
}

func (b *Backend) MousePosition() (int, int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.Mouse[0], b.Mouse[1]
}

func (b *Backend) FocusedWindow() native.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.focused
}

func (b *Backend) IsWindowFocused(h native.Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return h != native.NoHandle && b.focused == h
}

func (b *Backend) ScreenWidth() int  { return b.Screen[0] }
func (b *Backend) ScreenHeight() int { return b.Screen[1] }

func (b *Backend) InitAudio() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.AudioOpen = b.AudioOK
	return b.AudioOK
}

func (b *Backend) CloseAudio() {
	b.mu.Lock()
	b.AudioOpen = false
	b.mu.Unlock()
}

func (b *Backend) PlayTone(frequency, durationMs int, volume float32) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tones = append(b.tones, Tone{Frequency: frequency, DurationMs: durationMs, Volume: volume})
	return b.AudioOpen
}

func (b *Backend) PlayBeep() bool    { return b.preset("beep") }
func (b *Backend) PlayClick() bool   { return b.preset("click") }
func (b *Backend) PlaySuccess() bool { return b.preset("success") }
func (b *Backend) PlayError() bool   { return b.preset("error") }

func (b *Backend) preset(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.presets = append(b.presets, name)
	return b.AudioOpen
}

// QueueKey appends a key event to the native queue.
func (b *Backend) QueueKey(ev native.KeyEvent) {
	b.mu.Lock()
	b.keys = append(b.keys, ev)
	b.mu.Unlock()
}

// QueueMouse appends mouse events to the native queue.
func (b *Backend) QueueMouse(evs ...native.MouseEvent) {
	b.mu.Lock()
	b.mice = append(b.mice, evs...)
	b.mu.Unlock()
}

// Focus marks h as the focused window.
func (b *Backend) Focus(h native.Handle) {
	b.mu.Lock()
	b.focused = h
	b.mu.Unlock()
}

// CloseExternally simulates the user closing the window via the window manager.
func (b *Backend) CloseExternally(h native.Handle) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		w.closed = true
	}
}

// Resize changes a window's size and flags it for redraw.
func (b *Backend) Resize(h native.Handle, width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		w.width, w.height = width, height
		w.redraw = true
	}
}

// FailDestroy makes DestroyWindow(h) report err.
func (b *Backend) FailDestroy(h native.Handle, err error) {
	b.mu.Lock()
	b.failing[h] = err
	b.mu.Unlock()
}

// Destroyed lists every handle passed to DestroyWindow, in call order.
func (b *Backend) Destroyed() []native.Handle {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]native.Handle(nil), b.destroyed...)
}

// Pixel reports the color at (x, y) and whether anything was drawn there.
func (b *Backend) Pixel(h native.Handle, x, y int) (native.Color, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	w, ok := b.windows[h]
	if !ok {
		return 0, false
	}
	c, ok := w.pixels[[2]int{x, y}]
	return c, ok
}

// PixelCount reports how many distinct pixels were drawn on h.
func (b *Backend) PixelCount(h native.Handle) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		return len(w.pixels)
	}
	return 0
}

// Background reports the last background color set on h.
func (b *Backend) Background(h native.Handle) native.Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		return w.background
	}
	return 0
}

// Flushes reports how often h was flushed.
func (b *Backend) Flushes(h native.Handle) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if w, ok := b.windows[h]; ok {
		return w.flushes
	}
	return 0
}

// Texts returns every recorded DrawText call.
func (b *Backend) Texts() []TextOp {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]TextOp(nil), b.texts...)
}

// Tones returns every recorded PlayTone call.
func (b *Backend) Tones() []Tone {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Tone(nil), b.tones...)
}

// Presets returns the names of preset sounds played.
func (b *Backend) Presets() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.presets...)
}

// Pumps reports how many times ProcessEvents ran.
func (b *Backend) Pumps() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pumps
}

// Open reports whether h is a live window.
func (b *Backend) Open(h native.Handle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, ok := b.windows[h]
	return ok
}

var _ native.Backend = (*Backend)(nil)
