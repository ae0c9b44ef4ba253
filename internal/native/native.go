// Package native describes the capability surface offered by the windowing
// library. Backends live in subpackages; nothing here talks to X11 directly.
package native

// Handle identifies a native window. NoHandle means "not open".
type Handle uint64

const NoHandle Handle = 0

// Color is a packed 24-bit 0xRRGGBB value.
type Color uint32

// RGB splits the packed value into its components.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// KeyEvent is a single keyboard transition read from the native queue.
type KeyEvent struct {
	Keycode uint32
	Keysym  uint32
	State   uint32
	Pressed bool
	Key     string
}

// MouseKind is the native event type code.
type MouseKind uint8

const (
	MousePress MouseKind = iota
	MouseRelease
	MouseMove
	MouseScroll
)

func (k MouseKind) String() string {
	switch k {
	case MousePress:
		return "press"
	case MouseRelease:
		return "release"
	case MouseMove:
		return "move"
	case MouseScroll:
		return "scroll"
	}
	return "unknown"
}

// MouseButton uses the X11 button numbering.
type MouseButton uint8

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
	ButtonScrollUp
	ButtonScrollDown
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "Left"
	case ButtonMiddle:
		return "Middle"
	case ButtonRight:
		return "Right"
	case ButtonScrollUp:
		return "Up"
	case ButtonScrollDown:
		return "Down"
	}
	return "None"
}

// MouseEvent is a single pointer event read from the native queue.
type MouseEvent struct {
	Kind   MouseKind
	Button MouseButton
	X, Y   int32
	Window Handle
}

// Display controls the process-wide connection to the display server.
type Display interface {
	InitDisplay() bool
	CloseDisplay()
}

// Windows manages native window lifetimes.
type Windows interface {
	CreateWindow(title string, width, height int) Handle
	DestroyWindow(h Handle) error
	CheckWindowClosed(h Handle) bool
	WindowWidth(h Handle) int
	WindowHeight(h Handle) int
	CheckWindowNeedsRedraw(h Handle) bool
	FlushWindow(h Handle)
}

// Surface is the drawing half of the library.
type Surface interface {
	DrawPixel(h Handle, x, y int, c Color)
	SetBackground(h Handle, c Color)
	DrawText(h Handle, x, y int, text string, c Color, size int)
}

// RectFiller is implemented by surfaces with a native rectangle fill.
type RectFiller interface {
	FillRect(h Handle, x, y, w, ht int, c Color)
}

// Input is the polled event source.
type Input interface {
	ProcessEvents() bool
	HasKeyEvents() bool
	NextKeyEvent() (KeyEvent, bool)
	ClearKeyEvents()
	HasMouseEvents() bool
	NextMouseEvent() (MouseEvent, bool)
	ClearMouseEvents()
	MousePosition() (x, y int)
	FocusedWindow() Handle
	IsWindowFocused(h Handle) bool
}

// Screen reports root screen geometry; zero before InitDisplay.
type Screen interface {
	ScreenWidth() int
	ScreenHeight() int
}

// Audio exposes the tone generator.
type Audio interface {
	InitAudio() bool
	CloseAudio()
	PlayTone(frequency, durationMs int, volume float32) bool
	PlayBeep() bool
	PlayClick() bool
	PlaySuccess() bool
	PlayError() bool
}

// Backend is the full capability surface.
type Backend interface {
	Display
	Windows
	Surface
	Input
	Screen
	Audio
}

// FillRect fills a rectangle, using the native primitive when s has one.
func FillRect(s Surface, h Handle, x, y, w, ht int, c Color) {
	if w <= 0 || ht <= 0 {
		return
	}
	if rf, ok := s.(RectFiller); ok {
		rf.FillRect(h, x, y, w, ht, c)
		return
	}
	for py := y; py < y+ht; py++ {
		for px := x; px < x+w; px++ {
			s.DrawPixel(h, px, py, c)
		}
	}
}
