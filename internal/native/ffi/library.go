//go:build linux || darwin || freebsd

package ffi

import (
	"bytes"
	"fmt"

	"github.com/ebitengine/purego"

	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/native"
)

// keyNameSize is the capacity of the key name buffer handed to the library.
const keyNameSize = 32

// Library is a native.Backend backed by the shared library's C ABI.
type Library struct {
	handle uintptr
	path   string

	initDisplay            func() bool
	closeDisplay           func()
	createWindow           func(title string, width, height int32) uint64
	destroyWindow          func(win uint64)
	checkWindowClosed      func(win uint64) bool
	getWindowWidth         func(win uint64) int32
	getWindowHeight        func(win uint64) int32
	checkWindowNeedsRedraw func(win uint64) bool
	flushWindow            func(win uint64)
	drawPixel              func(win uint64, x, y int32, color uint64)
	setBackground          func(win uint64, color uint64)
	drawText               func(win uint64, x, y int32, text string, color uint64, size int32)
	fillRect               func(win uint64, x, y, w, h int32, color uint64)
	processEvents          func() bool
	getFocusedWindow       func() uint64
	isWindowFocused        func(win uint64) bool
	hasKeyEvents           func() bool
	getNextKeyEvent        func(keycode, keysym, state *uint32, pressed *uint8, name *byte, nameLen *uint32) bool
	clearKeyEvents         func()
	hasMouseEvents         func() bool
	getNextMouseEvent      func(kind *uint64, button *uint32, x, y *int32, win *uint64) bool
	clearMouseEvents       func()
	getMousePosition       func(x, y *int32)
	getScreenWidth         func() int32
	getScreenHeight        func() int32
	initAudio              func() bool
	closeAudio             func()
	playTone               func(frequency, durationMs int32, volume float32) bool
	playBeep               func() bool
	playClick              func() bool
	playSuccess            func() bool
	playError              func() bool

	keyName [keyNameSize]byte
}

var _ native.Backend = (*Library)(nil)

// Open loads the library at path and binds every symbol. Symbols marked
// optional may be absent; the rest must resolve.
func Open(path string) (lib *Library, err error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, fmt.Errorf("dlopen %s: %w", path, err)
	}
	l := &Library{handle: handle, path: path}
	defer func() {
		// RegisterLibFunc panics on a missing symbol
		if r := recover(); r != nil {
			purego.Dlclose(handle)
			lib, err = nil, fmt.Errorf("bind %s: %v", path, r)
		}
	}()
	l.bind()
	logging.Info("loaded native library %s", path)
	return l, nil
}

func (l *Library) bind() {
	reg := func(fptr any, name string) {
		purego.RegisterLibFunc(fptr, l.handle, name)
	}
	optional := func(fptr any, name string) {
		if _, err := purego.Dlsym(l.handle, name); err == nil {
			purego.RegisterLibFunc(fptr, l.handle, name)
		}
	}
	reg(&l.initDisplay, "initDisplay")
	reg(&l.closeDisplay, "closeDisplay")
	reg(&l.createWindow, "createWindow")
	reg(&l.destroyWindow, "destroyWindow")
	reg(&l.checkWindowClosed, "checkWindowClosed")
	reg(&l.getWindowWidth, "getWindowWidth")
	reg(&l.getWindowHeight, "getWindowHeight")
	reg(&l.checkWindowNeedsRedraw, "checkWindowNeedsRedraw")
	reg(&l.flushWindow, "flushWindow")
	reg(&l.drawPixel, "drawPixel")
	reg(&l.setBackground, "setBackground")
	reg(&l.drawText, "drawText")
	reg(&l.processEvents, "processEvents")
	reg(&l.getFocusedWindow, "getFocusedWindow")
	reg(&l.isWindowFocused, "isWindowFocused")
	reg(&l.hasKeyEvents, "hasKeyEvents")
	reg(&l.getNextKeyEvent, "getNextKeyEvent")
	reg(&l.clearKeyEvents, "clearKeyEvents")
	reg(&l.hasMouseEvents, "hasMouseEvents")
	reg(&l.getNextMouseEvent, "getNextMouseEvent")
	reg(&l.clearMouseEvents, "clearMouseEvents")
	reg(&l.getMousePosition, "getMousePosition")
	reg(&l.initAudio, "initAudio")
	reg(&l.closeAudio, "closeAudio")
	reg(&l.playTone, "playTone")
	reg(&l.playBeep, "playBeep")
	reg(&l.playClick, "playClick")
	reg(&l.playSuccess, "playSuccess")
	reg(&l.playError, "playError")

	optional(&l.fillRect, "fillRect")
	optional(&l.getScreenWidth, "getScreenWidth")
	optional(&l.getScreenHeight, "getScreenHeight")
}

// Path is the file the library was loaded from.
func (l *Library) Path() string { return l.path }

// Close unloads the library. The display must already be closed.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	err := purego.Dlclose(l.handle)
	l.handle = 0
	return err
}

func (l *Library) InitDisplay() bool { return l.initDisplay() }
func (l *Library) CloseDisplay()     { l.closeDisplay() }

func (l *Library) CreateWindow(title string, width, height int) native.Handle {
	return native.Handle(l.createWindow(title, int32(width), int32(height)))
}

// DestroyWindow has no error channel in the C ABI.
func (l *Library) DestroyWindow(h native.Handle) error {
	l.destroyWindow(uint64(h))
	return nil
}

func (l *Library) CheckWindowClosed(h native.Handle) bool { return l.checkWindowClosed(uint64(h)) }
func (l *Library) WindowWidth(h native.Handle) int        { return int(l.getWindowWidth(uint64(h))) }
func (l *Library) WindowHeight(h native.Handle) int       { return int(l.getWindowHeight(uint64(h))) }
func (l *Library) FlushWindow(h native.Handle)            { l.flushWindow(uint64(h)) }

func (l *Library) CheckWindowNeedsRedraw(h native.Handle) bool {
	return l.checkWindowNeedsRedraw(uint64(h))
}

func (l *Library) DrawPixel(h native.Handle, x, y int, c native.Color) {
	l.drawPixel(uint64(h), int32(x), int32(y), uint64(c))
}

func (l *Library) SetBackground(h native.Handle, c native.Color) {
	l.setBackground(uint64(h), uint64(c))
}

func (l *Library) DrawText(h native.Handle, x, y int, text string, c native.Color, size int) {
	l.drawText(uint64(h), int32(x), int32(y), text, uint64(c), int32(size))
}

// FillRect uses the library's rectangle fill when it exports one.
func (l *Library) FillRect(h native.Handle, x, y, w, ht int, c native.Color) {
	if l.fillRect != nil {
		l.fillRect(uint64(h), int32(x), int32(y), int32(w), int32(ht), uint64(c))
		return
	}
	for py := y; py < y+ht; py++ {
		for px := x; px < x+w; px++ {
			l.drawPixel(uint64(h), int32(px), int32(py), uint64(c))
		}
	}
}

func (l *Library) ProcessEvents() bool  { return l.processEvents() }
func (l *Library) HasKeyEvents() bool   { return l.hasKeyEvents() }
func (l *Library) ClearKeyEvents()      { l.clearKeyEvents() }
func (l *Library) HasMouseEvents() bool { return l.hasMouseEvents() }
func (l *Library) ClearMouseEvents()    { l.clearMouseEvents() }

func (l *Library) NextKeyEvent() (native.KeyEvent, bool) {
	var keycode, keysym, state, nameLen uint32
	var pressed uint8
	if !l.getNextKeyEvent(&keycode, &keysym, &state, &pressed, &l.keyName[0], &nameLen) {
		return native.KeyEvent{}, false
	}
	return native.KeyEvent{
		Keycode: keycode,
		Keysym:  keysym,
		State:   state,
		Pressed: pressed != 0,
		Key:     keyName(l.keyName[:], nameLen),
	}, true
}

func (l *Library) NextMouseEvent() (native.MouseEvent, bool) {
	var kind, win uint64
	var button uint32
	var x, y int32
	if !l.getNextMouseEvent(&kind, &button, &x, &y, &win) {
		return native.MouseEvent{}, false
	}
	return native.MouseEvent{
		Kind:   native.MouseKind(kind),
		Button: native.MouseButton(button),
		X:      x,
		Y:      y,
		Window: native.Handle(win),
	}, true
}

func (l *Library) MousePosition() (int, int) {
	var x, y int32
	l.getMousePosition(&x, &y)
	return int(x), int(y)
}

func (l *Library) FocusedWindow() native.Handle         { return native.Handle(l.getFocusedWindow()) }
func (l *Library) IsWindowFocused(h native.Handle) bool { return l.isWindowFocused(uint64(h)) }

func (l *Library) ScreenWidth() int {
	if l.getScreenWidth == nil {
		return 0
	}
	return int(l.getScreenWidth())
}

func (l *Library) ScreenHeight() int {
	if l.getScreenHeight == nil {
		return 0
	}
	return int(l.getScreenHeight())
}

func (l *Library) InitAudio() bool   { return l.initAudio() }
func (l *Library) CloseAudio()       { l.closeAudio() }
func (l *Library) PlayBeep() bool    { return l.playBeep() }
func (l *Library) PlayClick() bool   { return l.playClick() }
func (l *Library) PlaySuccess() bool { return l.playSuccess() }
func (l *Library) PlayError() bool   { return l.playError() }

func (l *Library) PlayTone(frequency, durationMs int, volume float32) bool {
	return l.playTone(int32(frequency), int32(durationMs), volume)
}

// keyName trims the library's buffer to the reported length, stopping at the
// first NUL if the length overstates it.
func keyName(buf []byte, n uint32) string {
	if int(n) < len(buf) {
		buf = buf[:n]
	}
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		buf = buf[:i]
	}
	return string(buf)
}
