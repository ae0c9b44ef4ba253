// Package demo builds the interactive demo windows shipped with the binary.
package demo

import (
	"errors"
	"fmt"
	"sort"

	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/sound"
	"github.com/notcha/notcha/internal/window"
)

// Host is the part of the application a demo needs.
type Host interface {
	CreateWindow(title string, width, height int) *window.Window
	Sound() *sound.Sound
	Backend() native.Backend
}

// ErrUnknown is returned by Open for names missing from the registry.
var ErrUnknown = errors.New("unknown demo")

const (
	black     native.Color = 0x000000
	white     native.Color = 0xFFFFFF
	red       native.Color = 0xFF0000
	green     native.Color = 0x00FF00
	blue      native.Color = 0x0000FF
	yellow    native.Color = 0xFFFF00
	magenta   native.Color = 0xFF00FF
	cyan      native.Color = 0x00FFFF
	gray      native.Color = 0x808080
	lightBlue native.Color = 0xADD8E6
	paper     native.Color = 0xFAFAFA
)

// Builder creates and opens the windows of one demo.
type Builder func(Host) error

// Suite is the launcher's registry name.
const Suite = "suite"

var builders map[string]Builder

// init populates builders; a static initializer would form a cycle via openSuite -> Open.
func init() {
	builders = map[string]Builder{
		Suite:      openSuite,
		"graphics": openGraphics,
		"text":     openText,
		"color":    openColor,
		"keyboard": openKeyboard,
		"mouse":    openMouse,
		"menu":     openMenu,
		"scroll":   openScroll,
		"sound":    openSound,
		"sysinfo":  openSysinfo,
		"windows":  openWindows,
	}
}

// Names lists the registered demos in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is registered.
func Known(name string) bool {
	_, ok := builders[name]
	return ok
}

// Open builds the named demo on h.
func Open(h Host, name string) error {
	build, ok := builders[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	if err := build(h); err != nil {
		return fmt.Errorf("open demo %s: %w", name, err)
	}
	logging.Info("demo %s opened", name)
	return nil
}

// open registers the frame handler and maps the window.
func open(w *window.Window, draw window.FrameHandler) error {
	w.OnNewFrame(draw)
	return w.Open()
}

// pushCapped appends s and drops the oldest entries beyond limit.
func pushCapped(list []string, s string, limit int) []string {
	list = append(list, s)
	if over := len(list) - limit; over > 0 {
		list = append(list[:0], list[over:]...)
	}
	return list
}

// tail returns at most n trailing entries.
func tail(list []string, n int) []string {
	if len(list) > n {
		return list[len(list)-n:]
	}
	return list
}
