package app

import (
	"context"
	"errors"
	"time"

	"github.com/notcha/notcha/internal/input"
	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/logging/events"
	"github.com/notcha/notcha/internal/loop"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/sound"
	"github.com/notcha/notcha/internal/window"
)

// ErrDisplayInit is returned by Start when the display cannot be opened.
var ErrDisplayInit = errors.New("failed to initialize display")

// App owns the windows and the global input dispatchers and runs the tick.
// Every method must be called from the goroutine that drives Tick.
type App struct {
	backend  native.Backend
	windows  []*window.Window
	keyboard *input.Keyboard
	mouse    *input.Mouse
	sound    *sound.Sound
	running  bool
}

func New(b native.Backend) *App {
	return &App{
		backend:  b,
		keyboard: input.NewKeyboard(),
		mouse:    input.NewMouse(),
		sound:    sound.New(b),
	}
}

func (a *App) Backend() native.Backend   { return a.backend }
func (a *App) Keyboard() *input.Keyboard { return a.keyboard }
func (a *App) Mouse() *input.Mouse       { return a.mouse }
func (a *App) Sound() *sound.Sound       { return a.sound }
func (a *App) Running() bool             { return a.running }

// Windows returns the windows in creation order, closed ones included.
func (a *App) Windows() []*window.Window {
	return append([]*window.Window(nil), a.windows...)
}

// CreateWindow registers a new, not yet opened window.
func (a *App) CreateWindow(title string, width, height int) *window.Window {
	w := window.New(a.backend, title, width, height)
	a.windows = append(a.windows, w)
	return w
}

// Start opens the display. Starting a running app only warns.
func (a *App) Start() error {
	if a.running {
		logging.Warn("app is already running")
		return nil
	}
	if !a.backend.InitDisplay() {
		logging.Error(ErrDisplayInit)
		return ErrDisplayInit
	}
	a.running = true
	logging.Info("app started")
	return nil
}

// Stop closes every open window and then the display. Each window is
// released independently; failures are joined into the returned error.
// Stopping a stopped app does nothing.
func (a *App) Stop() error {
	if !a.running {
		return nil
	}
	a.running = false
	var errs []error
	for _, w := range a.Windows() {
		if !w.IsOpen() {
			continue
		}
		if err := w.Close(); err != nil {
			logging.Error(err)
			errs = append(errs, err)
		}
	}
	a.sound.Close()
	a.backend.CloseDisplay()
	err := errors.Join(errs...)
	events.App.Stop(len(a.windows), err)
	logging.Info("app stopped")
	return err
}

// Tick runs one iteration: pump native events, drain the keyboard and mouse
// queues, then check each open window for closure and pending frames. When
// every window has closed the app stops itself. Tick reports whether the
// app is still running.
func (a *App) Tick() bool {
	if !a.running {
		return false
	}
	a.backend.ProcessEvents()
	a.keyboard.ProcessEvents(a.backend, a.focused)
	a.mouse.ProcessEvents(a.backend, a.hooks)

	for _, w := range a.Windows() {
		if !w.IsOpen() || w.CheckClosed() {
			continue
		}
		w.CheckRedraw()
	}

	if !a.running {
		// a callback stopped the app mid-tick
		return false
	}
	if len(a.windows) > 0 && a.allClosed() {
		events.App.AllClosed(len(a.windows))
		logging.Info("all windows closed, stopping app")
		if err := a.Stop(); err != nil {
			logging.Error(err)
		}
		return false
	}
	return true
}

// Run drives Tick every interval until the app stops or ctx is done.
func (a *App) Run(ctx context.Context, interval time.Duration) error {
	return loop.Run(ctx, interval, a.Tick)
}

func (a *App) allClosed() bool {
	for _, w := range a.windows {
		if w.IsOpen() {
			return false
		}
	}
	return true
}

// focused matches the native focused handle against the open windows.
func (a *App) focused() (native.Handle, *input.KeyHandlers) {
	h := a.backend.FocusedWindow()
	if w := a.lookup(h); w != nil {
		return h, w.Keyboard()
	}
	return h, nil
}

func (a *App) hooks(ev native.MouseEvent) input.Hooks {
	if w := a.lookup(ev.Window); w != nil {
		return w.Hooks()
	}
	return input.Hooks{}
}

func (a *App) lookup(h native.Handle) *window.Window {
	if h == native.NoHandle {
		return nil
	}
	for _, w := range a.windows {
		if w.Handle() == h {
			return w
		}
	}
	return nil
}
