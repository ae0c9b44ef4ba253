package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/notcha/notcha/internal/demo"
	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/logging/events"
	"github.com/notcha/notcha/internal/loop"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/native/ffi"
	"github.com/notcha/notcha/internal/native/x11"
)

const (
	BackendX11 = "x11"
	BackendFFI = "ffi"
)

// Backends lists the accepted Config.Backend values.
var Backends = []string{BackendX11, BackendFFI}

// Config describes user-provided application options.
type Config struct {
	Backend string
	LibPath string
	Display string
	Demo    string
	Tick    time.Duration
	Audio   bool
}

// Run opens the backend, shows the configured demo and ticks until every
// window is closed or the process is interrupted.
func Run(cfg Config) error {
	b, closer, err := openBackend(cfg)
	if err != nil {
		return fmt.Errorf("open %s backend: %w", cfg.Backend, err)
	}
	if closer != nil {
		defer func() {
			if err := closer.Close(); err != nil {
				logging.Error(err)
			}
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runApp(ctx, New(b), cfg)
}

func runApp(ctx context.Context, a *App, cfg Config) error {
	if err := a.Start(); err != nil {
		return err
	}
	events.App.Running(cfg.Backend)
	if cfg.Audio {
		a.Sound().Init()
	}
	if err := demo.Open(a, cfg.Demo); err != nil {
		return errors.Join(err, a.Stop())
	}
	tick := cfg.Tick
	if tick <= 0 {
		tick = loop.DefaultInterval
	}
	err := a.Run(ctx, tick)
	if errors.Is(err, context.Canceled) {
		logging.Info("interrupted, shutting down")
		err = nil
	}
	return errors.Join(err, a.Stop())
}

func openBackend(cfg Config) (native.Backend, io.Closer, error) {
	switch cfg.Backend {
	case BackendX11, "":
		return x11.New(cfg.Display), nil, nil
	case BackendFFI:
		path, err := ffi.ResolvePath(cfg.LibPath, os.Getenv)
		if err != nil {
			return nil, nil, err
		}
		lib, err := ffi.Open(path)
		if err != nil {
			return nil, nil, err
		}
		logging.Info("loaded native library %s", path)
		return lib, lib, nil
	}
	return nil, nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
