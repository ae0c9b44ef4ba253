package config

import (
	"strings"
	"testing"
	"time"

	"github.com/notcha/notcha/internal/app"
	"github.com/notcha/notcha/internal/demo"
	"github.com/notcha/notcha/internal/loop"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := app.Config{Backend: app.BackendX11, Demo: demo.Suite, Tick: loop.DefaultInterval}
	if cfg.App != want {
		t.Fatalf("expected %#v, got %#v", want, cfg.App)
	}
	if cfg.Features.SysInfo || cfg.Features.Verbose || cfg.Logging.Trace {
		t.Fatalf("feature flags must default off: %#v", cfg)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	environ := []string{
		"NOTCHA_BACKEND=ffi",
		"NOTCHA_DEMO=menu",
		"NOTCHA_TICK=5ms",
		"NOTCHA_AUDIO=true",
		"NOTCHA_LOG_FILE=/tmp/env.log",
		"malformed",
		"",
	}
	cfg, err := LoadArgs([]string{"-demo", "scroll", "-lib", "/opt/lib", "-trace"}, environ)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Backend != app.BackendFFI || cfg.App.Tick != 5*time.Millisecond || !cfg.App.Audio {
		t.Fatalf("environment not applied: %#v", cfg.App)
	}
	if cfg.App.Demo != "scroll" || cfg.App.LibPath != "/opt/lib" {
		t.Fatalf("flags must win over environment: %#v", cfg.App)
	}
	if cfg.Logging.FilePath != "/tmp/env.log" || !cfg.Logging.Trace {
		t.Fatalf("unexpected logging config %#v", cfg.Logging)
	}
	if cfg.Flags["tick"] != "5ms" || cfg.Flags["demo"] != "scroll" {
		t.Fatalf("unexpected flag echo %v", cfg.Flags)
	}
	if strings.Join(cfg.Args, " ") != "-demo scroll -lib /opt/lib -trace" {
		t.Fatalf("args not preserved: %v", cfg.Args)
	}
}

func TestLoadArgsIgnoresBadEnvValues(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"NOTCHA_TICK=soon", "NOTCHA_AUDIO=maybe"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Tick != loop.DefaultInterval || cfg.App.Audio {
		t.Fatalf("bad env values must fall back: %#v", cfg.App)
	}
}

func TestLoadArgsRejectsUnknownInput(t *testing.T) {
	if _, err := LoadArgs([]string{"-nope"}, nil); err == nil {
		t.Fatalf("unknown flag must fail")
	}
	if _, err := LoadArgs([]string{"extra"}, nil); err == nil {
		t.Fatalf("positional arguments must fail")
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero tick", func(c *Config) { c.App.Tick = 0 }},
		{"negative tick", func(c *Config) { c.App.Tick = -time.Second }},
		{"unknown backend", func(c *Config) { c.App.Backend = "wayland" }},
		{"unknown demo", func(c *Config) { c.App.Demo = "tetris" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			if err := Validate(cfg); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
