package config

import (
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/notcha/notcha/internal/app"
	"github.com/notcha/notcha/internal/demo"
	"github.com/notcha/notcha/internal/loop"
)

// Config captures runtime configuration for the application.
type Config struct {
	App      app.Config
	Logging  Logging
	Features Features
	Flags    map[string]string
	Args     []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

type Features struct {
	Verbose bool
	SysInfo bool
}

const (
	envBackend = "NOTCHA_BACKEND"
	envDisplay = "NOTCHA_DISPLAY"
	envDemo    = "NOTCHA_DEMO"
	envTick    = "NOTCHA_TICK"
	envAudio   = "NOTCHA_AUDIO"
	envVerbose = "NOTCHA_VERBOSE"
	envTrace   = "NOTCHA_TRACE"
	envLogFile = "NOTCHA_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. The library
// path also honours NOTCHA_LIB, which the ffi backend reads itself.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("notcha", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	backend := fs.String("backend", envOrDefault(env, envBackend, app.BackendX11), "native backend: x11 (pure Go) or ffi (shared library)")
	libPath := fs.String("lib", "", "path to the native library or its directory (ffi backend)")
	display := fs.String("display", envOrDefault(env, envDisplay, ""), "X display to connect to (empty uses $DISPLAY)")
	demoName := fs.String("demo", envOrDefault(env, envDemo, demo.Suite), "demo to open: "+strings.Join(demo.Names(), ", "))
	tick := fs.Duration("tick", envOrDuration(env, envTick, loop.DefaultInterval), "event loop interval")
	audio := fs.Bool("audio", envOrBool(env, envAudio, false), "initialise the audio device at startup")
	sysinfo := fs.Bool("sysinfo", false, "print system information and exit")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "mirror warnings and info to stderr")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			Backend: *backend,
			LibPath: *libPath,
			Display: *display,
			Demo:    *demoName,
			Tick:    *tick,
			Audio:   *audio,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Features: Features{
			Verbose: *verbose,
			SysInfo: *sysinfo,
		},
		Flags: map[string]string{
			"backend": *backend,
			"lib":     *libPath,
			"display": *display,
			"demo":    *demoName,
			"tick":    tick.String(),
			"audio":   strconv.FormatBool(*audio),
			"sysinfo": strconv.FormatBool(*sysinfo),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects values the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Tick <= 0 {
		return fmt.Errorf("tick must be > 0 (got %s)", cfg.App.Tick)
	}
	if !slices.Contains(app.Backends, cfg.App.Backend) {
		return fmt.Errorf("unknown backend %q (want one of %s)", cfg.App.Backend, strings.Join(app.Backends, ", "))
	}
	if !demo.Known(cfg.App.Demo) {
		return fmt.Errorf("unknown demo %q (want one of %s)", cfg.App.Demo, strings.Join(demo.Names(), ", "))
	}
	return nil
}
