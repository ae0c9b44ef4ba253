package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "notcha.log"

var (
	mu           sync.Mutex
	traceEnabled bool
	verbose      bool
	logPath      = defaultLogFile
	sink         io.WriteCloser
	logger       = log.New(io.Discard, "", log.LstdFlags)
)

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		path = defaultLogFile
	}
	if sink != nil {
		sink.Close()
	}
	logPath = path
	sink = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	logger.SetOutput(sink)
}

// Path reports the configured log file.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

// Close flushes and releases the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	logger.SetOutput(io.Discard)
	if sink == nil {
		return nil
	}
	err := sink.Close()
	sink = nil
	return err
}

// SetVerbose mirrors warnings and info lines to stderr.
func SetVerbose(enabled bool) {
	mu.Lock()
	verbose = enabled
	mu.Unlock()
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	emit("ERROR", err.Error(), false)
}

// Warn records a recoverable misuse, such as drawing on a closed window.
func Warn(format string, args ...interface{}) {
	emit("WARN", fmt.Sprintf(format, args...), true)
}

// Info records lifecycle milestones.
func Info(format string, args ...interface{}) {
	emit("INFO", fmt.Sprintf(format, args...), true)
}

func emit(level, msg string, mirror bool) {
	mu.Lock()
	logger.Printf("%s %s", level, msg)
	echo := mirror && verbose
	mu.Unlock()
	if echo {
		fmt.Fprintf(os.Stderr, "%s: %s\n", strings.ToLower(level), msg)
	}
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if !traceEnabled || sink == nil {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	enc := json.NewEncoder(sink)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}
