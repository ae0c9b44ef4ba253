// Package ffi binds the native windowing library at runtime with purego.
package ffi

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvLibrary names the environment variable that overrides the library path.
const EnvLibrary = "NOTCHA_LIB"

// ErrLibraryNotFound is returned when no candidate library path exists.
var ErrLibraryNotFound = errors.New("native library not found")

// LibraryName is the platform file name of the native library.
func LibraryName() string {
	switch runtime.GOOS {
	case "darwin":
		return "libnotcha-window.dylib"
	case "windows":
		return "notcha-window.dll"
	}
	return "libnotcha-window.so"
}

// DefaultPath is where the library build drops its output.
func DefaultPath() string {
	return filepath.Join("zig-out", "lib", LibraryName())
}

// ResolvePath picks the library: explicit path, then $NOTCHA_LIB, then the
// build output directory. The first candidate that is set must exist.
func ResolvePath(explicit string, getenv func(string) string) (string, error) {
	candidate := explicit
	if candidate == "" && getenv != nil {
		candidate = getenv(EnvLibrary)
	}
	if candidate == "" {
		candidate = DefaultPath()
	}
	info, err := os.Stat(candidate)
	if err != nil {
		return "", fmt.Errorf("%w at %s (build the native library first)", ErrLibraryNotFound, candidate)
	}
	if info.IsDir() {
		candidate = filepath.Join(candidate, LibraryName())
		if _, err := os.Stat(candidate); err != nil {
			return "", fmt.Errorf("%w at %s", ErrLibraryNotFound, candidate)
		}
	}
	return candidate, nil
}
