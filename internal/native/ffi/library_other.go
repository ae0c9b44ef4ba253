//go:build !(linux || darwin || freebsd)

package ffi

import (
	"fmt"
	"runtime"

	"github.com/notcha/notcha/internal/native"
)

// Library is unavailable on this platform.
type Library struct {
	native.Backend
}

// Open always fails where dlopen is not supported.
func Open(path string) (*Library, error) {
	return nil, fmt.Errorf("load %s: dynamic loading unsupported on %s", path, runtime.GOOS)
}

func (l *Library) Close() error { return nil }
