//go:build !linux

package sysinfo

import "runtime"

// Memory and uptime are only queried on Linux.
func queryHost() host {
	return host{kernel: runtime.GOOS}
}
