//go:build linux

package sysinfo

import (
	"time"

	"golang.org/x/sys/unix"

	"github.com/notcha/notcha/internal/logging"
)

func queryHost() host {
	var h host
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		h.kernel = unix.ByteSliceToString(uts.Sysname[:])
		h.release = unix.ByteSliceToString(uts.Release[:])
	} else {
		logging.Warn("uname: %v", err)
	}
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err == nil {
		unit := uint64(si.Unit)
		if unit == 0 {
			unit = 1
		}
		h.memory.Total = uint64(si.Totalram) * unit
		h.memory.Free = uint64(si.Freeram) * unit
		h.memory.Used = h.memory.Total - h.memory.Free
		h.uptime = time.Duration(si.Uptime) * time.Second
	} else {
		logging.Warn("sysinfo: %v", err)
	}
	return h
}
