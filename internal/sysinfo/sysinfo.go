// Package sysinfo gathers screen, OS, desktop and hardware details.
package sysinfo

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/notcha/notcha/internal/native"
)

// OS describes the running kernel and host.
type OS struct {
	Platform string
	Type     string
	Release  string
	Arch     string
	Hostname string
}

// Memory is in bytes.
type Memory struct {
	Total uint64
	Free  uint64
	Used  uint64
}

type Info struct {
	ScreenWidth   int
	ScreenHeight  int
	OS            OS
	Desktop       string
	X11           bool
	Wayland       bool
	DisplayServer string
	Memory        Memory
	CPUs          int
	Uptime        time.Duration
}

// host is filled by the platform-specific queries.
type host struct {
	kernel  string
	release string
	memory  Memory
	uptime  time.Duration
}

// Collect reads everything at once. screen may be nil when no display is
// open; sizes are then zero.
func Collect(screen native.Screen, getenv func(string) string) Info {
	if getenv == nil {
		getenv = os.Getenv
	}
	h := queryHost()
	hostname, _ := os.Hostname()
	info := Info{
		OS: OS{
			Platform: runtime.GOOS,
			Type:     h.kernel,
			Release:  h.release,
			Arch:     runtime.GOARCH,
			Hostname: hostname,
		},
		Desktop:       DesktopEnvironment(runtime.GOOS, getenv),
		X11:           getenv("DISPLAY") != "",
		Wayland:       getenv("WAYLAND_DISPLAY") != "",
		DisplayServer: DisplayServer(getenv),
		Memory:        h.memory,
		CPUs:          runtime.NumCPU(),
		Uptime:        h.uptime,
	}
	if screen != nil {
		info.ScreenWidth = screen.ScreenWidth()
		info.ScreenHeight = screen.ScreenHeight()
	}
	return info
}

// DesktopEnvironment checks the XDG variables in order, then the
// desktop-specific session markers. Non-Linux systems report "n/a".
func DesktopEnvironment(goos string, getenv func(string) string) string {
	if goos != "linux" {
		return "n/a"
	}
	for _, key := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION", "XDG_SESSION_DESKTOP"} {
		if v := getenv(key); v != "" {
			return strings.ToLower(v)
		}
	}
	switch {
	case getenv("GNOME_DESKTOP_SESSION_ID") != "":
		return "gnome"
	case getenv("KDE_FULL_SESSION") != "":
		return "kde"
	case getenv("MATE_DESKTOP_SESSION_ID") != "":
		return "mate"
	}
	return "unknown"
}

// DisplayServer prefers Wayland when both variables are set, since X11
// clients then run under XWayland.
func DisplayServer(getenv func(string) string) string {
	switch {
	case getenv("WAYLAND_DISPLAY") != "":
		return "wayland"
	case getenv("DISPLAY") != "":
		return "x11"
	}
	return "unknown"
}

// Line is one label/value pair of the report.
type Line struct {
	Label string
	Value string
}

// Section groups report lines under a heading.
type Section struct {
	Title string
	Lines []Line
}

// Sections lays the info out for display, in terminal or window.
func Sections(info Info) []Section {
	return []Section{
		{Title: "Screen", Lines: []Line{
			{"Resolution", fmt.Sprintf("%dx%d", info.ScreenWidth, info.ScreenHeight)},
		}},
		{Title: "Operating System", Lines: []Line{
			{"Platform", info.OS.Platform},
			{"Type", info.OS.Type},
			{"Release", info.OS.Release},
			{"Architecture", info.OS.Arch},
			{"Hostname", info.OS.Hostname},
		}},
		{Title: "Desktop", Lines: []Line{
			{"Environment", info.Desktop},
			{"Display server", info.DisplayServer},
			{"X11", yesNo(info.X11)},
			{"Wayland", yesNo(info.Wayland)},
		}},
		{Title: "Hardware", Lines: []Line{
			{"CPU cores", fmt.Sprintf("%d", info.CPUs)},
			{"Memory total", FormatBytes(info.Memory.Total)},
			{"Memory used", FormatBytes(info.Memory.Used)},
			{"Memory free", FormatBytes(info.Memory.Free)},
			{"Uptime", FormatUptime(info.Uptime)},
		}},
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

// FormatBytes renders a byte count with a binary unit and two decimals.
func FormatBytes(n uint64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := uint64(unit), 0
	for v := n / unit; v >= unit && exp < 4; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %ciB", float64(n)/float64(div), "KMGTP"[exp])
}

// FormatUptime renders days, hours and minutes.
func FormatUptime(d time.Duration) string {
	d = d.Truncate(time.Minute)
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	minutes := int((d - time.Duration(hours)*time.Hour) / time.Minute)
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
