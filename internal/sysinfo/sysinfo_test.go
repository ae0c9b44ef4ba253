package sysinfo

import (
	"strings"
	"testing"
	"time"

	"github.com/notcha/notcha/internal/testutil"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDesktopEnvironment(t *testing.T) {
	cases := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{"non-linux", "darwin", map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"}, "n/a"},
		{"xdg first", "linux", map[string]string{"XDG_CURRENT_DESKTOP": "KDE", "DESKTOP_SESSION": "gnome"}, "kde"},
		{"session", "linux", map[string]string{"DESKTOP_SESSION": "Xfce"}, "xfce"},
		{"session desktop", "linux", map[string]string{"XDG_SESSION_DESKTOP": "sway"}, "sway"},
		{"gnome marker", "linux", map[string]string{"GNOME_DESKTOP_SESSION_ID": "x"}, "gnome"},
		{"kde marker", "linux", map[string]string{"KDE_FULL_SESSION": "true"}, "kde"},
		{"mate marker", "linux", map[string]string{"MATE_DESKTOP_SESSION_ID": "1"}, "mate"},
		{"nothing", "linux", nil, "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DesktopEnvironment(tc.goos, envFrom(tc.env)); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestDisplayServer(t *testing.T) {
	if got := DisplayServer(envFrom(map[string]string{"DISPLAY": ":0", "WAYLAND_DISPLAY": "wayland-0"})); got != "wayland" {
		t.Fatalf("wayland should win, got %q", got)
	}
	if got := DisplayServer(envFrom(map[string]string{"DISPLAY": ":0"})); got != "x11" {
		t.Fatalf("expected x11, got %q", got)
	}
	if got := DisplayServer(envFrom(nil)); got != "unknown" {
		t.Fatalf("expected unknown, got %q", got)
	}
}

func TestCollectUsesScreenAndEnv(t *testing.T) {
	b := testutil.NewBackend()
	info := Collect(b, envFrom(map[string]string{"DISPLAY": ":1"}))
	if info.ScreenWidth != 1920 || info.ScreenHeight != 1080 {
		t.Fatalf("unexpected screen %dx%d", info.ScreenWidth, info.ScreenHeight)
	}
	if !info.X11 || info.Wayland || info.DisplayServer != "x11" {
		t.Fatalf("unexpected display detection %+v", info)
	}
	if info.CPUs < 1 || info.OS.Platform == "" || info.OS.Arch == "" {
		t.Fatalf("missing runtime details %+v", info.OS)
	}
	if info.Memory.Used > info.Memory.Total {
		t.Fatalf("used memory exceeds total")
	}
	if none := Collect(nil, envFrom(nil)); none.ScreenWidth != 0 {
		t.Fatalf("nil screen reports zero size")
	}
}

func TestFormatBytes(t *testing.T) {
	cases := map[uint64]string{
		0:               "0 B",
		1023:            "1023 B",
		1024:            "1.00 KiB",
		1536:            "1.50 KiB",
		8 * 1024 * 1024: "8.00 MiB",
		16 << 30:        "16.00 GiB",
	}
	for in, want := range cases {
		if got := FormatBytes(in); got != want {
			t.Fatalf("FormatBytes(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	if got := FormatUptime(90 * time.Minute); got != "1h 30m" {
		t.Fatalf("got %q", got)
	}
	if got := FormatUptime(49*time.Hour + 5*time.Minute + 30*time.Second); got != "2d 1h 5m" {
		t.Fatalf("got %q", got)
	}
}

func TestRenderIncludesSections(t *testing.T) {
	info := Info{ScreenWidth: 800, ScreenHeight: 600, Desktop: "gnome", X11: true, DisplayServer: "x11", CPUs: 4}
	out := Render(info, 60)
	for _, want := range []string{"System Information", "Screen", "800x600", "gnome", "Hardware", "CPU cores"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestPlainAlignsValues(t *testing.T) {
	info := Info{ScreenWidth: 800, ScreenHeight: 600, DisplayServer: "x11", CPUs: 2}
	out := Plain(info)
	if !strings.HasPrefix(out, "System Information\n") {
		t.Fatalf("missing heading:\n%s", out)
	}
	for _, want := range []string{
		"\n  Resolution      800x600\n",
		"\n  Display server  x11\n",
		"\n  CPU cores       2\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}
