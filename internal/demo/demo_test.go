package demo

import (
	"errors"
	"strings"
	"testing"

	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/sound"
	"github.com/notcha/notcha/internal/testutil"
	"github.com/notcha/notcha/internal/window"
)

type fakeHost struct {
	b       *testutil.Backend
	snd     *sound.Sound
	windows []*window.Window
}

func newHost(t *testing.T) *fakeHost {
	t.Helper()
	b := testutil.NewBackend()
	if !b.InitDisplay() {
		t.Fatalf("fake display failed to open")
	}
	return &fakeHost{b: b, snd: sound.New(b)}
}

func (h *fakeHost) CreateWindow(title string, width, height int) *window.Window {
	w := window.New(h.b, title, width, height)
	h.windows = append(h.windows, w)
	return w
}

func (h *fakeHost) Sound() *sound.Sound     { return h.snd }
func (h *fakeHost) Backend() native.Backend { return h.b }

// frame runs one redraw pass and returns the text drawn during it.
func (h *fakeHost) frame() []string {
	before := len(h.b.Texts())
	for _, w := range h.windows {
		if w.IsOpen() {
			w.CheckRedraw()
		}
	}
	var out []string
	for _, op := range h.b.Texts()[before:] {
		out = append(out, op.Text)
	}
	return out
}

func (h *fakeHost) window(t *testing.T, title string) *window.Window {
	t.Helper()
	for _, w := range h.windows {
		if w.Title() == title {
			return w
		}
	}
	t.Fatalf("no window titled %q", title)
	return nil
}

func contains(texts []string, want string) bool {
	for _, s := range texts {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}

func has(texts []string, want string) bool {
	for _, s := range texts {
		if s == want {
			return true
		}
	}
	return false
}

func leftClick(x, y int32) native.MouseEvent {
	return native.MouseEvent{Kind: native.MousePress, Button: native.ButtonLeft, X: x, Y: y}
}

func TestOpenUnknownDemo(t *testing.T) {
	err := Open(newHost(t), "nope")
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("expected ErrUnknown, got %v", err)
	}
}

func TestSuiteListsEveryDemo(t *testing.T) {
	if len(suiteEntries) != len(Names())-1 {
		t.Fatalf("suite has %d entries for %d demos", len(suiteEntries), len(Names()))
	}
	for _, e := range suiteEntries {
		if !Known(e.name) || e.name == Suite {
			t.Fatalf("suite entry %q is not a launchable demo", e.name)
		}
	}
}

func TestEveryDemoOpensAndDraws(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			h := newHost(t)
			if err := Open(h, name); err != nil {
				t.Fatalf("open: %v", err)
			}
			if len(h.windows) == 0 {
				t.Fatalf("no windows created")
			}
			h.frame()
			for _, w := range h.windows {
				if !w.IsOpen() || h.b.Flushes(w.Handle()) != 1 {
					t.Fatalf("window %q open=%v flushes=%d", w.Title(), w.IsOpen(), h.b.Flushes(w.Handle()))
				}
			}
		})
	}
}

func TestDemoFailsWithoutDisplay(t *testing.T) {
	h := newHost(t)
	h.b.CloseDisplay()
	err := Open(h, "windows")
	if !errors.Is(err, window.ErrCreateFailed) {
		t.Fatalf("expected joined create failures, got %v", err)
	}
	if len(h.windows) != 3 {
		t.Fatalf("every window should be attempted, got %d", len(h.windows))
	}
}

func TestSuiteButtonOpensDemo(t *testing.T) {
	h := newHost(t)
	if err := Open(h, Suite); err != nil {
		t.Fatalf("open: %v", err)
	}
	h.frame()
	suite := h.window(t, "Notcha Test Suite")
	suite.Hooks().Press(leftClick(150, suiteTop+suiteSpacing+5))
	if !h.window(t, "Text Demo").IsOpen() {
		t.Fatalf("second button should open the text demo")
	}
	suite.Hooks().Press(leftClick(20, 20))
	if len(h.windows) != 2 {
		t.Fatalf("click outside buttons must not open anything, got %d windows", len(h.windows))
	}
}

func TestKeyboardDemoShowsRecentKeys(t *testing.T) {
	h := newHost(t)
	if err := Open(h, "keyboard"); err != nil {
		t.Fatalf("open: %v", err)
	}
	w := h.window(t, "Keyboard Test")
	h.b.Focus(w.Handle())
	h.frame()
	for _, k := range "abcdefghijklmn" {
		w.Keyboard().Dispatch(native.KeyEvent{Key: string(k), Pressed: true})
	}
	texts := h.frame()
	if !contains(texts, "[DOWN] n") || !contains(texts, "[DOWN] g") {
		t.Fatalf("latest keys missing from %v", texts)
	}
	if contains(texts, "[DOWN] f") {
		t.Fatalf("only the last %d keys are shown", historyShown)
	}
	if !contains(texts, "Focus: YES") {
		t.Fatalf("focused window should say so")
	}
}

func TestMouseDemoThrottlesMoveRedraws(t *testing.T) {
	h := newHost(t)
	if err := Open(h, "mouse"); err != nil {
		t.Fatalf("open: %v", err)
	}
	w := h.window(t, "Mouse Test")
	h.frame()
	hooks := w.Hooks()
	hooks.Move(native.MouseEvent{Kind: native.MouseMove, X: 10, Y: 20})
	if texts := h.frame(); !contains(texts, "Mouse Position: (10, 20)") {
		t.Fatalf("first move should repaint, got %v", texts)
	}
	hooks.Move(native.MouseEvent{Kind: native.MouseMove, X: 11, Y: 21})
	if w.CheckRedraw() {
		t.Fatalf("back-to-back moves must be throttled")
	}
	hooks.Press(leftClick(30, 40))
	texts := h.frame()
	if !contains(texts, "[PRESS] Left (30, 40)") || !contains(texts, "Mouse Position: (30, 40)") {
		t.Fatalf("press not recorded: %v", texts)
	}
}

func TestMenuDemoSearchRunsBestMatch(t *testing.T) {
	h := newHost(t)
	if err := Open(h, "menu"); err != nil {
		t.Fatalf("open: %v", err)
	}
	w := h.window(t, "Menu Demo")
	h.frame()
	for _, k := range []string{"i", "n", "c"} {
		w.Keyboard().Dispatch(native.KeyEvent{Key: k, Pressed: true})
	}
	if texts := h.frame(); !contains(texts, "Search: inc") || !contains(texts, "View > Increment Counter") {
		t.Fatalf("search prompt missing: %v", texts)
	}
	w.Keyboard().Dispatch(native.KeyEvent{Key: "Return", Pressed: true})
	texts := h.frame()
	if !contains(texts, "Counter: 1") || contains(texts, "Search:") {
		t.Fatalf("enter should run the match and clear the query: %v", texts)
	}

	w.Keyboard().Dispatch(native.KeyEvent{Key: "x", Pressed: true})
	w.Keyboard().Dispatch(native.KeyEvent{Key: "Escape", Pressed: true})
	if contains(h.frame(), "Search:") {
		t.Fatalf("escape should clear the query")
	}
}

func TestMenuDemoExitClosesWindow(t *testing.T) {
	h := newHost(t)
	if err := Open(h, "menu"); err != nil {
		t.Fatalf("open: %v", err)
	}
	w := h.window(t, "Menu Demo")
	closed := false
	w.OnClose(func() { closed = true })
	if !w.MenuBar().Trigger(0, 4) {
		t.Fatalf("exit item should be actionable")
	}
	if w.IsOpen() || !closed {
		t.Fatalf("exit must close the window")
	}
}

func TestScrollDemoReportsOffset(t *testing.T) {
	h := newHost(t)
	if err := Open(h, "scroll"); err != nil {
		t.Fatalf("open: %v", err)
	}
	w := h.window(t, "Scroll Demo")
	h.frame()
	down := native.MouseEvent{Kind: native.MouseScroll, Button: native.ButtonScrollDown}
	w.Hooks().Scroll(down)
	w.Hooks().Scroll(down)
	texts := h.frame()
	if !has(texts, "Scroll: 160px / 1710px") {
		t.Fatalf("unexpected scroll report %v", texts)
	}
	if has(texts, "Item #1") || !has(texts, "Item #2") {
		t.Fatalf("first item should have scrolled out: %v", texts)
	}
}

func TestSoundDemoButtons(t *testing.T) {
	h := newHost(t)
	if !h.snd.Init() {
		t.Fatalf("fake audio failed")
	}
	if err := Open(h, "sound"); err != nil {
		t.Fatalf("open: %v", err)
	}
	w := h.window(t, "Sound Test")
	if texts := h.frame(); !contains(texts, "Audio Status: Initialized") {
		t.Fatalf("status missing: %v", texts)
	}
	hooks := w.Hooks()
	hooks.Press(leftClick(350, 110))
	hooks.Press(leftClick(350, 100+4*55+10))
	if p := h.b.Presets(); len(p) != 1 || p[0] != "beep" {
		t.Fatalf("expected beep preset, got %v", p)
	}
	tones := h.b.Tones()
	if len(tones) != 1 || tones[0].Frequency != 880 || tones[0].DurationMs != 300 {
		t.Fatalf("expected custom tone, got %#v", tones)
	}
}

func TestSysinfoDemoShowsScreen(t *testing.T) {
	h := newHost(t)
	if err := Open(h, "sysinfo"); err != nil {
		t.Fatalf("open: %v", err)
	}
	texts := h.frame()
	if !contains(texts, "1920x1080") || !contains(texts, "Operating System") {
		t.Fatalf("report incomplete: %v", texts)
	}
	if h.window(t, "System Information").Scrollbar() == nil {
		t.Fatalf("report window should scroll")
	}
}

func TestPushCapped(t *testing.T) {
	var list []string
	for _, s := range []string{"a", "b", "c", "d"} {
		list = pushCapped(list, s, 3)
	}
	if strings.Join(list, "") != "bcd" {
		t.Fatalf("unexpected %v", list)
	}
	if got := tail(list, 2); strings.Join(got, "") != "cd" {
		t.Fatalf("unexpected tail %v", got)
	}
}
