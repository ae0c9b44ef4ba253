package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/testutil"
	"github.com/notcha/notcha/internal/window"
)

func startedApp(t *testing.T) (*testutil.Backend, *App) {
	t.Helper()
	b := testutil.NewBackend()
	a := New(b)
	if err := a.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	return b, a
}

func openWindow(t *testing.T, a *App, title string) *window.Window {
	t.Helper()
	w := a.CreateWindow(title, 400, 300)
	if err := w.Open(); err != nil {
		t.Fatalf("open %s: %v", title, err)
	}
	return w
}

func TestStartFailure(t *testing.T) {
	b := testutil.NewBackend()
	b.InitOK = false
	a := New(b)
	if err := a.Start(); !errors.Is(err, ErrDisplayInit) {
		t.Fatalf("expected ErrDisplayInit, got %v", err)
	}
	if a.Running() || a.Tick() {
		t.Fatalf("failed start must leave the app stopped")
	}
}

func TestDoubleStartIsNoop(t *testing.T) {
	_, a := startedApp(t)
	if err := a.Start(); err != nil {
		t.Fatalf("second start should only warn, got %v", err)
	}
	if !a.Running() {
		t.Fatalf("expected running")
	}
}

func TestTickWithoutWindowsKeepsRunning(t *testing.T) {
	b, a := startedApp(t)
	for i := 0; i < 3; i++ {
		if !a.Tick() {
			t.Fatalf("empty app must keep running")
		}
	}
	if b.Pumps() != 3 {
		t.Fatalf("expected one pump per tick, got %d", b.Pumps())
	}
}

func TestKeyboardFocusedWindowFirst(t *testing.T) {
	b, a := startedApp(t)
	one := openWindow(t, a, "one")
	two := openWindow(t, a, "two")
	var order []string
	one.Keyboard().OnKeyPress(func(native.KeyEvent) { order = append(order, "one") })
	two.Keyboard().OnKeyPress(func(native.KeyEvent) { order = append(order, "two") })
	a.Keyboard().OnKeyPress(func(ev native.KeyEvent) { order = append(order, "global:"+ev.Key) })

	b.Focus(two.Handle())
	b.QueueKey(native.KeyEvent{Key: "a", Pressed: true})
	b.QueueKey(native.KeyEvent{Key: "b", Pressed: false})
	a.Tick()

	want := []string{"two", "global:a"}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, order)
	}
}

func TestKeyboardIgnoresUnknownFocus(t *testing.T) {
	b, a := startedApp(t)
	w := openWindow(t, a, "one")
	local := 0
	w.Keyboard().OnKeyPress(func(native.KeyEvent) { local++ })
	global := 0
	a.Keyboard().OnKeyPress(func(native.KeyEvent) { global++ })

	b.Focus(native.Handle(9999))
	b.QueueKey(native.KeyEvent{Key: "x", Pressed: true})
	a.Tick()
	if local != 0 || global != 1 {
		t.Fatalf("foreign focus must skip window handlers, local=%d global=%d", local, global)
	}
}

func TestKeyCallbackOpeningWindowMidDrain(t *testing.T) {
	b, a := startedApp(t)
	w := openWindow(t, a, "main")
	b.Focus(w.Handle())
	w.Keyboard().OnKeyPress(func(native.KeyEvent) {
		openWindow(t, a, "child")
	})
	b.QueueKey(native.KeyEvent{Key: "n", Pressed: true})
	b.QueueKey(native.KeyEvent{Key: "n", Pressed: true})
	if !a.Tick() {
		t.Fatalf("expected running")
	}
	if len(a.Windows()) != 3 {
		t.Fatalf("expected two child windows, got %d windows", len(a.Windows()))
	}
}

func TestMouseRoutedByEventWindow(t *testing.T) {
	b, a := startedApp(t)
	one := openWindow(t, a, "one")
	two := openWindow(t, a, "two")
	var got []string
	one.Mouse().OnMousePress(func(native.MouseEvent) { got = append(got, "one") })
	two.Mouse().OnMouseMove(func(ev native.MouseEvent) { got = append(got, "two-move") })
	a.Mouse().OnMousePress(func(native.MouseEvent) { got = append(got, "global") })

	b.QueueMouse(
		native.MouseEvent{Kind: native.MouseMove, X: 1, Y: 1, Window: two.Handle()},
		native.MouseEvent{Kind: native.MouseMove, X: 2, Y: 2, Window: two.Handle()},
		native.MouseEvent{Kind: native.MousePress, Button: native.ButtonLeft, X: 50, Y: 50, Window: one.Handle()},
	)
	a.Tick()
	want := []string{"two-move", "one", "global"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestLifecycleClosesAndRedraws(t *testing.T) {
	b, a := startedApp(t)
	one := openWindow(t, a, "one")
	two := openWindow(t, a, "two")
	closed := 0
	one.OnClose(func() { closed++ })
	var frames [][2]int
	two.OnNewFrame(func(w, h int) { frames = append(frames, [2]int{w, h}) })
	a.Tick()

	b.CloseExternally(one.Handle())
	b.Resize(two.Handle(), 500, 250)
	if !a.Tick() {
		t.Fatalf("app must keep running while a window is open")
	}
	a.Tick()
	if closed != 1 || one.IsOpen() {
		t.Fatalf("expected one close callback, got %d", closed)
	}
	if len(frames) != 2 || frames[1] != [2]int{500, 250} {
		t.Fatalf("unexpected frames %v", frames)
	}
	if len(a.Windows()) != 2 {
		t.Fatalf("closed windows stay in the collection")
	}
}

func TestAllClosedStopsOnce(t *testing.T) {
	b, a := startedApp(t)
	one := openWindow(t, a, "one")
	two := openWindow(t, a, "two")
	b.CloseExternally(one.Handle())
	if !a.Tick() {
		t.Fatalf("one window still open")
	}
	b.CloseExternally(two.Handle())
	if a.Tick() {
		t.Fatalf("expected auto-stop once every window closed")
	}
	if a.Running() || b.DisplayOpen {
		t.Fatalf("auto-stop must release the display")
	}
	pumps := b.Pumps()
	if a.Tick() || b.Pumps() != pumps {
		t.Fatalf("no processing after stop")
	}
	if err := a.Stop(); err != nil {
		t.Fatalf("second stop must be a no-op, got %v", err)
	}
}

func TestStopReleasesAllDespiteFailures(t *testing.T) {
	b, a := startedApp(t)
	one := openWindow(t, a, "one")
	two := openWindow(t, a, "two")
	three := openWindow(t, a, "three")
	boom := errors.New("boom")
	b.FailDestroy(two.Handle(), boom)

	err := a.Stop()
	if !errors.Is(err, boom) {
		t.Fatalf("expected joined destroy error, got %v", err)
	}
	if len(b.Destroyed()) != 3 {
		t.Fatalf("every window must be released, got %v", b.Destroyed())
	}
	for _, w := range []*window.Window{one, two, three} {
		if w.IsOpen() {
			t.Fatalf("window %s still open", w.Title())
		}
	}
	if b.DisplayOpen {
		t.Fatalf("display must be closed")
	}
}

func TestStopFromCallbackEndsTick(t *testing.T) {
	b, a := startedApp(t)
	w := openWindow(t, a, "one")
	b.Focus(w.Handle())
	a.Keyboard().OnKeyPress(func(native.KeyEvent) { a.Stop() })
	b.QueueKey(native.KeyEvent{Key: "q", Pressed: true})
	if a.Tick() {
		t.Fatalf("tick must report the stop")
	}
}

func TestRunReturnsWhenAllWindowsClose(t *testing.T) {
	b, a := startedApp(t)
	w := openWindow(t, a, "one")
	ticks := 0
	w.OnNewFrame(func(int, int) {
		ticks++
		b.CloseExternally(w.Handle())
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := a.Run(ctx, time.Millisecond); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.Running() || ticks != 1 {
		t.Fatalf("expected stop after close, ticks=%d", ticks)
	}
}
