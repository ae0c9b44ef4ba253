package menu

import (
	"strings"
	"testing"

	"github.com/notcha/notcha/internal/native"
)

type rect struct {
	x, y, w, h int
	c          native.Color
}

type textOp struct {
	x, y int
	text string
	c    native.Color
}

type recordCanvas struct {
	rects []rect
	texts []textOp
}

func (r *recordCanvas) FillRect(x, y, w, h int, c native.Color) {
	r.rects = append(r.rects, rect{x, y, w, h, c})
}

func (r *recordCanvas) Text(x, y int, text string, c native.Color, _ int) {
	r.texts = append(r.texts, textOp{x, y, text, c})
}

func newTestBar(calls *[]string) *Bar {
	record := func(name string) func() {
		return func() { *calls = append(*calls, name) }
	}
	return NewBar(
		Menu{Label: "File", Items: []Item{
			{Label: "New", Action: record("new")},
			{Label: "Open", Action: record("open")},
			{Label: "Save", Action: record("save")},
			{Separator: true},
			{Label: "Exit", Action: record("exit")},
		}},
		Menu{Label: "Edit", Items: []Item{
			{Label: "Undo", Action: record("undo"), Disabled: true},
			{Label: "Redo", Action: record("redo")},
		}},
		Menu{Label: "View", Items: []Item{{Label: "Zoom", Action: record("zoom")}}},
		Menu{Label: "Help", Items: []Item{{Label: "About", Action: record("about")}}},
	)
}

func TestMenuWidth(t *testing.T) {
	if w := (Menu{Label: "File"}).Width(); w != 52 {
		t.Fatalf("expected width 52, got %d", w)
	}
}

func TestClickTogglesSameMenu(t *testing.T) {
	b := newTestBar(new([]string))
	if !b.HandleClick(10, 10, 600, 400) {
		t.Fatalf("expected bar to consume click")
	}
	if b.Active() != 0 {
		t.Fatalf("expected File open, got %d", b.Active())
	}
	b.HandleClick(10, 10, 600, 400)
	if b.IsOpen() {
		t.Fatalf("expected second click to close, active=%d", b.Active())
	}
}

func TestClickOtherMenuSwitchesDirectly(t *testing.T) {
	b := newTestBar(new([]string))
	b.HandleClick(10, 10, 600, 400)
	b.HandleMouseMove(20, 40, 600, 400)
	if b.Hovered() != 0 {
		t.Fatalf("expected hover on New, got %d", b.Hovered())
	}
	b.HandleClick(60, 10, 600, 400)
	if b.Active() != 1 {
		t.Fatalf("expected Edit open, got %d", b.Active())
	}
	if b.Hovered() != None {
		t.Fatalf("expected hover reset on switch, got %d", b.Hovered())
	}
}

func TestClickInBarOutsideLabelsCloses(t *testing.T) {
	b := newTestBar(new([]string))
	b.HandleClick(10, 10, 600, 400)
	if !b.HandleClick(500, 10, 600, 400) {
		t.Fatalf("expected bar click consumed")
	}
	if b.IsOpen() {
		t.Fatalf("expected closed")
	}
}

func TestClickOutsideDropdownCloses(t *testing.T) {
	b := newTestBar(new([]string))
	b.HandleClick(10, 10, 600, 400)
	if !b.HandleClick(400, 300, 600, 400) {
		t.Fatalf("expected click consumed while open")
	}
	if b.IsOpen() {
		t.Fatalf("expected dropdown closed")
	}
	if b.HandleClick(400, 300, 600, 400) {
		t.Fatalf("content click must pass through when closed")
	}
}

func TestClickItemRunsActionAndCloses(t *testing.T) {
	var calls []string
	b := newTestBar(&calls)
	b.HandleClick(10, 10, 600, 400)
	// New 30-55, Open 55-80, Save 80-105, separator 105-110, Exit 110-135.
	b.HandleClick(50, 120, 600, 400)
	if len(calls) != 1 || calls[0] != "exit" {
		t.Fatalf("expected exit action, got %v", calls)
	}
	if b.IsOpen() {
		t.Fatalf("expected closed after action")
	}
}

func TestSeparatorAndDisabledAreInert(t *testing.T) {
	var calls []string
	b := newTestBar(&calls)
	b.HandleClick(10, 10, 600, 400)
	b.HandleClick(50, 107, 600, 400)
	if !b.IsOpen() || len(calls) != 0 {
		t.Fatalf("separator click changed state: open=%v calls=%v", b.IsOpen(), calls)
	}

	b.HandleClick(60, 10, 600, 400)
	b.HandleClick(70, 40, 600, 400)
	if b.Active() != 1 || len(calls) != 0 {
		t.Fatalf("disabled click changed state: active=%d calls=%v", b.Active(), calls)
	}
	b.HandleClick(70, 60, 600, 400)
	if len(calls) != 1 || calls[0] != "redo" {
		t.Fatalf("expected redo, got %v", calls)
	}
}

func TestHoverSkipsSeparatorsAndReportsChanges(t *testing.T) {
	b := newTestBar(new([]string))
	if b.HandleMouseMove(20, 40, 600, 400) {
		t.Fatalf("hover must be suppressed while closed")
	}
	b.HandleClick(10, 10, 600, 400)
	if !b.HandleMouseMove(20, 60, 600, 400) || b.Hovered() != 1 {
		t.Fatalf("expected hover on item 1, got %d", b.Hovered())
	}
	if b.HandleMouseMove(25, 62, 600, 400) {
		t.Fatalf("same item must not report a change")
	}
	if !b.HandleMouseMove(20, 107, 600, 400) || b.Hovered() != None {
		t.Fatalf("expected separator to clear hover, got %d", b.Hovered())
	}
	b.HandleMouseMove(20, 40, 600, 400)
	if !b.HandleMouseMove(500, 300, 600, 400) || b.Hovered() != None {
		t.Fatalf("expected hover cleared outside dropdown")
	}
}

func TestDropdownXClamps(t *testing.T) {
	b := newTestBar(new([]string))
	if x := b.DropdownX(3, 600); x != 156 {
		t.Fatalf("expected unclamped 156, got %d", x)
	}
	if x := b.DropdownX(3, 300); x != 100 {
		t.Fatalf("expected 100 at width 300, got %d", x)
	}
	if x := b.DropdownX(3, 150); x != 0 {
		t.Fatalf("expected left edge to win when too narrow, got %d", x)
	}
}

func TestDropdownContainment(t *testing.T) {
	b := newTestBar(new([]string))
	for width := 0; width <= 1200; width += 7 {
		for i := range b.Menus() {
			x := b.DropdownX(i, width)
			if x < 0 {
				t.Fatalf("negative x=%d for menu %d width %d", x, i, width)
			}
			if DropdownWidth <= width && x+DropdownWidth > width {
				t.Fatalf("dropdown overflows: x=%d menu %d width %d", x, i, width)
			}
		}
	}
}

func TestClickHitTestUsesClampedOrigin(t *testing.T) {
	var calls []string
	b := newTestBar(&calls)
	// Help sits at x=156; in a 250px window its dropdown starts at 50.
	b.HandleClick(160, 10, 250, 400)
	if b.Active() != 3 {
		t.Fatalf("expected Help open, got %d", b.Active())
	}
	if !b.HandleMouseMove(60, 40, 250, 400) || b.Hovered() != 0 {
		t.Fatalf("expected hover inside clamped dropdown")
	}
	b.HandleClick(60, 40, 250, 400)
	if len(calls) != 1 || calls[0] != "about" {
		t.Fatalf("expected about action via clamped dropdown, got %v", calls)
	}
}

func TestDropdownHeightClamp(t *testing.T) {
	b := newTestBar(new([]string))
	if h := b.DropdownHeight(0, 400); h != 105 {
		t.Fatalf("expected 105, got %d", h)
	}
	if h := b.DropdownHeight(0, 100); h != 70 {
		t.Fatalf("expected clamp to 70, got %d", h)
	}
	if h := b.DropdownHeight(9, 400); h != 0 {
		t.Fatalf("expected 0 for unknown menu, got %d", h)
	}
}

func TestTriggerRunsAction(t *testing.T) {
	var calls []string
	b := newTestBar(&calls)
	if b.Trigger(1, 0) {
		t.Fatalf("disabled item must not trigger")
	}
	if !b.Trigger(0, 2) || calls[0] != "save" {
		t.Fatalf("expected save, got %v", calls)
	}
	if b.Trigger(7, 0) {
		t.Fatalf("out-of-range trigger must fail")
	}
}

func TestFindRanksItems(t *testing.T) {
	b := newTestBar(new([]string))
	matches := b.Find("sav")
	if len(matches) == 0 || matches[0].Label != "Save" || matches[0].Menu != 0 || matches[0].Item != 2 {
		t.Fatalf("unexpected matches %#v", matches)
	}
	for _, m := range b.Find("u") {
		if m.Label == "Undo" {
			t.Fatalf("disabled items must not be searchable")
		}
	}
	if b.Find("  ") != nil {
		t.Fatalf("blank query returns nothing")
	}
}

func TestDrawClosedBar(t *testing.T) {
	b := newTestBar(new([]string))
	var c recordCanvas
	b.Draw(&c, 600, 400)
	if len(c.texts) != 4 {
		t.Fatalf("expected 4 labels, got %d", len(c.texts))
	}
	if c.texts[1].x != 52+Padding || c.texts[1].text != "Edit" {
		t.Fatalf("unexpected label placement %#v", c.texts[1])
	}
	if len(c.rects) != 2 {
		t.Fatalf("expected background and border only, got %d rects", len(c.rects))
	}
}

func TestDrawOpenDropdownTruncatesAndDims(t *testing.T) {
	b := NewBar(Menu{Label: "Go", Items: []Item{
		{Label: "An extremely long label that cannot possibly fit"},
		{Label: "Off", Disabled: true},
	}})
	b.HandleClick(5, 5, 600, 400)
	var c recordCanvas
	b.Draw(&c, 600, 400)
	var long, off *textOp
	for i := range c.texts {
		switch {
		case strings.HasPrefix(c.texts[i].text, "An extremely"):
			long = &c.texts[i]
		case c.texts[i].text == "Off":
			off = &c.texts[i]
		}
	}
	if long == nil || off == nil {
		t.Fatalf("missing item labels: %#v", c.texts)
	}
	if !strings.HasSuffix(long.text, "...") || len(long.text) > (DropdownWidth-2*Padding)/CharWidth {
		t.Fatalf("expected truncated label, got %q", long.text)
	}
	if off.c != b.colors.Disabled {
		t.Fatalf("expected disabled color, got %06x", off.c)
	}
}
