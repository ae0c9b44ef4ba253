package menu

import (
	"github.com/muesli/reflow/truncate"
	"github.com/notcha/notcha/internal/logging/events"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/theme"
)

// Layout constants, in pixels.
const (
	BarHeight       = 30
	ItemHeight      = 25
	SeparatorHeight = 5
	Padding         = 10
	DropdownWidth   = 200
	CharWidth       = 8
	TextSize        = 2
)

// None marks "no menu open" and "no item hovered".
const None = -1

// Item is a dropdown entry. The zero value is an enabled, inert item.
type Item struct {
	Label     string
	Action    func()
	Separator bool
	Disabled  bool
}

func (it Item) height() int {
	if it.Separator {
		return SeparatorHeight
	}
	return ItemHeight
}

func (it Item) actionable() bool {
	return !it.Separator && !it.Disabled
}

// Menu is a top-level label with its dropdown items.
type Menu struct {
	Label string
	Items []Item
}

// Width is the label's footprint in the bar.
func (m Menu) Width() int {
	return len([]rune(m.Label))*CharWidth + 2*Padding
}

// Canvas is the drawing surface a Bar renders onto.
type Canvas interface {
	FillRect(x, y, w, h int, c native.Color)
	Text(x, y int, text string, c native.Color, size int)
}

// Bar is a horizontal menu bar with at most one open dropdown.
type Bar struct {
	menus   []Menu
	active  int
	hovered int
	colors  theme.Menu
}

// NewBar builds a bar from an ordered list of menus.
func NewBar(menus ...Menu) *Bar {
	b := &Bar{active: None, hovered: None, colors: theme.Default().Menu}
	for _, m := range menus {
		b.AddMenu(m)
	}
	return b
}

// AddMenu appends a top-level menu.
func (b *Bar) AddMenu(m Menu) {
	m.Items = append([]Item(nil), m.Items...)
	b.menus = append(b.menus, m)
}

func (b *Bar) Menus() []Menu       { return b.menus }
func (b *Bar) Height() int         { return BarHeight }
func (b *Bar) Active() int         { return b.active }
func (b *Bar) Hovered() int        { return b.hovered }
func (b *Bar) IsOpen() bool        { return b.active != None }
func (b *Bar) InBar(_, y int) bool { return y >= 0 && y < BarHeight }

// Close collapses any open dropdown.
func (b *Bar) Close() {
	if b.active != None {
		events.Menu.Close(b.active)
	}
	b.active = None
	b.hovered = None
}

// MenuX is the unclamped left edge of menu i's label.
func (b *Bar) MenuX(i int) int {
	x := 0
	for j := 0; j < i && j < len(b.menus); j++ {
		x += b.menus[j].Width()
	}
	return x
}

// DropdownX is the left edge of menu i's dropdown, kept inside the window.
// Drawing and hit-testing both go through here.
func (b *Bar) DropdownX(i, windowWidth int) int {
	x := b.MenuX(i)
	if x+DropdownWidth > windowWidth {
		x = windowWidth - DropdownWidth
	}
	if x < 0 {
		x = 0
	}
	return x
}

// DropdownHeight is the summed item height, limited to the space under the bar.
func (b *Bar) DropdownHeight(i, windowHeight int) int {
	if i < 0 || i >= len(b.menus) {
		return 0
	}
	h := 0
	for _, it := range b.menus[i].Items {
		h += it.height()
	}
	if limit := windowHeight - BarHeight; h > limit {
		h = max(limit, 0)
	}
	return h
}

// menuAt returns the index of the label under x, or None.
func (b *Bar) menuAt(x int) int {
	left := 0
	for i, m := range b.menus {
		w := m.Width()
		if x >= left && x < left+w {
			return i
		}
		left += w
	}
	return None
}

// itemAt returns the index of the item under (x, y) in the open dropdown,
// or None when the point is outside it.
func (b *Bar) itemAt(x, y, windowWidth, windowHeight int) int {
	if b.active == None {
		return None
	}
	left := b.DropdownX(b.active, windowWidth)
	if x < left || x >= left+DropdownWidth {
		return None
	}
	bottom := BarHeight + b.DropdownHeight(b.active, windowHeight)
	if y < BarHeight || y >= bottom {
		return None
	}
	top := BarHeight
	for i, it := range b.menus[b.active].Items {
		h := it.height()
		if y >= top && y < top+h {
			return i
		}
		top += h
	}
	return None
}

// HandleClick applies a press at (x, y). It reports whether the bar consumed
// the click; unconsumed clicks belong to the window content.
func (b *Bar) HandleClick(x, y, windowWidth, windowHeight int) bool {
	if b.InBar(x, y) {
		i := b.menuAt(x)
		switch {
		case i == None:
			b.Close()
		case i == b.active:
			b.Close()
		default:
			b.active = i
			b.hovered = None
			events.Menu.Open(i, b.menus[i].Label)
		}
		return true
	}
	if b.active == None {
		return false
	}
	idx := b.itemAt(x, y, windowWidth, windowHeight)
	if idx == None {
		b.Close()
		return true
	}
	menuIdx := b.active
	it := b.menus[menuIdx].Items[idx]
	if !it.actionable() {
		return true
	}
	b.Close()
	events.Menu.Action(menuIdx, idx, it.Label)
	if it.Action != nil {
		it.Action()
	}
	return true
}

// HandleMouseMove updates the hovered item and reports whether it changed.
func (b *Bar) HandleMouseMove(x, y, windowWidth, windowHeight int) bool {
	if b.active == None {
		return false
	}
	old := b.hovered
	b.hovered = None
	if idx := b.itemAt(x, y, windowWidth, windowHeight); idx != None && !b.menus[b.active].Items[idx].Separator {
		b.hovered = idx
	}
	if b.hovered != old {
		events.Menu.Hover(b.active, b.hovered)
		return true
	}
	return false
}

// Trigger runs the action of item j in menu i as if it had been clicked.
func (b *Bar) Trigger(i, j int) bool {
	if i < 0 || i >= len(b.menus) || j < 0 || j >= len(b.menus[i].Items) {
		return false
	}
	it := b.menus[i].Items[j]
	if !it.actionable() {
		return false
	}
	b.Close()
	events.Menu.Action(i, j, it.Label)
	if it.Action != nil {
		it.Action()
	}
	return true
}

// Draw paints the bar and, when open, the active dropdown.
func (b *Bar) Draw(c Canvas, windowWidth, windowHeight int) {
	col := b.colors
	c.FillRect(0, 0, windowWidth, BarHeight, col.Background)
	c.FillRect(0, BarHeight-1, windowWidth, 1, col.Border)

	left := 0
	for i, m := range b.menus {
		w := m.Width()
		if i == b.active {
			c.FillRect(left, 0, w, BarHeight-1, col.Active)
		}
		c.Text(left+Padding, 17, m.Label, col.Text, TextSize)
		left += w
	}

	if b.active == None {
		return
	}
	x := b.DropdownX(b.active, windowWidth)
	h := b.DropdownHeight(b.active, windowHeight)
	if h <= 0 {
		return
	}
	w := min(DropdownWidth, windowWidth-x)
	c.FillRect(x, BarHeight, w, h, col.Border)
	c.FillRect(x+1, BarHeight+1, w-2, h-2, col.Background)

	bottom := BarHeight + h
	maxChars := (DropdownWidth - 2*Padding) / CharWidth
	y := BarHeight
	for i, it := range b.menus[b.active].Items {
		if y >= bottom {
			break
		}
		if it.Separator {
			if y+2 < bottom {
				c.FillRect(x+5, y+2, min(DropdownWidth-10, windowWidth-x-5), 1, col.Separator)
			}
			y += SeparatorHeight
			continue
		}
		if i == b.hovered && !it.Disabled && y+ItemHeight <= bottom {
			c.FillRect(x+1, y+1, w-2, ItemHeight-2, col.Hover)
		}
		if y+15 < bottom {
			fg := col.Text
			if it.Disabled {
				fg = col.Disabled
			}
			c.Text(x+Padding, y+15, truncate.StringWithTail(it.Label, uint(maxChars), "..."), fg, TextSize)
		}
		y += ItemHeight
	}
}
