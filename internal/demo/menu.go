package demo

import (
	"fmt"
	"unicode/utf8"

	"github.com/notcha/notcha/internal/logging"
	"github.com/notcha/notcha/internal/menu"
	"github.com/notcha/notcha/internal/native"
	"github.com/notcha/notcha/internal/window"
)

const (
	menuGray native.Color = 0xF5F5F5
	menuBlue native.Color = 0xE6F2FF
)

type menuDemo struct {
	host       Host
	w          *window.Window
	background native.Color
	about      bool
	counter    int
	query      string
}

func openMenu(h Host) error {
	d := &menuDemo{host: h, background: menuGray}
	d.w = h.CreateWindow("Menu Demo", 600, 400)
	for _, m := range d.menus() {
		d.w.AddMenu(m)
	}
	d.w.Keyboard().OnKeyPress(d.search)
	return open(d.w, d.draw)
}

func (d *menuDemo) menus() []menu.Menu {
	return []menu.Menu{
		{Label: "File", Items: []menu.Item{
			d.clicker("New"),
			d.clicker("Open"),
			d.clicker("Save"),
			{Separator: true},
			{Label: "Exit", Action: func() {
				if err := d.w.Close(); err != nil {
					logging.Error(err)
				}
			}},
		}},
		{Label: "Edit", Items: []menu.Item{
			d.clicker("Undo"),
			d.clicker("Redo"),
			{Separator: true},
			d.clicker("Cut"),
			d.clicker("Copy"),
			d.clicker("Paste"),
		}},
		{Label: "View", Items: []menu.Item{
			d.setter("White Background", func() { d.background = white }),
			d.setter("Gray Background", func() { d.background = menuGray }),
			d.setter("Blue Background", func() { d.background = menuBlue }),
			{Separator: true},
			d.setter("Increment Counter", func() { d.counter++ }),
			d.setter("Reset Counter", func() { d.counter = 0 }),
		}},
		{Label: "Help", Items: []menu.Item{
			d.setter("About", func() { d.about = !d.about }),
		}},
	}
}

func (d *menuDemo) clicker(label string) menu.Item {
	return menu.Item{Label: label, Action: func() {
		logging.Info("menu item %s clicked", label)
		if d.host.Sound().Initialized() {
			d.host.Sound().Click()
		}
	}}
}

func (d *menuDemo) setter(label string, apply func()) menu.Item {
	return menu.Item{Label: label, Action: func() {
		apply()
		d.w.Redraw()
	}}
}

// search edits the type-to-search query. Return runs the best match.
func (d *menuDemo) search(ev native.KeyEvent) {
	switch ev.Key {
	case "Escape":
		d.query = ""
	case "BackSpace":
		if _, size := utf8.DecodeLastRuneInString(d.query); size > 0 {
			d.query = d.query[:len(d.query)-size]
		}
	case "Return", "KP_Enter":
		if matches := d.w.MenuBar().Find(d.query); len(matches) > 0 {
			d.w.MenuBar().Trigger(matches[0].Menu, matches[0].Item)
		}
		d.query = ""
	case "space":
		d.query += " "
	default:
		if utf8.RuneCountInString(ev.Key) != 1 {
			return
		}
		d.query += ev.Key
	}
	d.w.Redraw()
}

func (d *menuDemo) draw(width, height int) {
	w := d.w
	top := w.MenuBarHeight() + 20
	w.SetBackground(d.background)
	w.Write(20, top, "Menu Bar Demo", black, 3)
	w.Write(20, top+40, "Try the menus above!", gray, 2)
	w.Write(20, top+70, fmt.Sprintf("Counter: %d", d.counter), blue, 2)
	if d.query != "" {
		line := "Search: " + d.query
		if matches := w.MenuBar().Find(d.query); len(matches) > 0 {
			m := matches[0]
			line += fmt.Sprintf("  (Enter: %s > %s)", w.MenuBar().Menus()[m.Menu].Label, m.Label)
		}
		w.Write(250, top+70, line, magenta, 1)
	}

	if d.about {
		boxX, boxY := 50, top+110
		boxW, boxH := width-100, 100
		w.FillRect(boxX, boxY, boxW, boxH, black).
			FillRect(boxX+1, boxY+1, boxW-2, boxH-2, white)
		w.Write(boxX+20, boxY+20, "Notcha v0.6.0", black, 2)
		w.Write(boxX+20, boxY+45, "Menu Bar Demo", gray, 2)
		w.Write(boxX+20, boxY+65, "Click Help > About to close", gray, 1)
	}

	w.Write(20, height-40, "Click the menu items or type to search them", gray, 1)
	w.Write(20, height-25, "View menu can change background and counter", gray, 1)
	w.DrawMenuBar().Flush()
}
