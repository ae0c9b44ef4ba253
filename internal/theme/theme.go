package theme

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/notcha/notcha/internal/native"
)

// Menu colors the menu bar and its dropdowns.
type Menu struct {
	Background native.Color
	Hover      native.Color
	Active     native.Color
	Text       native.Color
	Disabled   native.Color
	Border     native.Color
	Separator  native.Color
}

// Scroll colors the scrollbar track and thumb.
type Scroll struct {
	Track       native.Color
	Thumb       native.Color
	ThumbHover  native.Color
	ThumbActive native.Color
}

// Report holds the Lip Gloss styles used for terminal output.
type Report struct {
	Title   *lipgloss.Style
	Section *lipgloss.Style
	Label   *lipgloss.Style
	Value   *lipgloss.Style
	Good    *lipgloss.Style
	Bad     *lipgloss.Style
	Box     *lipgloss.Style
}

// Styles describes the palette shared by widgets and terminal output.
type Styles struct {
	Menu   Menu
	Scroll Scroll
	Report Report
}

const (
	sectionColor native.Color = 0x2563EB
	labelColor   native.Color = 0x666666
	goodColor    native.Color = 0x16A34A
	badColor     native.Color = 0xDC2626
)

var defaultStyles = Styles{
	Menu: Menu{
		Background: 0xF0F0F0,
		Hover:      0xD0D0FF,
		Active:     0xB0B0FF,
		Text:       0x000000,
		Disabled:   0x808080,
		Border:     0x808080,
		Separator:  0xC0C0C0,
	},
	Scroll: Scroll{
		Track:       0xE0E0E0,
		Thumb:       0xA0A0A0,
		ThumbHover:  0x808080,
		ThumbActive: 0x606060,
	},
	Report: Report{
		Title: ptr(
			lipgloss.NewStyle().Bold(true),
		),
		Section: ptr(
			lipgloss.NewStyle().Foreground(Hex(sectionColor)).Bold(true).MarginTop(1),
		),
		Label: ptr(
			lipgloss.NewStyle().Foreground(Hex(labelColor)).Width(22),
		),
		Value: ptr(
			lipgloss.NewStyle(),
		),
		Good: ptr(
			lipgloss.NewStyle().Foreground(Hex(goodColor)),
		),
		Bad: ptr(
			lipgloss.NewStyle().Foreground(Hex(badColor)),
		),
		Box: ptr(
			lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Hex(sectionColor)).Padding(0, 1),
		),
	},
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Hex converts a packed pixel color into a Lip Gloss color.
func Hex(c native.Color) color.Color {
	return lipgloss.Color(fmt.Sprintf("#%06X", uint32(c)&0xFFFFFF))
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
