package sysinfo

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/notcha/notcha/internal/theme"
)

// Render formats the report for a terminal of the given width. A width of
// zero leaves the box unconstrained.
func Render(info Info, width int) string {
	styles := theme.Default().Report
	var b strings.Builder
	b.WriteString(styles.Title.Render("System Information"))
	for _, section := range Sections(info) {
		b.WriteString("\n")
		b.WriteString(styles.Section.Render(section.Title))
		for _, line := range section.Lines {
			b.WriteString("\n")
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
				styles.Label.Render(line.Label),
				valueStyle(styles, line.Value).Render(line.Value)))
		}
	}
	box := *styles.Box
	if width > 4 {
		box = box.Width(width - 2)
	}
	return box.Render(b.String())
}

func valueStyle(styles theme.Report, v string) *lipgloss.Style {
	switch v {
	case "yes":
		return styles.Good
	case "no", "unknown":
		return styles.Bad
	}
	return styles.Value
}
