package sysinfo

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/padding"
)

// Plain formats the report without styling, for pipes and log files. Labels
// are padded to a common column.
func Plain(info Info) string {
	sections := Sections(info)
	width := 0
	for _, s := range sections {
		for _, line := range s.Lines {
			width = max(width, ansi.StringWidth(line.Label))
		}
	}
	var b strings.Builder
	b.WriteString("System Information\n")
	for _, s := range sections {
		b.WriteString("\n")
		b.WriteString(s.Title)
		b.WriteString("\n")
		for _, line := range s.Lines {
			b.WriteString("  ")
			b.WriteString(padding.String(line.Label, uint(width)))
			b.WriteString("  ")
			b.WriteString(line.Value)
			b.WriteString("\n")
		}
	}
	return b.String()
}
