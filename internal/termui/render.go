package termui

import (
	"strings"

	"github.com/joeycumines/folio/internal/terminal"
)

// RenderOutput styles out with t. Segments are styled line by line so that
// lipgloss does not pad multi-line segments to a common width.
func RenderOutput(t Theme, out terminal.Output) string {
	var b strings.Builder
	for _, seg := range out.Segments {
		style := t.Style(seg.Role)
		for i, line := range strings.Split(seg.Text, "\n") {
			if i > 0 {
				b.WriteByte('\n')
			}
			if line != "" {
				b.WriteString(style.Render(line))
			}
		}
	}
	return b.String()
}

// RenderEntry renders one transcript entry: the echoed command line, if
// any, followed by the output.
func RenderEntry(t Theme, prompt string, e terminal.Entry) string {
	out := RenderOutput(t, e.Output)
	if e.IsSystem() {
		return out
	}
	line := t.Prompt.Render(prompt) + " " + t.Text.Render(e.Command)
	if out == "" {
		return line
	}
	return line + "\n" + out
}

// RenderTranscript renders entries top to bottom.
func RenderTranscript(t Theme, prompt string, entries []terminal.Entry) string {
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, RenderEntry(t, prompt, e))
	}
	return strings.Join(parts, "\n")
}
