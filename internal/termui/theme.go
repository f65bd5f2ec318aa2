// Package termui is the full-screen Bubble Tea front-end of the portfolio
// terminal.
package termui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/joeycumines/folio/internal/terminal"
)

// Colors holds lipgloss color strings (ANSI index or hex) per theme slot.
type Colors struct {
	Accent string
	Muted  string
	Link   string
	Error  string
	Border string
}

// DefaultColors matches the config defaults.
func DefaultColors() Colors {
	return Colors{
		Accent: "#50fa7b",
		Muted:  "#6272a4",
		Link:   "#8be9fd",
		Error:  "#ff5555",
		Border: "#44475a",
	}
}

// Theme maps output roles and chrome to styles.
type Theme struct {
	Text   lipgloss.Style
	Accent lipgloss.Style
	Muted  lipgloss.Style
	Link   lipgloss.Style
	Error  lipgloss.Style
	Prompt lipgloss.Style
	Border lipgloss.Style
	Frame  lipgloss.Style
}

// NewTheme builds a theme from c.
func NewTheme(c Colors) Theme {
	accent := lipgloss.Color(c.Accent)
	border := lipgloss.Color(c.Border)
	return Theme{
		Text:   lipgloss.NewStyle(),
		Accent: lipgloss.NewStyle().Foreground(accent).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Muted)),
		Link:   lipgloss.NewStyle().Foreground(lipgloss.Color(c.Link)).Underline(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color(c.Error)),
		Prompt: lipgloss.NewStyle().Foreground(accent),
		Border: lipgloss.NewStyle().Foreground(border),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border),
	}
}

// PlainTheme renders text without any escape sequences. The frame keeps its
// border characters.
func PlainTheme() Theme {
	plain := lipgloss.NewStyle()
	return Theme{
		Text:   plain,
		Accent: plain,
		Muted:  plain,
		Link:   plain,
		Error:  plain,
		Prompt: plain,
		Border: plain,
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()),
	}
}

// Style returns the style for r.
func (t Theme) Style(r terminal.Role) lipgloss.Style {
	switch r {
	case terminal.RoleAccent:
		return t.Accent
	case terminal.RoleMuted:
		return t.Muted
	case terminal.RoleLink:
		return t.Link
	case terminal.RoleError:
		return t.Error
	default:
		return t.Text
	}
}
