// Package scrollbar renders a one-column scrollbar gutter for a Bubble Tea
// viewport.
package scrollbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// Geometry is the thumb placement within a track of Height rows.
type Geometry struct {
	Height    int
	ThumbTop  int
	ThumbSize int
}

// Scrollable reports whether the content overflows the track, i.e. whether
// the thumb is shorter than the track.
func (g Geometry) Scrollable() bool { return g.ThumbSize < g.Height }

// Measure places the thumb for content lines shown through a window of
// height rows scrolled to offset. The thumb size is proportional to the
// visible fraction of the content, with a minimum of one row; when the
// content fits, the thumb fills the track.
func Measure(content, height, offset int) Geometry {
	if height <= 0 {
		return Geometry{}
	}
	content = max(content, 0)
	if content <= height {
		return Geometry{Height: height, ThumbSize: height}
	}

	maxOffset := content - height
	offset = min(max(offset, 0), maxOffset)

	size := height * height / content
	size = min(max(size, 1), height)

	track := height - size
	top := 0
	if track > 0 {
		top = offset * track / maxOffset
	}
	return Geometry{Height: height, ThumbTop: top, ThumbSize: size}
}

// ForViewport measures vp's current scroll state.
func ForViewport(vp viewport.Model) Geometry {
	return Measure(vp.TotalLineCount(), vp.Height, vp.YOffset)
}

// Bar draws a Geometry.
type Bar struct {
	Thumb      string
	Track      string
	ThumbStyle lipgloss.Style
	TrackStyle lipgloss.Style
	// HideIdle renders blank rows when nothing can scroll.
	HideIdle bool
}

// New returns a bar with a heavy thumb on a light track.
func New(thumb, track lipgloss.Style) Bar {
	return Bar{
		Thumb:      "┃",
		Track:      "│",
		ThumbStyle: thumb,
		TrackStyle: track,
	}
}

// Render returns g.Height rows joined by newlines, one cell each.
func (b Bar) Render(g Geometry) string {
	if g.Height <= 0 {
		return ""
	}
	// a plain space loses its background once lipgloss trims it
	thumb := strings.ReplaceAll(b.Thumb, " ", "\u00a0")
	track := strings.ReplaceAll(b.Track, " ", "\u00a0")
	idle := b.HideIdle && !g.Scrollable()

	rows := make([]string, g.Height)
	for i := range rows {
		switch {
		case idle:
			rows[i] = " "
		case i >= g.ThumbTop && i < g.ThumbTop+g.ThumbSize:
			rows[i] = b.ThumbStyle.Render(thumb)
		default:
			rows[i] = b.TrackStyle.Render(track)
		}
	}
	return strings.Join(rows, "\n")
}
