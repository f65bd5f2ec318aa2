package scrollbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestMeasure(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name                  string
		content, height, offs int
		want                  Geometry
	}{
		{name: "fits", content: 5, height: 10, want: Geometry{Height: 10, ThumbSize: 10}},
		{name: "exact", content: 10, height: 10, want: Geometry{Height: 10, ThumbSize: 10}},
		{name: "double top", content: 20, height: 10, want: Geometry{Height: 10, ThumbSize: 5}},
		{name: "double bottom", content: 20, height: 10, offs: 10, want: Geometry{Height: 10, ThumbTop: 5, ThumbSize: 5}},
		{name: "double middle", content: 20, height: 10, offs: 5, want: Geometry{Height: 10, ThumbTop: 2, ThumbSize: 5}},
		{name: "minimum thumb", content: 1000, height: 10, offs: 990, want: Geometry{Height: 10, ThumbTop: 9, ThumbSize: 1}},
		{name: "offset clamped high", content: 20, height: 10, offs: 99, want: Geometry{Height: 10, ThumbTop: 5, ThumbSize: 5}},
		{name: "offset clamped low", content: 20, height: 10, offs: -3, want: Geometry{Height: 10, ThumbSize: 5}},
		{name: "negative content", content: -1, height: 4, want: Geometry{Height: 4, ThumbSize: 4}},
		{name: "no height", content: 10, height: 0, want: Geometry{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Measure(tt.content, tt.height, tt.offs))
		})
	}
}

func TestForViewport(t *testing.T) {
	t.Parallel()
	vp := viewport.New(20, 4)
	vp.SetContent(strings.Repeat("line\n", 15) + "last")
	vp.GotoBottom()

	g := ForViewport(vp)
	assert.Equal(t, 4, g.Height)
	assert.Equal(t, 1, g.ThumbSize)
	assert.Equal(t, 3, g.ThumbTop)
	assert.True(t, g.Scrollable())
}

func TestRender(t *testing.T) {
	t.Parallel()
	bar := New(lipgloss.NewStyle(), lipgloss.NewStyle())

	got := bar.Render(Geometry{Height: 4, ThumbTop: 1, ThumbSize: 2})
	assert.Equal(t, "│\n┃\n┃\n│", got)

	assert.Empty(t, bar.Render(Geometry{}))
}

func TestRenderHideIdle(t *testing.T) {
	t.Parallel()
	bar := New(lipgloss.NewStyle(), lipgloss.NewStyle())
	bar.HideIdle = true

	assert.Equal(t, " \n \n ", bar.Render(Measure(2, 3, 0)))
	assert.Equal(t, "┃\n┃\n│", bar.Render(Measure(4, 3, 0)))
}

func TestRenderSpaceThumb(t *testing.T) {
	t.Parallel()
	bar := New(lipgloss.NewStyle(), lipgloss.NewStyle())
	bar.Thumb = " "
	got := bar.Render(Geometry{Height: 2, ThumbSize: 1})
	assert.Equal(t, "\u00a0\n│", got)
}
