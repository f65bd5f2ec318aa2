package portfolio

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/joeycumines/folio/internal/profile"
	"github.com/joeycumines/folio/internal/terminal"
	"github.com/rivo/uniseg"
)

var logo = []string{
	"   ▄▄▄▄▄▄▄   ",
	"  █ ▀▀▀▀▀ █  ",
	"  █ >_    █  ",
	"  █       █  ",
	"  ▀▄▄▄▄▄▄▄▀  ",
	"    ▐███▌    ",
}

func neofetch(p *profile.Profile) terminal.Output {
	handle := p.DisplayHandle()
	title := handle + "@folio"

	type row struct{ label, value string }
	rows := []row{
		{"OS", p.Host.OS},
		{"Host", p.Name},
		{"Role", p.Role},
		{"Location", p.Location},
		{"Shell", p.Host.Shell},
		{"Editor", p.Host.Editor},
		{"Uptime", p.Host.Uptime},
		{"Theme", p.Host.Theme},
	}
	info := make([]row, 0, len(rows))
	for _, r := range rows {
		if r.value != "" {
			info = append(info, r)
		}
	}

	logoWidth := 0
	for _, l := range logo {
		logoWidth = max(logoWidth, uniseg.StringWidth(l))
	}
	blank := strings.Repeat(" ", logoWidth)

	// title, underline, then info rows
	lines := 2 + len(info)
	lines = max(lines, len(logo))

	var b terminal.OutputBuilder
	for i := 0; i < lines; i++ {
		if i < len(logo) {
			l := logo[i]
			b.Accent(l + strings.Repeat(" ", logoWidth-uniseg.StringWidth(l)))
		} else {
			b.Text(blank)
		}
		b.Text("  ")
		switch {
		case i == 0:
			b.Accent(title)
		case i == 1:
			b.Muted(strings.Repeat("-", uniseg.StringWidth(title)))
		case i-2 < len(info):
			r := info[i-2]
			b.Accent(r.label + ": ").Text(r.value)
		}
		b.Newline()
	}
	return trimLines(b.Output())
}

// trimLines drops trailing spaces left by padding on lines with no info.
func trimLines(out terminal.Output) terminal.Output {
	for i := range out.Segments {
		seg := &out.Segments[i]
		if !strings.Contains(seg.Text, "\n") {
			continue
		}
		parts := strings.Split(seg.Text, "\n")
		for j := 0; j < len(parts)-1; j++ {
			parts[j] = strings.TrimRight(parts[j], " ")
		}
		seg.Text = strings.Join(parts, "\n")
	}
	return out
}

const (
	rainWidth  = 40
	rainHeight = 6
	rainGlyphs = "01ｱｲｳｴｵｶｷｸｹｺｻｼｽｾｿﾀﾁﾂﾃﾄ"
)

// matrix renders the same rain every time; the seed is fixed so the command
// stays a pure function of the profile.
func matrix(p *profile.Profile) terminal.Output {
	glyphs := []rune(rainGlyphs)
	rng := rand.New(rand.NewPCG(0x466f6c69, 0x6f))

	var b terminal.OutputBuilder
	for y := 0; y < rainHeight; y++ {
		var line strings.Builder
		for x := 0; x < rainWidth; x++ {
			if rng.IntN(3) == 0 {
				line.WriteRune(' ')
				continue
			}
			line.WriteRune(glyphs[rng.IntN(len(glyphs))])
		}
		b.Accent(strings.TrimRight(line.String(), " ")).Newline()
	}
	b.Newline()
	b.Text(fmt.Sprintf("Wake up, %s...", p.DisplayHandle())).Newline()
	b.Muted("The Matrix has you.")
	return b.Output()
}
