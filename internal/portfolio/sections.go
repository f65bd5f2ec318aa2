package portfolio

import (
	"fmt"
	"strings"

	"github.com/joeycumines/folio/internal/profile"
	"github.com/joeycumines/folio/internal/terminal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func whoami(p *profile.Profile) terminal.Output {
	var b terminal.OutputBuilder
	b.Accent(p.Name)
	if p.Handle != "" {
		b.Muted(" (@" + p.Handle + ")")
	}
	b.Newline()
	var tagline []string
	if p.Role != "" {
		tagline = append(tagline, p.Role)
	}
	if p.Location != "" {
		tagline = append(tagline, p.Location)
	}
	if len(tagline) > 0 {
		b.Text(strings.Join(tagline, " · "))
	}
	return b.Output()
}

func about(p *profile.Profile) terminal.Output {
	if p.Bio == "" && p.Availability == "" {
		return terminal.Text("Nothing to say yet.")
	}
	var b terminal.OutputBuilder
	if p.Bio != "" {
		b.Text(p.Bio).Newline()
	}
	if p.Availability != "" {
		if p.Bio != "" {
			b.Newline()
		}
		b.Muted("Availability: ").Text(p.Availability)
	}
	return b.Output()
}

func skills(p *profile.Profile) terminal.Output {
	if len(p.Skills) == 0 {
		return terminal.Text("No skills listed.")
	}
	width := 0
	for _, g := range p.Skills {
		width = max(width, len(g.Category))
	}
	// a Caser keeps state between calls
	title := cases.Title(language.English)
	var b terminal.OutputBuilder
	for _, g := range p.Skills {
		b.Accent(fmt.Sprintf("%-*s", width, title.String(g.Category))).
			Text("  " + strings.Join(g.Items, ", ")).
			Newline()
	}
	return b.Output()
}

func projects(p *profile.Profile) terminal.Output {
	if len(p.Projects) == 0 {
		return terminal.Text("No projects listed.")
	}
	var b terminal.OutputBuilder
	for i, proj := range p.Projects {
		if i > 0 {
			b.Newline()
		}
		b.Accent(proj.Name)
		if proj.Year != 0 {
			b.Muted(fmt.Sprintf(" (%d)", proj.Year))
		}
		b.Newline()
		if proj.Description != "" {
			b.Text("  " + proj.Description).Newline()
		}
		if len(proj.Tech) > 0 {
			b.Muted("  tech: " + strings.Join(proj.Tech, ", ")).Newline()
		}
		if proj.URL != "" {
			b.Text("  ").Link(proj.URL).Newline()
		}
	}
	return b.Output()
}

func contact(p *profile.Profile) terminal.Output {
	rows := [][2]string{
		{"Email", p.Email},
		{"Website", p.Website},
		{"Location", p.Location},
	}
	var b terminal.OutputBuilder
	written := 0
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		b.Muted(fmt.Sprintf("%-9s", row[0]+":")).Text(" ")
		if row[0] == "Location" {
			b.Text(row[1])
		} else {
			b.Link(row[1])
		}
		b.Newline()
		written++
	}
	if written == 0 {
		return terminal.Text("No contact details listed.")
	}
	return b.Output()
}

func social(p *profile.Profile) terminal.Output {
	if len(p.Social) == 0 {
		return terminal.Text("No social links listed.")
	}
	width := 0
	for _, l := range p.Social {
		width = max(width, len(l.Name))
	}
	var b terminal.OutputBuilder
	for _, l := range p.Social {
		b.Accent(fmt.Sprintf("%-*s", width, l.Name)).Text("  ").Link(l.URL).Newline()
	}
	return b.Output()
}
