// Package portfolio builds the terminal's command registry from an author
// profile.
package portfolio

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/joeycumines/folio/internal/profile"
	"github.com/joeycumines/folio/internal/terminal"
)

// Static is a user-defined command that prints fixed text.
type Static struct {
	Name        string
	Description string
	Text        string
}

// Options configures NewRegistry.
type Options struct {
	// Clock supplies the time for the date command. Defaults to time.Now.
	Clock func() time.Time
	// Static commands are registered after the catalog. Reusing a catalog
	// name is an error.
	Static []Static
}

// NewRegistry returns a registry holding the portfolio commands for p plus
// opts.Static.
func NewRegistry(p *profile.Profile, opts Options) (*terminal.Registry, error) {
	if p == nil {
		p = profile.Default()
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	r, err := terminal.NewRegistry()
	if err != nil {
		return nil, err
	}

	specs := []terminal.CommandSpec{
		{Name: "help", Description: "List available commands", Action: func() terminal.Output { return helpOutput(r) }},
		{Name: "whoami", Description: "Who is behind this terminal", Action: func() terminal.Output { return whoami(p) }},
		{Name: "about", Description: "A short bio", Action: func() terminal.Output { return about(p) }},
		{Name: "skills", Description: "Skills by category", Action: func() terminal.Output { return skills(p) }},
		{Name: "projects", Description: "Selected projects", Action: func() terminal.Output { return projects(p) }},
		{Name: "contact", Description: "How to get in touch", Action: func() terminal.Output { return contact(p) }},
		{Name: "social", Description: "Social links", Action: func() terminal.Output { return social(p) }},
		{Name: "date", Description: "Show the current date and time", Action: func() terminal.Output { return date(clock) }},
		{Name: "neofetch", Description: "System information", Action: func() terminal.Output { return neofetch(p) }},
		{Name: "matrix", Description: "Follow the white rabbit", Action: func() terminal.Output { return matrix(p) }},
	}
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			return nil, err
		}
	}

	for _, s := range opts.Static {
		text := s.Text
		desc := s.Description
		if desc == "" {
			desc = "Custom command"
		}
		err := r.Register(terminal.CommandSpec{
			Name:        strings.ToLower(s.Name),
			Description: desc,
			Action:      func() terminal.Output { return terminal.Text(text) },
		})
		if err != nil {
			return nil, fmt.Errorf("static command %q: %w", s.Name, err)
		}
	}

	return r, nil
}

// Welcome returns the first transcript entry of a session. A non-empty
// override replaces the default greeting; a literal \n in it becomes a line
// break.
func Welcome(p *profile.Profile, override string) terminal.Output {
	if override != "" {
		return terminal.Text(strings.ReplaceAll(override, `\n`, "\n"))
	}
	if p == nil {
		p = profile.Default()
	}
	var b terminal.OutputBuilder
	b.Text("Welcome to ").Accent(p.Name).Text("'s portfolio terminal.").Newline()
	b.Text("Type ").Accent("help").Text(" to see available commands.")
	return b.Output()
}

func helpOutput(r *terminal.Registry) terminal.Output {
	all := append(r.Specs(), terminal.Builtins...)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	width := 0
	for _, spec := range all {
		width = max(width, len(spec.Name))
	}

	var b terminal.OutputBuilder
	b.Text("Available commands:").Newline()
	for _, spec := range all {
		b.Text("  ").Accent(fmt.Sprintf("%-*s", width, spec.Name)).Text("  ").Muted(spec.Description).Newline()
	}
	return b.Output()
}

func date(clock func() time.Time) terminal.Output {
	return terminal.Text(clock().Format(time.RFC1123))
}
