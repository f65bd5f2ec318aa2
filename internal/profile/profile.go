// Package profile holds the author data the portfolio commands render.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidProfile is wrapped by every error Validate returns.
var ErrInvalidProfile = errors.New("invalid profile")

// Profile describes the author shown by the terminal.
type Profile struct {
	Name         string       `yaml:"name"`
	Handle       string       `yaml:"handle,omitempty"`
	Role         string       `yaml:"role,omitempty"`
	Location     string       `yaml:"location,omitempty"`
	Bio          string       `yaml:"bio,omitempty"`
	Email        string       `yaml:"email,omitempty"`
	Website      string       `yaml:"website,omitempty"`
	Availability string       `yaml:"availability,omitempty"`
	Skills       []SkillGroup `yaml:"skills,omitempty"`
	Projects     []Project    `yaml:"projects,omitempty"`
	Social       []Link       `yaml:"social,omitempty"`
	Host         Host         `yaml:"host,omitempty"`
}

// SkillGroup is a named category of skills.
type SkillGroup struct {
	Category string   `yaml:"category"`
	Items    []string `yaml:"items"`
}

// Project is a portfolio entry.
type Project struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	URL         string   `yaml:"url,omitempty"`
	Tech        []string `yaml:"tech,omitempty"`
	Year        int      `yaml:"year,omitempty"`
}

// Link is a named external URL.
type Link struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Host is the decorative system information printed by neofetch.
type Host struct {
	OS     string `yaml:"os,omitempty"`
	Shell  string `yaml:"shell,omitempty"`
	Editor string `yaml:"editor,omitempty"`
	Uptime string `yaml:"uptime,omitempty"`
	Theme  string `yaml:"theme,omitempty"`
}

// DisplayHandle returns the handle, falling back to the lowercased first
// word of the name.
func (p *Profile) DisplayHandle() string {
	if p.Handle != "" {
		return p.Handle
	}
	if fields := strings.Fields(p.Name); len(fields) > 0 {
		return strings.ToLower(fields[0])
	}
	return "guest"
}

// Load reads a profile from a YAML file. Unknown keys are rejected so typos
// surface instead of silently dropping data.
//
// Symlinks are rejected, as for the config file.
func Load(path string) (*Profile, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat profile: %w", err)
	}
	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("symlink not allowed in profile path: %s", path)
	}

	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer file.Close()

	p, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Decode parses a YAML profile from r.
func Decode(r io.Reader) (*Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidProfile)
		}
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &p, nil
}

// Encode writes p as YAML.
func (p *Profile) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return enc.Close()
}

// Validate checks the profile for problems the commands cannot render
// around. All problems are reported together.
func (p *Profile) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if p.Email != "" && !strings.Contains(p.Email, "@") {
		errs = append(errs, fmt.Errorf("email %q is not an address", p.Email))
	}
	if err := checkURL("website", p.Website); err != nil {
		errs = append(errs, err)
	}

	for i, g := range p.Skills {
		if strings.TrimSpace(g.Category) == "" {
			errs = append(errs, fmt.Errorf("skills[%d]: category is required", i))
		}
		if len(g.Items) == 0 {
			errs = append(errs, fmt.Errorf("skills[%d] %q: no items", i, g.Category))
		}
	}

	seen := make(map[string]bool, len(p.Projects))
	for i, proj := range p.Projects {
		key := strings.ToLower(strings.TrimSpace(proj.Name))
		if key == "" {
			errs = append(errs, fmt.Errorf("projects[%d]: name is required", i))
			continue
		}
		if seen[key] {
			errs = append(errs, fmt.Errorf("projects[%d]: duplicate project %q", i, proj.Name))
		}
		seen[key] = true
		if err := checkURL(fmt.Sprintf("projects[%d].url", i), proj.URL); err != nil {
			errs = append(errs, err)
		}
	}

	for i, l := range p.Social {
		if strings.TrimSpace(l.Name) == "" {
			errs = append(errs, fmt.Errorf("social[%d]: name is required", i))
		}
		if l.URL == "" {
			errs = append(errs, fmt.Errorf("social[%d]: url is required", i))
		} else if err := checkURL(fmt.Sprintf("social[%d].url", i), l.URL); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidProfile, errors.Join(errs...))
}

func checkURL(field, raw string) error {
	if raw == "" {
		return nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.Scheme == "" || u.Host == "" {
		if u.Scheme != "mailto" {
			return fmt.Errorf("%s: %q is not an absolute URL", field, raw)
		}
	}
	return nil
}

// Default returns the profile used when none is configured.
func Default() *Profile {
	return &Profile{
		Name:         "Alex Doe",
		Handle:       "alex",
		Role:         "Software Engineer",
		Location:     "Remote",
		Bio:          "I build terminals, tools and the occasional website.\nThis one is a terminal pretending to be a website pretending to be a terminal.",
		Email:        "alex@example.com",
		Website:      "https://example.com",
		Availability: "Open to interesting problems",
		Skills: []SkillGroup{
			{Category: "languages", Items: []string{"Go", "TypeScript", "SQL"}},
			{Category: "infrastructure", Items: []string{"Linux", "Docker", "Kubernetes"}},
			{Category: "tools", Items: []string{"Git", "Vim", "tmux"}},
		},
		Projects: []Project{
			{
				Name:        "folio",
				Description: "A portfolio you can type at.",
				URL:         "https://example.com/folio",
				Tech:        []string{"Go", "Bubble Tea"},
				Year:        2026,
			},
			{
				Name:        "tidy-logs",
				Description: "Log shipper that knows when to stop.",
				Tech:        []string{"Go"},
				Year:        2025,
			},
		},
		Social: []Link{
			{Name: "GitHub", URL: "https://github.com/example"},
			{Name: "Mastodon", URL: "https://mastodon.social/@example"},
		},
		Host: Host{
			OS:     "folio/linux",
			Shell:  "fsh",
			Editor: "vim",
			Uptime: "always",
			Theme:  "phosphor",
		},
	}
}

const sampleHeader = `# folio profile
#
# Every field except name is optional. Commands skip what is left empty:
# whoami/about use name, handle, role, location, bio and availability;
# skills, projects, contact and social use their sections; neofetch reads
# the host block.
`

// Sample returns a commented YAML document built from Default, suitable as
// a starting point for a user profile.
func Sample() []byte {
	var buf bytes.Buffer
	buf.WriteString(sampleHeader)
	// Default always encodes.
	_ = Default().Encode(&buf)
	return buf.Bytes()
}
