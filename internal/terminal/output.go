package terminal

import (
	"strings"
)

// Role classifies a run of output text for presentation. Front-ends map roles
// to colors; plain renderers ignore them.
type Role int

const (
	RoleText Role = iota
	RoleAccent
	RoleMuted
	RoleLink
	RoleError
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleText:
		return "text"
	case RoleAccent:
		return "accent"
	case RoleMuted:
		return "muted"
	case RoleLink:
		return "link"
	case RoleError:
		return "error"
	default:
		return "unknown"
	}
}

// Segment is a run of text sharing a single role.
type Segment struct {
	Text string
	Role Role
}

// Output is the result of running a command: an ordered list of segments.
// The zero value is empty output.
type Output struct {
	Segments []Segment
}

// Text returns output made of a single plain segment.
func Text(s string) Output {
	if s == "" {
		return Output{}
	}
	return Output{Segments: []Segment{{Text: s, Role: RoleText}}}
}

// ErrorText returns output made of a single error segment.
func ErrorText(s string) Output {
	if s == "" {
		return Output{}
	}
	return Output{Segments: []Segment{{Text: s, Role: RoleError}}}
}

// String returns the plain text of the output, without any markup.
func (o Output) String() string {
	switch len(o.Segments) {
	case 0:
		return ""
	case 1:
		return o.Segments[0].Text
	}
	var b strings.Builder
	for _, seg := range o.Segments {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// IsEmpty reports whether the output has no text.
func (o Output) IsEmpty() bool {
	for _, seg := range o.Segments {
		if seg.Text != "" {
			return false
		}
	}
	return true
}

// OutputBuilder accumulates segments. Adjacent writes with the same role are
// merged into one segment.
type OutputBuilder struct {
	segments []Segment
}

// Write appends s with the given role.
func (b *OutputBuilder) Write(role Role, s string) *OutputBuilder {
	if s == "" {
		return b
	}
	if n := len(b.segments); n > 0 && b.segments[n-1].Role == role {
		b.segments[n-1].Text += s
		return b
	}
	b.segments = append(b.segments, Segment{Text: s, Role: role})
	return b
}

func (b *OutputBuilder) Text(s string) *OutputBuilder   { return b.Write(RoleText, s) }
func (b *OutputBuilder) Accent(s string) *OutputBuilder { return b.Write(RoleAccent, s) }
func (b *OutputBuilder) Muted(s string) *OutputBuilder  { return b.Write(RoleMuted, s) }
func (b *OutputBuilder) Link(s string) *OutputBuilder   { return b.Write(RoleLink, s) }

// Newline appends a line break as plain text.
func (b *OutputBuilder) Newline() *OutputBuilder { return b.Write(RoleText, "\n") }

// Output returns the accumulated output, with trailing line breaks removed.
func (b *OutputBuilder) Output() Output {
	segs := make([]Segment, len(b.segments))
	copy(segs, b.segments)
	for len(segs) > 0 {
		last := &segs[len(segs)-1]
		last.Text = strings.TrimRight(last.Text, "\n")
		if last.Text != "" {
			break
		}
		segs = segs[:len(segs)-1]
	}
	if len(segs) == 0 {
		return Output{}
	}
	return Output{Segments: segs}
}
