// Package terminal implements the portfolio terminal's command interpreter:
// the command registry, the line executor, history recall, autocomplete and
// the transcript. It has no rendering concerns; front-ends drive a Session
// through the Events interface and read back its input buffer and
// transcript.
package terminal

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Direction is an arrow-key direction used for history recall.
type Direction int

const (
	Up Direction = iota
	Down
)

// Events is the input event source a front-end translates keystrokes into.
type Events interface {
	// OnSubmit executes text as a submitted line.
	OnSubmit(text string)
	// OnArrow recalls history into the input buffer.
	OnArrow(dir Direction)
	// OnTab completes the input buffer against the registry.
	OnTab()
}

// Outcome describes what a submission did to the transcript.
type Outcome int

const (
	// OutcomeIgnored means the line was blank and nothing changed.
	OutcomeIgnored Outcome = iota
	// OutcomeCleared means the transcript was emptied.
	OutcomeCleared
	// OutcomeAppended means one entry was appended to the transcript.
	OutcomeAppended
)

// Session holds the state of one mounted terminal: its input buffer,
// history and transcript. A Session is not safe for concurrent use; it is
// meant to be driven from a single UI goroutine.
type Session struct {
	id         string
	registry   *Registry
	history    *History
	transcript *Transcript
	input      string
}

// Option configures a Session.
type Option func(*Session)

// WithWelcome appends out as a system entry when the session starts.
func WithWelcome(out Output) Option {
	return func(s *Session) {
		if !out.IsEmpty() {
			s.transcript.Append(Entry{Output: out})
		}
	}
}

// WithID overrides the generated session ID.
func WithID(id string) Option {
	return func(s *Session) {
		s.id = id
	}
}

// NewSession starts a session dispatching to registry.
func NewSession(registry *Registry, opts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		registry:   registry,
		history:    NewHistory(),
		transcript: &Transcript{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Registry returns the registry the session dispatches to.
func (s *Session) Registry() *Registry { return s.registry }

// Input returns the input buffer.
func (s *Session) Input() string { return s.input }

// SetInput replaces the input buffer, as the user typing would.
func (s *Session) SetInput(text string) { s.input = text }

// Transcript returns the transcript entries in order.
func (s *Session) Transcript() []Entry { return s.transcript.Entries() }

// TranscriptLen returns the number of transcript entries.
func (s *Session) TranscriptLen() int { return s.transcript.Len() }

// TranscriptSince returns the transcript entries from index i onwards.
func (s *Session) TranscriptSince(i int) []Entry { return s.transcript.Since(i) }

// Revision changes whenever the transcript changes.
func (s *Session) Revision() uint64 { return s.transcript.Revision() }

// History returns the submitted lines, oldest first.
func (s *Session) History() []string { return s.history.Entries() }

// HistoryCursor returns the recall cursor, -1 when not navigating.
func (s *Session) HistoryCursor() int { return s.history.Cursor() }

// Submit executes raw as one line.
//
// Matching is done on the lowercased, trimmed line while the transcript
// keeps the line as typed. Blank lines are ignored and leave the input
// buffer alone; any other line empties it.
func (s *Session) Submit(raw string) Outcome {
	line := strings.ToLower(strings.TrimSpace(raw))
	if line == "" {
		return OutcomeIgnored
	}

	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]
	s.input = ""

	// clear is not recorded, so recall after clearing lands on the last
	// real command
	if name == BuiltinClear {
		s.transcript.Clear()
		s.history.ResetCursor()
		return OutcomeCleared
	}

	// history renders what was recorded before this line
	previous := s.history.Entries()
	s.history.Append(line)

	var out Output
	isError := false
	switch name {
	case BuiltinHistory:
		out = renderHistory(previous)
	case BuiltinEcho:
		out = Text(strings.Join(args, " "))
	default:
		if spec, ok := s.registry.Lookup(name); ok {
			out = spec.Action()
		} else {
			out = ErrorText(unknownCommand(name))
			isError = true
		}
	}

	s.transcript.Append(Entry{
		Command: strings.TrimSpace(raw),
		Output:  out,
		IsError: isError,
	})
	return OutcomeAppended
}

func unknownCommand(name string) string {
	return fmt.Sprintf("Command not found: %s. Type 'help' for available commands.", name)
}

func renderHistory(lines []string) Output {
	if len(lines) == 0 {
		return Text("No commands in history.")
	}
	var b OutputBuilder
	width := len(fmt.Sprint(len(lines)))
	for i, line := range lines {
		b.Muted(fmt.Sprintf("%*d", width, i+1)).Text("  " + line).Newline()
	}
	return b.Output()
}

// Recall moves through history in dir and updates the input buffer.
func (s *Session) Recall(dir Direction) {
	switch dir {
	case Up:
		if line, ok := s.history.Older(); ok {
			s.input = line
		}
	case Down:
		if line, ok := s.history.Newer(); ok {
			s.input = line
		} else {
			s.input = ""
		}
	}
}

// Complete autocompletes the input buffer against the registry and returns
// the matching names. A single match replaces the input; several matches are
// listed in the transcript as a system entry and the input is kept.
func (s *Session) Complete() []string {
	matches := s.registry.Complete(s.input)
	switch len(matches) {
	case 0:
	case 1:
		s.input = matches[0]
	default:
		s.transcript.Append(Entry{Output: Text(strings.Join(matches, "  "))})
	}
	return matches
}

// OnSubmit implements Events.
func (s *Session) OnSubmit(text string) { s.Submit(text) }

// OnArrow implements Events.
func (s *Session) OnArrow(dir Direction) { s.Recall(dir) }

// OnTab implements Events.
func (s *Session) OnTab() { s.Complete() }

var _ Events = (*Session)(nil)
