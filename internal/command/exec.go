package command

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/joeycumines/folio/internal/config"
	"github.com/joeycumines/folio/internal/terminal"
	"github.com/joeycumines/folio/internal/termui"
)

// ExecCommand submits lines to a fresh session and prints the transcript.
type ExecCommand struct {
	*BaseCommand
	sessionFlags
	config    *config.Config
	asJSON    bool
	readStdin bool
	welcome   bool
	strict    bool
}

// NewExecCommand creates a new exec command.
func NewExecCommand(cfg *config.Config) *ExecCommand {
	return &ExecCommand{
		BaseCommand: NewBaseCommand(
			"exec",
			"Run terminal commands and print the transcript",
			"exec [options] [line...]",
		),
		config: cfg,
	}
}

// SetupFlags configures the flags for the exec command.
func (c *ExecCommand) SetupFlags(fs *flag.FlagSet) {
	c.sessionFlags.setup(fs)
	fs.BoolVar(&c.asJSON, "json", false, "Print the transcript as JSON (overrides [exec] format)")
	fs.BoolVar(&c.readStdin, "stdin", false, "Also read lines from standard input, one command per line")
	fs.BoolVar(&c.welcome, "welcome", false, "Include the welcome message")
	fs.BoolVar(&c.strict, "strict", false, "Fail when any line is not a known command")
}

type transcriptJSON struct {
	Session string      `json:"session"`
	History []string    `json:"history"`
	Entries []entryJSON `json:"entries"`
}

type entryJSON struct {
	Command  string        `json:"command,omitempty"`
	Output   string        `json:"output"`
	Segments []segmentJSON `json:"segments,omitempty"`
	Error    bool          `json:"error,omitempty"`
}

type segmentJSON struct {
	Text string `json:"text"`
	Role string `json:"role"`
}

// Execute runs each argument, then each stdin line when -stdin is set.
func (c *ExecCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 && !c.readStdin {
		_, _ = fmt.Fprintln(stderr, "Usage: folio "+c.Usage())
		return fmt.Errorf("no lines to execute")
	}
	format := "json"
	if !c.asJSON {
		format = config.DefaultSchema().ResolveFor(c.config, "exec", config.KeyExecFormat)
	}

	env, err := c.open(c.config)
	if err != nil {
		return err
	}
	defer env.Close()

	s, err := env.sessionFactory(c.welcome)()
	if err != nil {
		return err
	}
	for _, line := range args {
		s.Submit(line)
	}
	if c.readStdin {
		scanner := bufio.NewScanner(c.Stdin())
		for scanner.Scan() {
			s.Submit(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	switch format {
	case "json":
		err = writeTranscriptJSON(stdout, s)
	case "text", "":
		err = writeTranscriptText(stdout, resolveTheme(env.cfg, stdout), env.prompt(), s)
	default:
		return fmt.Errorf("unknown transcript format %q", format)
	}
	if err != nil {
		return err
	}

	if c.strict {
		failed := 0
		for _, e := range s.Transcript() {
			if e.IsError {
				failed++
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d line(s) failed", failed)
		}
	}
	return nil
}

func writeTranscriptText(w io.Writer, theme termui.Theme, prompt string, s *terminal.Session) error {
	text := termui.RenderTranscript(theme, prompt, s.Transcript())
	if text == "" {
		return nil
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func writeTranscriptJSON(w io.Writer, s *terminal.Session) error {
	doc := transcriptJSON{
		Session: s.ID(),
		History: s.History(),
		Entries: make([]entryJSON, 0, s.TranscriptLen()),
	}
	for _, e := range s.Transcript() {
		ej := entryJSON{Command: e.Command, Output: e.Output.String(), Error: e.IsError}
		for _, seg := range e.Output.Segments {
			ej.Segments = append(ej.Segments, segmentJSON{Text: seg.Text, Role: seg.Role.String()})
		}
		doc.Entries = append(doc.Entries, ej)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
