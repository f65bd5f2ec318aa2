package command

import (
	"flag"
	"fmt"
	"io"

	"github.com/joeycumines/folio/internal/config"
	"github.com/joeycumines/folio/internal/repl"
)

// PromptCommand runs the line-mode REPL.
type PromptCommand struct {
	*BaseCommand
	sessionFlags
	config *config.Config
}

// NewPromptCommand creates a new prompt command.
func NewPromptCommand(cfg *config.Config) *PromptCommand {
	return &PromptCommand{
		BaseCommand: NewBaseCommand(
			"prompt",
			"Talk to the portfolio terminal line by line",
			"prompt [options]",
		),
		config: cfg,
	}
}

// SetupFlags configures the flags for the prompt command.
func (c *PromptCommand) SetupFlags(fs *flag.FlagSet) {
	c.sessionFlags.setup(fs)
}

// Execute reads lines until exit, quit or EOF.
func (c *PromptCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
		return errUnexpectedArgs
	}
	env, err := c.open(c.config)
	if err != nil {
		return err
	}
	defer env.Close()

	s, err := env.sessionFactory(true)()
	if err != nil {
		return err
	}
	env.logger.Info("session mounted", "session", s.ID(), "commands", s.Registry().Len())

	r := repl.New(s, stdout, repl.Options{
		Prompt: env.prompt(),
		Title:  config.DefaultSchema().ResolveFor(env.cfg, "prompt", config.KeyPromptTitle),
		Theme:  resolveTheme(env.cfg, stdout),
	})
	r.Run()

	env.logger.Info("session unmounted",
		"session", s.ID(),
		"entries", s.TranscriptLen(),
		"history", len(s.History()))
	return nil
}
