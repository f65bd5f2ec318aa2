package command

import (
	"flag"
	"fmt"
	"io"

	"github.com/joeycumines/folio/internal/config"
	"github.com/joeycumines/folio/internal/termui"
)

// TerminalCommand opens the full-screen terminal widget.
type TerminalCommand struct {
	*BaseCommand
	sessionFlags
	config *config.Config
	height int
	closed bool
}

// NewTerminalCommand creates a new terminal command.
func NewTerminalCommand(cfg *config.Config) *TerminalCommand {
	return &TerminalCommand{
		BaseCommand: NewBaseCommand(
			"terminal",
			"Open the portfolio terminal (full screen)",
			"terminal [options]",
		),
		config: cfg,
		height: -1,
	}
}

// SetupFlags configures the flags for the terminal command.
func (c *TerminalCommand) SetupFlags(fs *flag.FlagSet) {
	c.sessionFlags.setup(fs)
	fs.IntVar(&c.height, "height", -1, "Widget height in rows, 0 for the full window (overrides [terminal] height)")
	fs.BoolVar(&c.closed, "closed", false, "Start with the terminal closed; press ` to open it")
}

// options resolves the widget options from flags and config.
func (c *TerminalCommand) options(env *sessionEnv, stdout io.Writer) (termui.Options, error) {
	height := c.height
	if height < 0 {
		h, err := config.DefaultSchema().ResolveInt(env.cfg, "terminal", config.KeyTerminalHeight)
		if err != nil {
			return termui.Options{}, err
		}
		height = max(h, 0)
	}
	scrollbar, err := config.DefaultSchema().ResolveBool(env.cfg, "terminal", config.KeyScrollbar)
	if err != nil {
		return termui.Options{}, err
	}
	return termui.Options{
		Prompt:    env.prompt(),
		Theme:     resolveTheme(env.cfg, stdout),
		Height:    height,
		Scrollbar: scrollbar,
	}, nil
}

// Execute runs the terminal until the user quits.
func (c *TerminalCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 {
		_, _ = fmt.Fprintf(stderr, "unexpected arguments: %v\n", args)
		return errUnexpectedArgs
	}
	env, err := c.open(c.config)
	if err != nil {
		return err
	}
	defer env.Close()

	opts, err := c.options(env, stdout)
	if err != nil {
		return err
	}
	app, err := termui.NewApp(env.sessionFactory(true), opts, env.logger, !c.closed)
	if err != nil {
		return err
	}
	return termui.Run(app, c.Stdin(), stdout)
}
