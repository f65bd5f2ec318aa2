package command

import (
	"flag"
	"io"
	"os"
)

// Command is a folio subcommand.
type Command interface {
	Name() string
	Description() string
	// Usage is the one-line synopsis shown by help, without the program name.
	Usage() string

	// SetupFlags registers the command's flags on fs before parsing.
	SetupFlags(fs *flag.FlagSet)

	// Execute runs the command with the positional arguments left after
	// flag parsing.
	Execute(args []string, stdout, stderr io.Writer) error
}

// BaseCommand implements the descriptive half of Command. Commands embed it
// and provide Execute.
type BaseCommand struct {
	name        string
	description string
	usage       string
	stdin       io.Reader
}

// NewBaseCommand creates a new BaseCommand reading from os.Stdin.
func NewBaseCommand(name, description, usage string) *BaseCommand {
	return &BaseCommand{
		name:        name,
		description: description,
		usage:       usage,
		stdin:       os.Stdin,
	}
}

func (c *BaseCommand) Name() string        { return c.name }
func (c *BaseCommand) Description() string { return c.description }
func (c *BaseCommand) Usage() string       { return c.usage }

// SetupFlags registers nothing.
func (c *BaseCommand) SetupFlags(fs *flag.FlagSet) {}

// SetStdin replaces the reader used by commands that consume input.
func (c *BaseCommand) SetStdin(r io.Reader) { c.stdin = r }

// Stdin returns the command's input.
func (c *BaseCommand) Stdin() io.Reader { return c.stdin }
