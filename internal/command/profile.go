package command

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/joeycumines/folio/internal/config"
	"github.com/joeycumines/folio/internal/profile"
)

// ProfileCommand inspects the profile the terminal presents.
type ProfileCommand struct {
	*BaseCommand
	config      *config.Config
	profilePath string
}

// NewProfileCommand creates a new profile command.
func NewProfileCommand(cfg *config.Config) *ProfileCommand {
	return &ProfileCommand{
		BaseCommand: NewBaseCommand(
			"profile",
			"Show, validate or locate the portfolio profile",
			"profile [options] <show|validate|path> [file]",
		),
		config: cfg,
	}
}

// SetupFlags configures the flags for the profile command.
func (c *ProfileCommand) SetupFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.profilePath, "profile", "", "Profile YAML file (overrides profile.file)")
}

// Execute runs the subcommand.
func (c *ProfileCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		_, _ = fmt.Fprintln(stdout, "Profile management:")
		_, _ = fmt.Fprintln(stdout, "  profile show             - Print the profile as YAML")
		_, _ = fmt.Fprintln(stdout, "  profile validate [file]  - Check a profile for problems")
		_, _ = fmt.Fprintln(stdout, "  profile path             - Print where the profile is loaded from")
		return nil
	}

	switch args[0] {
	case "show":
		if len(args) > 1 {
			return errUnexpectedArgs
		}
		p, _, err := loadProfile(c.profilePath, c.config)
		if err != nil {
			return err
		}
		return p.Encode(stdout)

	case "path":
		if len(args) > 1 {
			return errUnexpectedArgs
		}
		_, source, err := loadProfile(c.profilePath, c.config)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(stdout, source)
		return nil

	case "validate":
		if len(args) > 2 {
			return errUnexpectedArgs
		}
		path := c.profilePath
		if len(args) == 2 {
			path = args[1]
		}
		var err error
		if path != "" {
			var p *profile.Profile
			if p, err = profile.Load(path); err == nil {
				err = p.Validate()
			}
		} else {
			_, _, err = loadProfile("", c.config)
		}
		if errors.Is(err, profile.ErrInvalidProfile) {
			_, _ = fmt.Fprintln(stdout, err)
			return errors.New("profile is invalid")
		}
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(stdout, "Profile is valid.")
		return nil
	}

	_, _ = fmt.Fprintf(stderr, "Unknown profile subcommand: %s\n", args[0])
	return fmt.Errorf("unknown subcommand: %s", args[0])
}
