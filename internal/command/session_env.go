package command

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/joeycumines/folio/internal/config"
	"github.com/joeycumines/folio/internal/logging"
	"github.com/joeycumines/folio/internal/portfolio"
	"github.com/joeycumines/folio/internal/profile"
	"github.com/joeycumines/folio/internal/terminal"
	"github.com/joeycumines/folio/internal/termui"
)

// sessionFlags are shared by every command that runs the interpreter.
type sessionFlags struct {
	profilePath string
	logFile     string
	logLevel    string
}

func (f *sessionFlags) setup(fs *flag.FlagSet) {
	fs.StringVar(&f.profilePath, "profile", "", "Profile YAML file (overrides profile.file)")
	fs.StringVar(&f.logFile, "log-file", "", "Write JSON logs to this file (overrides log.file)")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides log.level)")
}

// sessionEnv is everything a front-end needs to build sessions.
type sessionEnv struct {
	cfg     *config.Config
	profile *profile.Profile
	logger  *slog.Logger
	closer  io.Closer
}

// open resolves logging and the profile. The caller must Close the result.
func (f *sessionFlags) open(cfg *config.Config) (*sessionEnv, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	logOpts, err := resolveLogConfig(f.logFile, f.logLevel, cfg)
	if err != nil {
		return nil, err
	}
	logger, closer, err := logging.New(logOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logOpts.File, err)
	}
	for _, w := range cfg.Warnings {
		logger.Warn("config warning", "warning", w)
	}

	p, source, err := loadProfile(f.profilePath, cfg)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	logger.Info("profile loaded", "source", source, "name", p.Name)

	return &sessionEnv{cfg: cfg, profile: p, logger: logger, closer: closer}, nil
}

func (r *sessionEnv) Close() error { return r.closer.Close() }

// loadProfile picks the profile from, in order: the flag, profile.file (or
// FOLIO_PROFILE), the profile written by `folio init`, the built-in
// default. It returns the profile and where it came from.
func loadProfile(flagPath string, cfg *config.Config) (*profile.Profile, string, error) {
	path := flagPath
	if path == "" {
		path = config.DefaultSchema().Resolve(cfg, config.KeyProfileFile)
	}
	if path == "" {
		if p, err := config.GetProfilePath(); err == nil {
			if _, err := os.Stat(p); err == nil {
				path = p
			}
		}
	}
	if path == "" {
		return profile.Default(), "builtin", nil
	}

	p, err := profile.Load(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, "", fmt.Errorf("profile %s: %w", path, err)
	}
	return p, path, nil
}

// sessionFactory returns a factory building a fresh registry and session
// on every call.
func (r *sessionEnv) sessionFactory(welcome bool) termui.SessionFactory {
	statics := make([]portfolio.Static, 0, len(r.cfg.Custom))
	for _, c := range r.cfg.Custom {
		statics = append(statics, portfolio.Static{Name: c.Name, Description: c.Description, Text: c.Text})
	}
	override := config.DefaultSchema().Resolve(r.cfg, config.KeyWelcome)

	return func() (*terminal.Session, error) {
		reg, err := portfolio.NewRegistry(r.profile, portfolio.Options{Static: statics})
		if err != nil {
			return nil, err
		}
		var opts []terminal.Option
		if welcome {
			opts = append(opts, terminal.WithWelcome(portfolio.Welcome(r.profile, override)))
		}
		return terminal.NewSession(reg, opts...), nil
	}
}

func (r *sessionEnv) prompt() string {
	return config.DefaultSchema().Resolve(r.cfg, config.KeyPrompt)
}

// resolveTheme builds the output theme from the color options. Color is
// disabled for color=never, and for color=auto when out is not a terminal.
func resolveTheme(cfg *config.Config, out io.Writer) termui.Theme {
	schema := config.DefaultSchema()
	switch schema.Resolve(cfg, config.KeyColor) {
	case "never":
		return termui.PlainTheme()
	case "always":
		lipgloss.SetColorProfile(termenv.TrueColor)
	default:
		if !IsTerminal(out) {
			return termui.PlainTheme()
		}
	}
	return termui.NewTheme(termui.Colors{
		Accent: schema.Resolve(cfg, config.KeyThemeAccent),
		Muted:  schema.Resolve(cfg, config.KeyThemeMuted),
		Link:   schema.Resolve(cfg, config.KeyThemeLink),
		Error:  schema.Resolve(cfg, config.KeyThemeError),
		Border: schema.Resolve(cfg, config.KeyThemeBorder),
	})
}

// IsTerminal reports whether w is a terminal file.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var errUnexpectedArgs = errors.New("unexpected arguments")
