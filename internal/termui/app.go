package termui

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joeycumines/folio/internal/terminal"
)

// ToggleKey opens and closes the terminal.
const ToggleKey = "`"

// SessionFactory builds the session for a newly opened terminal.
type SessionFactory func() (*terminal.Session, error)

// App is the global shortcut layer around the widget. Opening the terminal
// mounts a fresh session; closing it unmounts the widget and drops the
// session with all of its history and transcript.
type App struct {
	newSession SessionFactory
	opts       Options
	logger     *slog.Logger

	widget        *Model
	width, height int
	err           error
}

// NewApp returns an App that starts open when open is true.
func NewApp(factory SessionFactory, opts Options, logger *slog.Logger, open bool) (*App, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &App{newSession: factory, opts: opts, logger: logger}
	if open {
		if err := a.mount(); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Open reports whether the terminal is mounted.
func (a *App) Open() bool { return a.widget != nil }

// Session returns the mounted session, or nil when closed.
func (a *App) Session() *terminal.Session {
	if a.widget == nil {
		return nil
	}
	return a.widget.Session()
}

// Err returns the error that stopped the program, if any.
func (a *App) Err() error { return a.err }

func (a *App) mount() error {
	s, err := a.newSession()
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	m := NewModel(s, a.opts)
	if a.width > 0 {
		m.SetSize(a.width, a.height)
	}
	a.widget = &m
	a.logger.Info("session mounted", "session", s.ID(), "commands", s.Registry().Len())
	return nil
}

func (a *App) unmount() {
	if a.widget == nil {
		return
	}
	s := a.widget.Session()
	a.logger.Info("session unmounted",
		"session", s.ID(),
		"entries", s.TranscriptLen(),
		"history", len(s.History()))
	a.widget = nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	if a.widget != nil {
		return a.widget.Init()
	}
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			a.unmount()
			return a, tea.Quit
		case ToggleKey:
			if a.widget != nil {
				a.unmount()
				return a, nil
			}
			if err := a.mount(); err != nil {
				a.err = err
				return a, tea.Quit
			}
			return a, a.widget.Init()
		case "esc":
			if a.widget != nil {
				a.unmount()
				return a, nil
			}
			return a, tea.Quit
		case "q":
			if a.widget == nil {
				return a, tea.Quit
			}
		}
	}

	if a.widget == nil {
		return a, nil
	}
	m, cmd := a.widget.Update(msg)
	a.widget = &m
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if a.widget != nil {
		return a.widget.View()
	}
	hint := a.opts.Theme.Muted.Render("Press ") +
		a.opts.Theme.Accent.Render(ToggleKey) +
		a.opts.Theme.Muted.Render(" to open the terminal, q to quit.")
	if a.width == 0 {
		return hint
	}
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, hint)
}

// Run drives the app as a full-screen program on in and out.
func Run(a *App, in io.Reader, out io.Writer) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
	if in != nil {
		opts = append(opts, tea.WithInput(in))
	}
	if out != nil {
		opts = append(opts, tea.WithOutput(out))
	}
	if _, err := tea.NewProgram(a, opts...).Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := a.Err(); err != nil {
		return err
	}
	a.unmount()
	return nil
}
