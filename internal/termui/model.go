package termui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joeycumines/folio/internal/terminal"
	"github.com/joeycumines/folio/internal/termui/scrollbar"
)

// Options configures the widget.
type Options struct {
	Prompt string
	Theme  Theme
	// Height caps the widget height in rows; 0 uses the whole window.
	Height    int
	Scrollbar bool
}

// Model is the terminal widget: a transcript viewport above an input line,
// bound to one session. Keystrokes are translated into terminal.Events;
// the input buffer lives in the session and is mirrored into the text input
// around every event.
type Model struct {
	session  *terminal.Session
	opts     Options
	input    textinput.Model
	viewport viewport.Model
	bar      scrollbar.Bar

	width, height int
	rendered      uint64
	stale         bool
}

// NewModel returns a focused widget for s.
func NewModel(s *terminal.Session, opts Options) Model {
	in := textinput.New()
	in.Prompt = opts.Prompt + " "
	in.PromptStyle = opts.Theme.Prompt
	in.Focus()

	m := Model{
		session:  s,
		opts:     opts,
		input:    in,
		viewport: viewport.New(0, 0),
		bar:      scrollbar.New(opts.Theme.Accent, opts.Theme.Border),
		stale:    true,
	}
	m.bar.HideIdle = true
	m.syncInput()
	m.refresh()
	return m
}

// Session returns the bound session.
func (m Model) Session() *terminal.Session { return m.session }

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles a message. Enter, the arrow keys and Tab are routed to the
// session; page keys and the mouse scroll the transcript; everything else
// edits the input line.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEnter:
			m.session.SetInput(m.input.Value())
			m.session.OnSubmit(m.input.Value())
			m.syncInput()
		case tea.KeyUp:
			m.session.SetInput(m.input.Value())
			m.session.OnArrow(terminal.Up)
			m.syncInput()
		case tea.KeyDown:
			m.session.SetInput(m.input.Value())
			m.session.OnArrow(terminal.Down)
			m.syncInput()
		case tea.KeyTab:
			m.session.SetInput(m.input.Value())
			m.session.OnTab()
			m.syncInput()
		case tea.KeyPgUp, tea.KeyPgDown:
			m.viewport, cmd = m.viewport.Update(msg)
		default:
			m.input, cmd = m.input.Update(msg)
		}
	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
	default:
		m.input, cmd = m.input.Update(msg)
	}
	m.refresh()
	return m, cmd
}

func (m *Model) syncInput() {
	m.input.SetValue(m.session.Input())
	m.input.CursorEnd()
}

// refresh re-renders the transcript when it changed and pins the view to
// the newest entry.
func (m *Model) refresh() {
	rev := m.session.Revision()
	if !m.stale && rev == m.rendered {
		return
	}
	m.viewport.SetContent(RenderTranscript(m.opts.Theme, m.opts.Prompt, m.session.Transcript()))
	m.viewport.GotoBottom()
	m.rendered = rev
	m.stale = false
}

// SetSize lays the widget out in a w by h cell area.
func (m *Model) SetSize(w, h int) {
	if m.opts.Height > 0 {
		h = min(h, m.opts.Height)
	}
	m.width, m.height = w, h

	frameW, frameH := m.opts.Theme.Frame.GetFrameSize()
	innerW := max(w-frameW, 1)
	innerH := max(h-frameH, 2)

	vpW := innerW
	if m.opts.Scrollbar {
		vpW = max(innerW-1, 1)
	}
	m.viewport.Width = vpW
	m.viewport.Height = innerH - 1
	m.input.Width = max(innerW-lipgloss.Width(m.input.Prompt)-1, 1)
	m.stale = true
	m.refresh()
}

// View renders the widget.
func (m Model) View() string {
	body := m.viewport.View()
	if m.opts.Scrollbar {
		gutter := m.bar.Render(scrollbar.ForViewport(m.viewport))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, gutter)
	}
	content := lipgloss.JoinVertical(lipgloss.Left, body, m.input.View())
	if m.width == 0 {
		return content
	}
	frameW, _ := m.opts.Theme.Frame.GetFrameSize()
	return m.opts.Theme.Frame.Width(m.width - frameW).Render(content)
}
