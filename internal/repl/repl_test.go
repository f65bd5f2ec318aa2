package repl

import (
	"bytes"
	"testing"

	"github.com/joeycumines/folio/internal/terminal"
	"github.com/joeycumines/folio/internal/termui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newREPL(t *testing.T) (*REPL, *bytes.Buffer) {
	t.Helper()
	r, err := terminal.NewRegistry(
		terminal.CommandSpec{Name: "whoami", Description: "Who", Action: func() terminal.Output { return terminal.Text("alex") }},
		terminal.CommandSpec{Name: "help", Description: "Help", Action: func() terminal.Output { return terminal.Text("commands") }},
		terminal.CommandSpec{Name: "hello", Description: "Hi", Action: func() terminal.Output { return terminal.Text("hi") }},
	)
	require.NoError(t, err)
	s := terminal.NewSession(r, terminal.WithWelcome(terminal.Text("Welcome!")))
	var out bytes.Buffer
	return New(s, &out, Options{Prompt: "$", Theme: termui.PlainTheme()}), &out
}

func TestExecutePrintsNewEntries(t *testing.T) {
	t.Parallel()
	r, out := newREPL(t)

	r.Flush()
	assert.Equal(t, "Welcome!\n", out.String())

	out.Reset()
	r.Execute("whoami")
	assert.Equal(t, "alex\n", out.String())

	out.Reset()
	r.Execute("   ")
	assert.Empty(t, out.String())

	r.Execute("nope")
	assert.Equal(t, "Command not found: nope. Type 'help' for available commands.\n", out.String())
}

func TestExecuteClear(t *testing.T) {
	t.Parallel()
	r, out := newREPL(t)
	r.Flush()
	r.Execute("whoami")

	out.Reset()
	r.Execute("clear")
	assert.Equal(t, clearScreen, out.String())

	out.Reset()
	r.Execute("echo again")
	assert.Equal(t, "again\n", out.String())
	assert.Equal(t, []string{"whoami", "echo again"}, r.session.History())
}

func TestExecuteIgnoresExit(t *testing.T) {
	t.Parallel()
	r, out := newREPL(t)
	r.Flush()
	out.Reset()

	r.Execute("exit")
	r.Execute(" QUIT ")
	assert.Empty(t, out.String())
	assert.Empty(t, r.session.History())
}

func TestSuggestionsFor(t *testing.T) {
	t.Parallel()
	r, _ := newREPL(t)
	reg := r.session.Registry()

	got := suggestionsFor(reg, "he")
	require.Len(t, got, 2)
	assert.Equal(t, "hello", got[0].Text)
	assert.Equal(t, "Hi", got[0].Description)
	assert.Equal(t, "help", got[1].Text)

	assert.Len(t, suggestionsFor(reg, "  WH"), 1)
	assert.Nil(t, suggestionsFor(reg, ""))
	assert.Nil(t, suggestionsFor(reg, "echo he"))
	assert.Nil(t, suggestionsFor(reg, "xyz"))
}
