// Package repl is the line-mode front-end of the portfolio terminal, built on
// go-prompt.
package repl

import (
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	prompt "github.com/joeycumines/go-prompt"
	istrings "github.com/joeycumines/go-prompt/strings"

	"github.com/joeycumines/folio/internal/terminal"
	"github.com/joeycumines/folio/internal/termui"
)

// clearScreen homes the cursor and erases the display.
const clearScreen = "\x1b[H\x1b[2J"

// Options configures a REPL.
type Options struct {
	Prompt string
	Title  string
	Theme  termui.Theme
}

// REPL feeds lines read by go-prompt into a session and prints the output
// of every entry the session appends.
type REPL struct {
	session *terminal.Session
	out     io.Writer
	opts    Options
	printed int
}

// New returns a REPL for s writing to out.
func New(s *terminal.Session, out io.Writer, opts Options) *REPL {
	return &REPL{session: s, out: out, opts: opts}
}

// Flush prints the entries appended since the last call.
func (r *REPL) Flush() {
	for _, e := range r.session.TranscriptSince(r.printed) {
		// go-prompt already echoed the command line
		if text := termui.RenderOutput(r.opts.Theme, e.Output); text != "" {
			fmt.Fprintln(r.out, text)
		}
	}
	r.printed = r.session.TranscriptLen()
}

// Execute submits line and prints the result. It is the go-prompt executor.
func (r *REPL) Execute(line string) {
	if isExit(line) {
		return
	}
	switch r.session.Submit(line) {
	case terminal.OutcomeCleared:
		io.WriteString(r.out, clearScreen)
		r.printed = 0
	case terminal.OutcomeAppended:
		r.Flush()
	}
}

// Complete suggests registry commands for the first word of the line.
func (r *REPL) Complete(d prompt.Document) ([]prompt.Suggest, istrings.RuneNumber, istrings.RuneNumber) {
	before := d.TextBeforeCursor()
	word := strings.TrimLeftFunc(before, unicode.IsSpace)
	end := istrings.RuneNumber(utf8.RuneCountInString(before))
	start := end - istrings.RuneNumber(utf8.RuneCountInString(word))
	return suggestionsFor(r.session.Registry(), before), start, end
}

func suggestionsFor(reg *terminal.Registry, before string) []prompt.Suggest {
	word := strings.TrimLeftFunc(before, unicode.IsSpace)
	if word == "" || strings.IndexFunc(word, unicode.IsSpace) >= 0 {
		return nil
	}
	var out []prompt.Suggest
	for _, name := range reg.Complete(word) {
		spec, _ := reg.Lookup(name)
		out = append(out, prompt.Suggest{Text: name, Description: spec.Description})
	}
	return out
}

func isExit(line string) bool {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "exit", "quit":
		return true
	}
	return false
}

// Run prints the pending transcript and reads lines until exit, quit or
// EOF.
func (r *REPL) Run() {
	r.Flush()
	p := prompt.New(
		r.Execute,
		prompt.WithTitle(r.opts.Title),
		prompt.WithPrefix(r.opts.Prompt+" "),
		prompt.WithPrefixTextColor(prompt.Green),
		prompt.WithInputTextColor(prompt.White),
		prompt.WithSuggestionTextColor(prompt.White),
		prompt.WithSuggestionBGColor(prompt.DarkGray),
		prompt.WithSelectedSuggestionTextColor(prompt.Black),
		prompt.WithSelectedSuggestionBGColor(prompt.Green),
		prompt.WithDescriptionTextColor(prompt.LightGray),
		prompt.WithDescriptionBGColor(prompt.DarkGray),
		prompt.WithSelectedDescriptionTextColor(prompt.Black),
		prompt.WithSelectedDescriptionBGColor(prompt.Turquoise),
		prompt.WithCompleter(r.Complete),
		prompt.WithExitChecker(func(in string, breakline bool) bool {
			return breakline && isExit(in)
		}),
	)
	p.Run()
}
