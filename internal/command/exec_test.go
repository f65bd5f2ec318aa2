package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/joeycumines/folio/internal/config"
)

func TestExecCommandText(t *testing.T) {
	isolate(t)
	out, _, err := run(t, NewExecCommand(config.NewConfig()), "echo Hello", "  ", "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "guest@folio:~$ echo Hello\nhello\n" +
		"guest@folio:~$ nope\nCommand not found: nope. Type 'help' for available commands.\n"
	if out != want {
		t.Errorf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestExecCommandClearKeepsHistory(t *testing.T) {
	isolate(t)
	out, _, err := run(t, NewExecCommand(config.NewConfig()), "-json", "echo a", "clear", "echo b")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc transcriptJSON
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(doc.Entries) != 1 || doc.Entries[0].Command != "echo b" || doc.Entries[0].Output != "b" {
		t.Errorf("entries = %+v", doc.Entries)
	}
	if strings.Join(doc.History, ",") != "echo a,echo b" {
		t.Errorf("history = %v", doc.History)
	}
	if doc.Session == "" {
		t.Error("missing session id")
	}
}

func TestExecCommandStdinAndWelcome(t *testing.T) {
	isolate(t)
	cmd := NewExecCommand(config.NewConfig())
	cmd.SetStdin(strings.NewReader("echo one\n\nHISTORY\n"))

	out, _, err := run(t, cmd, "-json", "-stdin", "-welcome", "whoami")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc transcriptJSON
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(doc.Entries) != 4 {
		t.Fatalf("expected 4 entries, got %+v", doc.Entries)
	}

	welcome := doc.Entries[0]
	if welcome.Command != "" || !strings.HasPrefix(welcome.Output, "Welcome to Alex Doe's portfolio terminal.") {
		t.Errorf("welcome = %+v", welcome)
	}
	if who := doc.Entries[1]; who.Output != "Alex Doe (@alex)\nSoftware Engineer · Remote" {
		t.Errorf("whoami output = %q", who.Output)
	}
	if len(doc.Entries[1].Segments) == 0 || doc.Entries[1].Segments[0].Role != "accent" {
		t.Errorf("whoami segments = %+v", doc.Entries[1].Segments)
	}
	hist := doc.Entries[3]
	if hist.Command != "HISTORY" || hist.Output != "1  whoami\n2  echo one" {
		t.Errorf("history entry = %+v", hist)
	}
}

func TestExecCommandStrict(t *testing.T) {
	isolate(t)
	_, _, err := run(t, NewExecCommand(config.NewConfig()), "-strict", "whoami", "nope", "nada")
	if err == nil || err.Error() != "2 line(s) failed" {
		t.Errorf("err = %v", err)
	}
	if _, _, err := run(t, NewExecCommand(config.NewConfig()), "-strict", "whoami"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestExecCommandFormatFromConfig(t *testing.T) {
	isolate(t)
	cfg := config.NewConfig()
	cfg.SetCommandOption("exec", "format", "json")
	out, _, err := run(t, NewExecCommand(cfg), "date")
	if err != nil {
		t.Fatal(err)
	}
	if !json.Valid([]byte(out)) {
		t.Errorf("expected JSON, got %q", out)
	}
}

func TestExecCommandCustomCommands(t *testing.T) {
	isolate(t)
	cfg, err := config.LoadFromReader(strings.NewReader("prompt >\n[commands]\nhi Hello\\nthere\nhi.description Greets\n"))
	if err != nil {
		t.Fatal(err)
	}
	out, _, err := run(t, NewExecCommand(cfg), "HI", "help")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "> HI\nHello\nthere\n> help\n") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "Greets") {
		t.Errorf("help does not list the custom command: %q", out)
	}
}

func TestExecCommandNoLines(t *testing.T) {
	t.Parallel()
	_, errOut, err := run(t, NewExecCommand(config.NewConfig()))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(errOut, "Usage: folio exec") {
		t.Errorf("stderr = %q", errOut)
	}
}
