package command

import (
	"bytes"
	"flag"
	"io"
	"path/filepath"
	"testing"

	"github.com/joeycumines/folio/internal/config"
)

// isolate points every config and profile lookup at a temporary directory
// and clears the environment overrides. It returns the directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvConfig, filepath.Join(dir, "config"))
	t.Setenv("FOLIO_PROFILE", "")
	t.Setenv("FOLIO_LOG_FILE", "")
	t.Setenv("FOLIO_LOG_LEVEL", "")
	return dir
}

// run parses args with cmd's flags and executes it.
func run(t *testing.T, cmd Command, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cmd.SetupFlags(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	var out, errOut bytes.Buffer
	err = cmd.Execute(fs.Args(), &out, &errOut)
	return out.String(), errOut.String(), err
}

type testCommand struct {
	*BaseCommand
}

func (c *testCommand) Execute(args []string, stdout, stderr io.Writer) error { return nil }

func TestRegistry(t *testing.T) {
	t.Parallel()
	r := NewRegistry()
	r.Register(&testCommand{NewBaseCommand("zeta", "Z", "zeta")})
	r.Register(&testCommand{NewBaseCommand("alpha", "A", "alpha")})

	cmd, err := r.Get("alpha")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cmd.Description() != "A" || cmd.Usage() != "alpha" {
		t.Errorf("unexpected command %q %q", cmd.Description(), cmd.Usage())
	}
	if _, err := r.Get("missing"); err == nil {
		t.Error("expected error for missing command")
	}

	got := r.List()
	if len(got) != 2 || got[0] != "alpha" || got[1] != "zeta" {
		t.Errorf("List() = %v, want [alpha zeta]", got)
	}
}
