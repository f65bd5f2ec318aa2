package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points the config at a temporary directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FOLIO_CONFIG", filepath.Join(dir, "config"))
	t.Setenv("FOLIO_PROFILE", "")
	t.Setenv("FOLIO_LOG_FILE", "")
	t.Setenv("FOLIO_LOG_LEVEL", "")
	return dir
}

func runArgs(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun(t *testing.T) {
	isolate(t)

	t.Run("no command off a terminal shows help", func(t *testing.T) {
		out, _, err := runArgs(t, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(out, "Usage: folio <command>") {
			t.Errorf("expected help, got %q", out)
		}
	})

	for _, args := range [][]string{{"help"}, {"--help"}, {"-h"}} {
		t.Run(args[0], func(t *testing.T) {
			out, _, err := runArgs(t, "", args...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(out, "Available commands:") {
				t.Errorf("expected help, got %q", out)
			}
		})
	}

	t.Run("version", func(t *testing.T) {
		out, _, err := runArgs(t, "", "version")
		if err != nil || out != "folio version "+version+"\n" {
			t.Errorf("got %q, %v", out, err)
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		_, errOut, err := runArgs(t, "", "nonexistent")
		if err == nil {
			t.Error("expected error for unknown command")
		}
		if !strings.Contains(errOut, "Use 'folio help'") {
			t.Errorf("stderr = %q", errOut)
		}
	})

	t.Run("command help flag", func(t *testing.T) {
		_, errOut, err := runArgs(t, "", "exec", "-h")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(errOut, "Usage: folio exec") {
			t.Errorf("stderr = %q", errOut)
		}
	})

	t.Run("bad flag", func(t *testing.T) {
		if _, _, err := runArgs(t, "", "exec", "-bogus"); err == nil {
			t.Error("expected error for unknown flag")
		}
	})
}

func TestRunExecWithStdin(t *testing.T) {
	isolate(t)
	out, _, err := runArgs(t, "echo piped\nhistory\n", "exec", "-json", "-stdin")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var doc struct {
		History []string `json:"history"`
		Entries []struct {
			Command string `json:"command"`
			Output  string `json:"output"`
		} `json:"entries"`
	}
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(doc.Entries) != 2 || doc.Entries[0].Output != "piped" || doc.Entries[1].Output != "1  echo piped" {
		t.Errorf("entries = %+v", doc.Entries)
	}
}

func TestRunInitThenExec(t *testing.T) {
	dir := isolate(t)
	if _, _, err := runArgs(t, "", "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "profile.yaml")); err != nil {
		t.Fatalf("profile not written: %v", err)
	}

	out, _, err := runArgs(t, "", "exec", "hello")
	if err != nil {
		t.Fatalf("exec: %v", err)
	}
	want := "guest@folio:~$ hello\nHello there!\nThanks for stopping by.\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	out, _, err = runArgs(t, "", "config", "prompt")
	if err != nil || out != "prompt: guest@folio:~$\n" {
		t.Errorf("config prompt: %q, %v", out, err)
	}
}

func TestRunRejectsBrokenConfig(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, "config"), []byte("[commands]\nempty\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := runArgs(t, "", "version"); err == nil || !strings.Contains(err.Error(), "failed to load config") {
		t.Errorf("err = %v", err)
	}
}
