package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func setHome(t *testing.T, dir string) {
	t.Helper()
	homeVar := "HOME"
	if runtime.GOOS == "windows" {
		homeVar = "USERPROFILE"
	}
	t.Setenv(homeVar, dir)
}

func TestGetConfigPathEnvOverride(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom-config")

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath returned error: %v", err)
	}
	if got != "/tmp/custom-config" {
		t.Fatalf("expected override path, got %q", got)
	}
}

func TestGetConfigPathDefault(t *testing.T) {
	dir := t.TempDir()
	setHome(t, dir)
	t.Setenv(EnvConfig, "")

	got, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath returned error: %v", err)
	}
	if want := filepath.Join(dir, ".folio", "config"); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	profilePath, err := GetProfilePath()
	if err != nil {
		t.Fatalf("GetProfilePath returned error: %v", err)
	}
	if want := filepath.Join(dir, ".folio", "profile.yaml"); profilePath != want {
		t.Fatalf("expected %q, got %q", want, profilePath)
	}
}

func TestEnsureConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvConfig, filepath.Join(dir, "nested", "deeper", "config"))

	if err := EnsureConfigDir(); err != nil {
		t.Fatalf("EnsureConfigDir returned error: %v", err)
	}
	fi, err := os.Stat(filepath.Join(dir, "nested", "deeper"))
	if err != nil {
		t.Fatalf("expected directory to exist: %v", err)
	}
	if !fi.IsDir() {
		t.Fatalf("expected a directory")
	}
}
