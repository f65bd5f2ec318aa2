package command

import (
	"log/slog"
	"testing"

	"github.com/joeycumines/folio/internal/config"
)

func TestResolveLogConfig_Defaults(t *testing.T) {
	isolate(t)
	opts, err := resolveLogConfig("", "", nil)
	if err != nil {
		t.Fatalf("resolveLogConfig: %v", err)
	}
	if opts.File != "" {
		t.Fatalf("expected no log file, got %q", opts.File)
	}
	if opts.Level != slog.LevelInfo {
		t.Fatalf("expected level Info, got %v", opts.Level)
	}
	if opts.MaxSizeMB != 10 || opts.MaxBackups != 5 || opts.MaxAgeDays != 28 || opts.Compress {
		t.Fatalf("unexpected rotation defaults: %+v", opts)
	}
}

func TestResolveLogConfig_FlagOverridesConfig(t *testing.T) {
	isolate(t)
	cfg := config.NewConfig()
	cfg.SetGlobalOption("log.level", "warn")
	cfg.SetGlobalOption("log.file", "/should/not/use/this")

	opts, err := resolveLogConfig("/tmp/flag.log", "debug", cfg)
	if err != nil {
		t.Fatalf("resolveLogConfig: %v", err)
	}
	if opts.Level != slog.LevelDebug {
		t.Fatalf("expected level Debug (flag override), got %v", opts.Level)
	}
	if opts.File != "/tmp/flag.log" {
		t.Fatalf("expected flag path, got %q", opts.File)
	}
}

func TestResolveLogConfig_ConfigFallback(t *testing.T) {
	isolate(t)
	cfg := config.NewConfig()
	cfg.SetGlobalOption("log.file", "/var/log/folio.log")
	cfg.SetGlobalOption("log.level", "error")
	cfg.SetGlobalOption("log.max-size-mb", "5")
	cfg.SetGlobalOption("log.max-files", "3")
	cfg.SetGlobalOption("log.max-age-days", "7")
	cfg.SetGlobalOption("log.compress", "yes")

	opts, err := resolveLogConfig("", "", cfg)
	if err != nil {
		t.Fatalf("resolveLogConfig: %v", err)
	}
	if opts.File != "/var/log/folio.log" || opts.Level != slog.LevelError {
		t.Fatalf("unexpected options: %+v", opts)
	}
	if opts.MaxSizeMB != 5 || opts.MaxBackups != 3 || opts.MaxAgeDays != 7 || !opts.Compress {
		t.Fatalf("unexpected rotation options: %+v", opts)
	}
}

func TestResolveLogConfig_Env(t *testing.T) {
	isolate(t)
	t.Setenv("FOLIO_LOG_LEVEL", "warn")
	t.Setenv("FOLIO_LOG_FILE", "/tmp/env.log")
	cfg := config.NewConfig()
	cfg.SetGlobalOption("log.level", "debug")

	opts, err := resolveLogConfig("", "", cfg)
	if err != nil {
		t.Fatalf("resolveLogConfig: %v", err)
	}
	if opts.Level != slog.LevelWarn || opts.File != "/tmp/env.log" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestResolveLogConfig_InvalidLevel(t *testing.T) {
	isolate(t)
	if _, err := resolveLogConfig("", "loud", nil); err == nil {
		t.Fatal("expected error for invalid level")
	}
}

func TestResolveLogConfig_InvalidRotation(t *testing.T) {
	isolate(t)
	cfg := config.NewConfig()
	cfg.SetGlobalOption("log.max-files", "lots")
	if _, err := resolveLogConfig("", "", cfg); err == nil || err.Error() != `log.max-files: expected int, got "lots"` {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg = config.NewConfig()
	cfg.SetGlobalOption("log.compress", "sometimes")
	if _, err := resolveLogConfig("", "", cfg); err == nil {
		t.Fatal("expected error for a non-boolean log.compress")
	}
}
