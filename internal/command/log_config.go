package command

import (
	"github.com/joeycumines/folio/internal/config"
	"github.com/joeycumines/folio/internal/logging"
)

// resolveLogConfig resolves logging options from flags and config. Flag
// values take precedence; config values (including their environment
// overrides) fill in the rest. cfg may be nil.
func resolveLogConfig(flagPath, flagLevel string, cfg *config.Config) (logging.Options, error) {
	schema := config.DefaultSchema()
	var opts logging.Options

	levelStr := flagLevel
	if levelStr == "" {
		levelStr = schema.Resolve(cfg, config.KeyLogLevel)
	}
	level, err := logging.ParseLevel(levelStr)
	if err != nil {
		return opts, err
	}
	opts.Level = level

	opts.File = flagPath
	if opts.File == "" {
		opts.File = schema.Resolve(cfg, config.KeyLogFile)
	}

	if opts.MaxSizeMB, err = schema.ResolveInt(cfg, "", config.KeyLogMaxSizeMB); err != nil {
		return opts, err
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	// Zero backups is valid: lumberjack then keeps every rotated file.
	if opts.MaxBackups, err = schema.ResolveInt(cfg, "", config.KeyLogMaxFiles); err != nil {
		return opts, err
	}
	if opts.MaxAgeDays, err = schema.ResolveInt(cfg, "", config.KeyLogMaxAgeDays); err != nil {
		return opts, err
	}
	opts.MaxBackups = max(opts.MaxBackups, 0)
	opts.MaxAgeDays = max(opts.MaxAgeDays, 0)
	if opts.Compress, err = schema.ResolveBool(cfg, "", config.KeyLogCompress); err != nil {
		return opts, err
	}

	return opts, nil
}
