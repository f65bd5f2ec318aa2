package config

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config represents the folio configuration.
type Config struct {
	// Global options
	Global map[string]string
	// Sections holds per-command options, keyed by section then option.
	// Lookups fall back to Global.
	Sections map[string]map[string]string
	// Custom are user-defined static terminal commands, parsed from the
	// [commands] section.
	Custom []CustomCommand
	// Warnings contains any warnings generated during config loading
	Warnings []string
}

// CustomCommand is a terminal command that prints fixed text.
type CustomCommand struct {
	Name        string `json:"name"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
}

// commandsSection is the reserved section holding CustomCommand definitions.
const commandsSection = "commands"

// NewConfig creates a new empty configuration.
func NewConfig() *Config {
	return &Config{
		Global:   make(map[string]string),
		Sections: make(map[string]map[string]string),
		Custom:   make([]CustomCommand, 0),
		Warnings: make([]string, 0),
	}
}

// Load loads configuration from the default config file path.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads configuration from the specified file path.
// The file uses dnsmasq-style format: optionName remainingLineIsTheValue
//
// A missing file yields an empty config. Symlinks are rejected.
func LoadFromPath(path string) (*Config, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return NewConfig(), nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if fi.Mode()&os.ModeSymlink != 0 {
		return nil, fmt.Errorf("symlink not allowed in config path: %s", path)
	}

	file, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file)
}

// LoadFromReader loads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	config := NewConfig()
	scanner := bufio.NewScanner(r)

	var section string
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(strings.Trim(line, "[]"))
			if section != commandsSection && config.Sections[section] == nil {
				config.Sections[section] = make(map[string]string)
			}
			continue
		}

		name, value, _ := strings.Cut(line, " ")
		value = strings.TrimSpace(value)

		switch section {
		case "":
			config.Global[name] = value
		case commandsSection:
			if err := parseCommandLine(&config.Custom, name, value); err != nil {
				return nil, fmt.Errorf("line %d: invalid command %q: %w", lineNo, name, err)
			}
		default:
			config.Sections[section][name] = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	for _, issue := range ValidateConfig(config, DefaultSchema()) {
		config.addWarning("%s", issue)
	}

	return config, nil
}

// addWarning adds a warning to the config's warnings list.
func (c *Config) addWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	c.Warnings = append(c.Warnings, msg)
	slog.Warn("config: " + msg)
}

// parseCommandLine parses a single line from the [commands] section. Two
// forms are supported:
//
//	name text printed by the command     (literal \n becomes a newline)
//	name.description Help text           (describes the last command called name)
func parseCommandLine(commands *[]CustomCommand, name, value string) error {
	if name == "" {
		return fmt.Errorf("empty command name")
	}

	if base, ok := strings.CutSuffix(name, ".description"); ok && base != "" {
		for i := len(*commands) - 1; i >= 0; i-- {
			if (*commands)[i].Name == base {
				(*commands)[i].Description = value
				return nil
			}
		}
		return fmt.Errorf("command %q not defined before its description", base)
	}

	if value == "" {
		return fmt.Errorf("no text")
	}
	for _, existing := range *commands {
		if existing.Name == name {
			return fmt.Errorf("defined twice")
		}
	}

	*commands = append(*commands, CustomCommand{
		Name: name,
		Text: strings.ReplaceAll(value, `\n`, "\n"),
	})
	return nil
}

// parseBool parses a boolean value from string.
// Accepts: true, false, 1, 0, yes, no, on, off (case-insensitive)
func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean value: %s", s)
	}
}

// GetGlobalOption returns a global configuration option.
func (c *Config) GetGlobalOption(name string) (string, bool) {
	value, exists := c.Global[name]
	return value, exists
}

// GetCommandOption returns a command-specific configuration option, falling
// back to the global option of the same name.
func (c *Config) GetCommandOption(command, name string) (string, bool) {
	if opts, exists := c.Sections[command]; exists {
		if value, exists := opts[name]; exists {
			return value, true
		}
	}
	return c.GetGlobalOption(name)
}

// SetGlobalOption sets a global configuration option.
func (c *Config) SetGlobalOption(name, value string) {
	c.Global[name] = value
}

// SetCommandOption sets a command-specific configuration option.
func (c *Config) SetCommandOption(command, name, value string) {
	if c.Sections[command] == nil {
		c.Sections[command] = make(map[string]string)
	}
	c.Sections[command][name] = value
}

// HasWarnings returns true if there are any warnings.
func (c *Config) HasWarnings() bool {
	return len(c.Warnings) > 0
}
