package config

import (
	"fmt"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"
)

// OptionType represents the expected type of a configuration option value.
type OptionType string

const (
	// TypeString is a plain string value (the default for all config values).
	TypeString OptionType = "string"
	// TypeBool is a boolean value (true/false/yes/no/1/0/on/off).
	TypeBool OptionType = "bool"
	// TypeInt is an integer value.
	TypeInt OptionType = "int"
	// TypeEnum is one of ConfigOption.Choices.
	TypeEnum OptionType = "enum"
	// TypeColor is a lipgloss color: an ANSI index (0-255) or #rgb / #rrggbb.
	TypeColor OptionType = "color"
)

// ConfigOption declares a single configuration option with its type, default,
// documentation, and environment variable override.
type ConfigOption struct {
	// Key is the option name as it appears in the config file.
	Key string
	// Type is the expected value type for validation.
	Type OptionType
	// Choices lists the accepted values of a TypeEnum option.
	Choices []string
	// Default is the default value as a string, or "" for no default.
	Default string
	// Description is a human-readable description of the option.
	Description string
	// Section is "" for global options, or a command section name.
	Section string
	// EnvVar is the environment variable that overrides this option, or "".
	EnvVar string
}

// ConfigSchema declares the expected configuration options. It drives
// validation, the `config schema` output, typed getters and env overrides.
type ConfigSchema struct {
	options   []*ConfigOption
	byKey     map[string]*ConfigOption
	bySection map[string]map[string]*ConfigOption
}

// NewSchema creates a new empty ConfigSchema.
func NewSchema() *ConfigSchema {
	return &ConfigSchema{
		byKey:     make(map[string]*ConfigOption),
		bySection: make(map[string]map[string]*ConfigOption),
	}
}

// Register adds a ConfigOption to the schema. The last registration of a key
// within a section wins.
func (s *ConfigSchema) Register(opt ConfigOption) {
	ref := new(ConfigOption)
	*ref = opt
	s.options = append(s.options, ref)
	if opt.Section == "" {
		s.byKey[opt.Key] = ref
		return
	}
	if s.bySection[opt.Section] == nil {
		s.bySection[opt.Section] = make(map[string]*ConfigOption)
	}
	s.bySection[opt.Section][opt.Key] = ref
}

// RegisterAll adds multiple ConfigOptions to the schema.
func (s *ConfigSchema) RegisterAll(opts []ConfigOption) {
	for _, opt := range opts {
		s.Register(opt)
	}
}

// Lookup returns the ConfigOption for a key in a given section ("" for global).
// Returns nil if the key is not registered.
func (s *ConfigSchema) Lookup(section, key string) *ConfigOption {
	if section == "" {
		return s.byKey[key]
	}
	return s.bySection[section][key]
}

// IsKnown reports whether key may appear in section. Global keys are known
// in every section, where they override the global value.
func (s *ConfigSchema) IsKnown(section, key string) bool {
	if section != "" && s.bySection[section][key] != nil {
		return true
	}
	return s.byKey[key] != nil
}

// GlobalOptions returns all registered global options in registration order.
func (s *ConfigSchema) GlobalOptions() []ConfigOption {
	return s.SectionOptions("")
}

// SectionOptions returns all registered options for a specific section.
func (s *ConfigSchema) SectionOptions(section string) []ConfigOption {
	var out []ConfigOption
	for _, o := range s.options {
		if o.Section == section {
			out = append(out, *o)
		}
	}
	return out
}

// Sections returns the sorted names of all sections with registered options.
func (s *ConfigSchema) Sections() []string {
	out := make([]string, 0, len(s.bySection))
	for sec := range s.bySection {
		out = append(out, sec)
	}
	sort.Strings(out)
	return out
}

// Resolve returns the effective value for a global key by checking, in
// order: the key's environment variable (empty counts as unset), the config
// value, the schema default.
func (s *ConfigSchema) Resolve(c *Config, key string) string {
	return s.ResolveFor(c, "", key)
}

// ResolveFor is Resolve for a command section: the section's own value
// takes precedence over the global one, and a section-specific default over
// the global default.
func (s *ConfigSchema) ResolveFor(c *Config, section, key string) string {
	opt := s.Lookup(section, key)
	global := s.Lookup("", key)
	for _, o := range []*ConfigOption{opt, global} {
		if o != nil && o.EnvVar != "" {
			if v := os.Getenv(o.EnvVar); v != "" {
				return v
			}
		}
	}
	if c != nil {
		if section != "" {
			if v, ok := c.GetCommandOption(section, key); ok {
				return v
			}
		} else if v, ok := c.GetGlobalOption(key); ok {
			return v
		}
	}
	if opt != nil {
		return opt.Default
	}
	if global != nil {
		return global.Default
	}
	return ""
}

// ValidateConfig checks a loaded Config against the schema and returns a
// sorted list of human-readable issues, empty when the config is valid.
// Unknown options and type mismatches are reported; user commands are not
// checked here.
func ValidateConfig(c *Config, s *ConfigSchema) []string {
	var issues []string

	for key, value := range c.Global {
		opt := s.Lookup("", key)
		if opt == nil {
			issues = append(issues, fmt.Sprintf("unknown global option: %q (value: %q)", key, value))
			continue
		}
		if err := validateValue(opt, value); err != nil {
			issues = append(issues, fmt.Sprintf("global option %q: %v", key, err))
		}
	}

	for section, opts := range c.Sections {
		for key, value := range opts {
			if !s.IsKnown(section, key) {
				issues = append(issues, fmt.Sprintf("unknown option for command %q: %q (value: %q)", section, key, value))
				continue
			}
			opt := s.Lookup(section, key)
			if opt == nil {
				opt = s.Lookup("", key)
			}
			if err := validateValue(opt, value); err != nil {
				issues = append(issues, fmt.Sprintf("option %q in [%s]: %v", key, section, err))
			}
		}
	}

	sort.Strings(issues)
	return issues
}

// validateValue checks that value is acceptable for opt.
func validateValue(opt *ConfigOption, value string) error {
	switch opt.Type {
	case TypeString, "":
		return nil
	case TypeBool:
		if _, err := parseBool(value); err != nil {
			return fmt.Errorf("expected bool, got %q", value)
		}
	case TypeInt:
		if _, err := strconv.Atoi(value); err != nil {
			return fmt.Errorf("expected int, got %q", value)
		}
	case TypeEnum:
		if !slices.Contains(opt.Choices, value) {
			return fmt.Errorf("expected one of %s, got %q", strings.Join(opt.Choices, ", "), value)
		}
	case TypeColor:
		if !isColor(value) {
			return fmt.Errorf("expected color (0-255 or #rrggbb), got %q", value)
		}
	default:
		return fmt.Errorf("unknown option type %q", opt.Type)
	}
	return nil
}

func isColor(v string) bool {
	if hex, ok := strings.CutPrefix(v, "#"); ok {
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(v)
	return err == nil && n >= 0 && n <= 255
}

// ResolveInt is ResolveFor parsed as an integer.
func (s *ConfigSchema) ResolveInt(c *Config, section, key string) (int, error) {
	v := s.ResolveFor(c, section, key)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: expected int, got %q", optionName(section, key), v)
	}
	return n, nil
}

// ResolveBool is ResolveFor parsed with the config file's boolean syntax.
func (s *ConfigSchema) ResolveBool(c *Config, section, key string) (bool, error) {
	v := s.ResolveFor(c, section, key)
	b, err := parseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: expected bool, got %q", optionName(section, key), v)
	}
	return b, nil
}

func optionName(section, key string) string {
	if section == "" {
		return key
	}
	return "[" + section + "] " + key
}

// FormatHelp returns a human-readable reference of all registered options,
// grouped by section.
func (s *ConfigSchema) FormatHelp() string {
	var b strings.Builder

	if globals := s.GlobalOptions(); len(globals) > 0 {
		b.WriteString("Global Options:\n")
		for _, o := range globals {
			writeOptionHelp(&b, o)
		}
	}

	for _, sec := range s.Sections() {
		opts := s.SectionOptions(sec)
		if len(opts) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n[%s] Options:\n", sec)
		for _, o := range opts {
			writeOptionHelp(&b, o)
		}
	}

	b.WriteString("\n[commands]\n")
	b.WriteString("  <name> <text>                       Add a terminal command printing text (\\n for newlines)\n")
	b.WriteString("  <name>.description <text>           Describe it in help\n")

	return b.String()
}

func writeOptionHelp(b *strings.Builder, o ConfigOption) {
	fmt.Fprintf(b, "  %-35s %s", o.Key, o.Description)
	parts := make([]string, 0, 3)
	switch o.Type {
	case "", TypeString:
	case TypeEnum:
		parts = append(parts, "one of: "+strings.Join(o.Choices, "|"))
	default:
		parts = append(parts, fmt.Sprintf("type: %s", o.Type))
	}
	if o.Default != "" {
		parts = append(parts, fmt.Sprintf("default: %q", o.Default))
	}
	if o.EnvVar != "" {
		parts = append(parts, fmt.Sprintf("env: %s", o.EnvVar))
	}
	if len(parts) > 0 {
		fmt.Fprintf(b, " (%s)", strings.Join(parts, ", "))
	}
	b.WriteString("\n")
}

// Option keys read by the CLI.
const (
	KeyPrompt         = "prompt"
	KeyWelcome        = "welcome"
	KeyProfileFile    = "profile.file"
	KeyFrontend       = "frontend"
	KeyColor          = "color"
	KeyThemeAccent    = "theme.accent"
	KeyThemeMuted     = "theme.muted"
	KeyThemeLink      = "theme.link"
	KeyThemeError     = "theme.error"
	KeyThemeBorder    = "theme.border"
	KeyLogFile        = "log.file"
	KeyLogLevel       = "log.level"
	KeyLogMaxSizeMB   = "log.max-size-mb"
	KeyLogMaxFiles    = "log.max-files"
	KeyLogMaxAgeDays  = "log.max-age-days"
	KeyLogCompress    = "log.compress"
	KeyTerminalHeight = "height"
	KeyScrollbar      = "scrollbar"
	KeyPromptTitle    = "title"
	KeyExecFormat     = "format"
)

// DefaultSchema returns the schema declaring every folio option.
func DefaultSchema() *ConfigSchema {
	s := NewSchema()
	s.RegisterAll(defaultGlobalOptions())
	s.RegisterAll(defaultCommandOptions())
	return s
}

func defaultGlobalOptions() []ConfigOption {
	return []ConfigOption{
		{Key: KeyPrompt, Default: "guest@folio:~$", Description: "Prompt shown before the input line"},
		{Key: KeyWelcome, Description: "Welcome message replacing the default greeting (\\n for newlines)"},
		{Key: KeyProfileFile, Description: "Author profile (YAML); the built-in profile is used when unset", EnvVar: "FOLIO_PROFILE"},
		{Key: KeyFrontend, Type: TypeEnum, Choices: []string{"terminal", "prompt"}, Default: "terminal", Description: "Interactive front-end used when no command is given"},
		{Key: KeyColor, Type: TypeEnum, Choices: []string{"auto", "always", "never"}, Default: "auto", Description: "Color mode"},

		{Key: KeyThemeAccent, Type: TypeColor, Default: "#50fa7b", Description: "Accent color (commands, headings)"},
		{Key: KeyThemeMuted, Type: TypeColor, Default: "#6272a4", Description: "Muted color (descriptions, numbering)"},
		{Key: KeyThemeLink, Type: TypeColor, Default: "#8be9fd", Description: "Link color"},
		{Key: KeyThemeError, Type: TypeColor, Default: "#ff5555", Description: "Error color"},
		{Key: KeyThemeBorder, Type: TypeColor, Default: "#44475a", Description: "Border and scrollbar color"},

		{Key: KeyLogFile, Description: "Log file path (JSON output)", EnvVar: "FOLIO_LOG_FILE"},
		{Key: KeyLogLevel, Type: TypeEnum, Choices: []string{"debug", "info", "warn", "error"}, Default: "info", Description: "Log level", EnvVar: "FOLIO_LOG_LEVEL"},
		{Key: KeyLogMaxSizeMB, Type: TypeInt, Default: "10", Description: "Max log file size in MB before rotation"},
		{Key: KeyLogMaxFiles, Type: TypeInt, Default: "5", Description: "Max number of rotated log files kept"},
		{Key: KeyLogMaxAgeDays, Type: TypeInt, Default: "28", Description: "Max age in days of rotated log files"},
		{Key: KeyLogCompress, Type: TypeBool, Default: "false", Description: "Gzip rotated log files"},
	}
}

func defaultCommandOptions() []ConfigOption {
	return []ConfigOption{
		{Key: KeyTerminalHeight, Section: "terminal", Type: TypeInt, Default: "0", Description: "Widget height in rows, 0 for the full window"},
		{Key: KeyScrollbar, Section: "terminal", Type: TypeBool, Default: "true", Description: "Show the transcript scrollbar"},

		{Key: KeyPromptTitle, Section: "prompt", Default: "folio", Description: "Terminal window title"},

		{Key: KeyExecFormat, Section: "exec", Type: TypeEnum, Choices: []string{"text", "json"}, Default: "text", Description: "Transcript output format"},
	}
}
