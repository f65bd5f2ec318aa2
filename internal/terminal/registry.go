package terminal

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

var (
	// ErrDuplicateCommand is returned when a command name is registered twice.
	ErrDuplicateCommand = errors.New("duplicate command")
	// ErrInvalidCommandName is returned for names that could never be
	// dispatched: empty, containing whitespace or upper case, or shadowed by
	// a built-in.
	ErrInvalidCommandName = errors.New("invalid command name")
)

// Built-in commands handled by the executor before the registry is
// consulted.
const (
	BuiltinClear   = "clear"
	BuiltinHistory = "history"
	BuiltinEcho    = "echo"
)

// Builtins lists the executor's built-in commands with their descriptions,
// in display order.
var Builtins = []CommandSpec{
	{Name: BuiltinClear, Description: "Clear the terminal"},
	{Name: BuiltinHistory, Description: "Show command history"},
	{Name: BuiltinEcho, Description: "Print the given text"},
}

// Action produces the output of a command. Actions take no arguments.
type Action func() Output

// CommandSpec describes a registry command.
type CommandSpec struct {
	Name        string
	Description string
	Action      Action
}

// Registry maps command names to their specs. It is populated during
// construction and read-only afterwards.
type Registry struct {
	commands map[string]CommandSpec
	names    []string
}

// NewRegistry creates a registry holding specs.
func NewRegistry(specs ...CommandSpec) (*Registry, error) {
	r := &Registry{commands: make(map[string]CommandSpec, len(specs))}
	for _, spec := range specs {
		if err := r.Register(spec); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds spec to the registry.
func (r *Registry) Register(spec CommandSpec) error {
	if err := validateName(spec.Name); err != nil {
		return err
	}
	if spec.Action == nil {
		return fmt.Errorf("%w: %q has no action", ErrInvalidCommandName, spec.Name)
	}
	if _, exists := r.commands[spec.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, spec.Name)
	}
	r.commands[spec.Name] = spec
	i := sort.SearchStrings(r.names, spec.Name)
	r.names = append(r.names, "")
	copy(r.names[i+1:], r.names[i:])
	r.names[i] = spec.Name
	return nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty", ErrInvalidCommandName)
	}
	for _, c := range name {
		if unicode.IsSpace(c) || unicode.IsUpper(c) {
			return fmt.Errorf("%w: %q", ErrInvalidCommandName, name)
		}
	}
	for _, b := range Builtins {
		if b.Name == name {
			return fmt.Errorf("%w: %q is a built-in", ErrInvalidCommandName, name)
		}
	}
	return nil
}

// Lookup returns the command registered under name. Matching is
// case-insensitive.
func (r *Registry) Lookup(name string) (CommandSpec, bool) {
	spec, ok := r.commands[strings.ToLower(name)]
	return spec, ok
}

// Names returns all command names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Specs returns all commands ordered by name.
func (r *Registry) Specs() []CommandSpec {
	specs := make([]CommandSpec, 0, len(r.names))
	for _, name := range r.names {
		specs = append(specs, r.commands[name])
	}
	return specs
}

// Len returns the number of registered commands.
func (r *Registry) Len() int { return len(r.names) }

// Complete returns the sorted names starting with prefix (case-insensitive).
// An empty prefix matches every name.
func (r *Registry) Complete(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var matches []string
	for _, name := range r.names {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}
