package command

import (
	"fmt"
	"io"
	"strings"

	"github.com/joeycumines/folio/internal/config"
)

// CompletionCommand generates shell completion scripts.
type CompletionCommand struct {
	*BaseCommand
	registry *Registry
}

// NewCompletionCommand creates a new completion command.
func NewCompletionCommand(registry *Registry) *CompletionCommand {
	return &CompletionCommand{
		BaseCommand: NewBaseCommand(
			"completion",
			"Generate shell completion scripts",
			"completion [bash|zsh|fish]",
		),
		registry: registry,
	}
}

var (
	completionShells   = []string{"bash", "zsh", "fish"}
	profileSubcommands = []string{"show", "validate", "path"}
)

// Execute generates the completion script for the specified shell.
func (c *CompletionCommand) Execute(args []string, stdout, stderr io.Writer) error {
	if len(args) > 1 {
		_, _ = fmt.Fprintf(stderr, "Too many arguments: %v\n", args[1:])
		_, _ = fmt.Fprintln(stderr, "Usage: folio "+c.Usage())
		return fmt.Errorf("too many arguments")
	}

	shell := "bash"
	if len(args) > 0 {
		shell = strings.ToLower(args[0])
	}

	switch shell {
	case "bash":
		return c.generateBashCompletion(stdout)
	case "zsh":
		return c.generateZshCompletion(stdout)
	case "fish":
		return c.generateFishCompletion(stdout)
	default:
		_, _ = fmt.Fprintf(stderr, "Unsupported shell: %s\n", shell)
		_, _ = fmt.Fprintf(stderr, "Supported shells: %s\n", strings.Join(completionShells, ", "))
		return fmt.Errorf("unsupported shell: %s", shell)
	}
}

// configWords are the completions offered after `folio config`.
func configWords() []string {
	words := []string{"validate", "schema"}
	schema := config.DefaultSchema()
	for _, o := range schema.GlobalOptions() {
		words = append(words, o.Key)
	}
	for _, sec := range schema.Sections() {
		for _, o := range schema.SectionOptions(sec) {
			words = append(words, sec+"."+o.Key)
		}
	}
	return words
}

func (c *CompletionCommand) generateBashCompletion(w io.Writer) error {
	script := fmt.Sprintf(`#!/bin/bash
# Bash completion script for folio

_folio_completion() {
    local cur prev commands
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    commands="%s"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=($(compgen -W "${commands}" -- ${cur}))
        return 0
    fi

    case "${prev}" in
        completion)
            COMPREPLY=($(compgen -W "%s" -- ${cur}))
            ;;
        profile)
            COMPREPLY=($(compgen -W "%s" -- ${cur}))
            ;;
        config)
            COMPREPLY=($(compgen -W "%s" -- ${cur}))
            ;;
        help)
            COMPREPLY=($(compgen -W "${commands}" -- ${cur}))
            ;;
        *)
            COMPREPLY=($(compgen -f -- ${cur}))
            ;;
    esac
    return 0
}

complete -F _folio_completion folio

# To install, source it from ~/.bashrc:
#    source <(folio completion bash)
`,
		strings.Join(c.registry.List(), " "),
		strings.Join(completionShells, " "),
		strings.Join(profileSubcommands, " "),
		strings.Join(configWords(), " "))

	_, err := io.WriteString(w, script)
	return err
}

func (c *CompletionCommand) generateZshCompletion(w io.Writer) error {
	var descriptions strings.Builder
	for _, name := range c.registry.List() {
		if cmd, err := c.registry.Get(name); err == nil {
			fmt.Fprintf(&descriptions, "                '%s:%s'\n", name, zshEscape(cmd.Description()))
		}
	}

	script := fmt.Sprintf(`#compdef folio

# Zsh completion script for folio

_folio() {
    local state line
    typeset -A opt_args

    _arguments -C \
        '1: :->commands' \
        '*: :->args' && return 0

    case "$state" in
        commands)
            local commands
            commands=(
%s            )
            _describe 'commands' commands
            ;;
        args)
            case ${words[2]} in
                completion)
                    _values 'shell' %s
                    ;;
                profile)
                    if (( CURRENT == 3 )); then
                        _values 'profile-subcommand' %s
                    else
                        _files
                    fi
                    ;;
                config)
                    _values 'config-key' %s
                    ;;
                *)
                    _files
                    ;;
            esac
            ;;
    esac
}

_folio "$@"

# To install, put this file in a directory on your $fpath as _folio, or:
#    source <(folio completion zsh)
`,
		descriptions.String(),
		zshValues(completionShells),
		zshValues(profileSubcommands),
		zshValues(configWords()))

	_, err := io.WriteString(w, script)
	return err
}

func zshEscape(s string) string {
	s = strings.ReplaceAll(s, "'", `'\''`)
	return strings.ReplaceAll(s, ":", `\:`)
}

func zshValues(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + w + "'"
	}
	return strings.Join(quoted, " ")
}

func (c *CompletionCommand) generateFishCompletion(w io.Writer) error {
	var completions strings.Builder
	for _, name := range c.registry.List() {
		if cmd, err := c.registry.Get(name); err == nil {
			// single quotes in descriptions would end the fish string
			desc := strings.ReplaceAll(cmd.Description(), "'", `\'`)
			fmt.Fprintf(&completions, "complete -c folio -n '__fish_use_subcommand' -a '%s' -d '%s'\n", name, desc)
		}
	}

	script := fmt.Sprintf(`# Fish completion script for folio

%s
complete -c folio -n '__fish_seen_subcommand_from completion' -a '%s' -d 'Shell'
complete -c folio -n '__fish_seen_subcommand_from profile' -a '%s' -d 'Profile subcommand'
complete -c folio -n '__fish_seen_subcommand_from config' -a '%s' -d 'Config key'

# To install: folio completion fish > ~/.config/fish/completions/folio.fish
`,
		completions.String(),
		strings.Join(completionShells, " "),
		strings.Join(profileSubcommands, " "),
		strings.Join(configWords(), " "))

	_, err := io.WriteString(w, script)
	return err
}
