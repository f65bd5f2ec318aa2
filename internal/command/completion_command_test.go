package command

import (
	"strings"
	"testing"

	"github.com/joeycumines/folio/internal/config"
)

func TestCompletionCommand(t *testing.T) {
	t.Parallel()
	registry := NewRegistry()
	registry.Register(NewHelpCommand(registry))
	registry.Register(NewVersionCommand("1.0.0"))
	registry.Register(NewProfileCommand(config.NewConfig()))
	registry.Register(NewCompletionCommand(registry))

	tests := []struct {
		name        string
		args        []string
		expectError bool
		contains    []string
	}{
		{name: "default is bash", contains: []string{"_folio_completion", "complete -F _folio_completion folio", "help profile version"}},
		{name: "bash", args: []string{"bash"}, contains: []string{`compgen -W "show validate path"`, "terminal.height"}},
		{name: "zsh", args: []string{"ZSH"}, contains: []string{"#compdef folio", "'version:Display version information'", "'bash' 'zsh' 'fish'"}},
		{name: "fish", args: []string{"fish"}, contains: []string{"complete -c folio -n '__fish_use_subcommand' -a 'profile'", "exec.format"}},
		{name: "unsupported shell", args: []string{"powershell"}, expectError: true},
		{name: "too many arguments", args: []string{"bash", "zsh"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, _, err := run(t, NewCompletionCommand(registry), tt.args...)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, part := range tt.contains {
				if !strings.Contains(out, part) {
					t.Errorf("expected %q in output:\n%s", part, out)
				}
			}
		})
	}
}
