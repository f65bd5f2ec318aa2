package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t, "whoami", "help", "skills")

	spec, ok := r.Lookup("WHOAMI")
	require.True(t, ok)
	assert.Equal(t, "whoami", spec.Name)
	assert.Equal(t, "ran whoami", spec.Action().String())

	_, ok = r.Lookup("nope")
	assert.False(t, ok)

	assert.Equal(t, []string{"help", "skills", "whoami"}, r.Names())
	assert.Equal(t, 3, r.Len())

	specs := r.Specs()
	require.Len(t, specs, 3)
	assert.Equal(t, "help", specs[0].Name)
}

func TestRegistryNamesIsACopy(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t, "a", "b")
	names := r.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, r.Names())
}

func TestRegistryRejectsInvalid(t *testing.T) {
	t.Parallel()
	noop := func() Output { return Output{} }
	tests := []struct {
		name string
		spec CommandSpec
		err  error
	}{
		{name: "empty", spec: CommandSpec{Action: noop}, err: ErrInvalidCommandName},
		{name: "space", spec: CommandSpec{Name: "who ami", Action: noop}, err: ErrInvalidCommandName},
		{name: "upper", spec: CommandSpec{Name: "Help", Action: noop}, err: ErrInvalidCommandName},
		{name: "builtin", spec: CommandSpec{Name: "clear", Action: noop}, err: ErrInvalidCommandName},
		{name: "no action", spec: CommandSpec{Name: "x"}, err: ErrInvalidCommandName},
		{name: "duplicate", spec: CommandSpec{Name: "help", Action: noop}, err: ErrDuplicateCommand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(t, "help")
			err := r.Register(tt.spec)
			require.ErrorIs(t, err, tt.err)
			assert.Equal(t, 1, r.Len())
		})
	}
}

func TestNewRegistryPropagatesErrors(t *testing.T) {
	t.Parallel()
	noop := func() Output { return Output{} }
	_, err := NewRegistry(
		CommandSpec{Name: "a", Action: noop},
		CommandSpec{Name: "a", Action: noop},
	)
	require.ErrorIs(t, err, ErrDuplicateCommand)
}

func TestRegistryComplete(t *testing.T) {
	t.Parallel()
	r := newTestRegistry(t, "help", "hello", "history-notes", "whoami")

	assert.Equal(t, []string{"hello", "help"}, r.Complete("he"))
	assert.Equal(t, []string{"hello", "help"}, r.Complete("HE"))
	assert.Equal(t, []string{"whoami"}, r.Complete("w"))
	assert.Nil(t, r.Complete("z"))
	assert.Equal(t, r.Names(), r.Complete(""))
}
