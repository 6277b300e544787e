package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolver_Resolve(t *testing.T) {
	r := NewResolver(Bindings)

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"s", ActionStop},
		{"?", ActionHelp},
		{"k", ActionMoveUp},
		{"up", ActionMoveUp},
		{"j", ActionMoveDown},
		{"G", ActionJumpEnd},
		{" ", ActionPlayPause},
		{"enter", ActionPlayPause},
		{"unknown", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Resolve(tt.key))
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionQuit, []string{"q"}, "Quit", ContextGlobal},
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextTracks},
	})

	assert.Equal(t, []string{"q", "ctrl+c"}, r.KeysFor(ActionQuit), "deduplicated in order")
	assert.Nil(t, r.KeysFor(ActionStop))
}

func TestResolver_ContextScoped(t *testing.T) {
	r := NewResolver(ByContext(ContextGlobal))

	assert.Equal(t, ActionStop, r.Resolve("s"))
	assert.Equal(t, Action(""), r.Resolve("j"), "track keys are not global")
}

func TestResolver_LastBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionStop, []string{"x"}, "Stop", ContextGlobal},
		{ActionQuit, []string{"x"}, "Quit", ContextGlobal},
	})

	assert.Equal(t, ActionQuit, r.Resolve("x"))
}
