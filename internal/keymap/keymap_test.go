package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindings_NoDuplicateKeysPerContext(t *testing.T) {
	seen := make(map[string]map[string]Action)
	for _, b := range Bindings {
		if seen[b.Context] == nil {
			seen[b.Context] = make(map[string]Action)
		}
		for _, key := range b.Keys {
			prev, dup := seen[b.Context][key]
			assert.False(t, dup, "key %q bound to %s and %s in %s", key, prev, b.Action, b.Context)
			seen[b.Context][key] = b.Action
		}
	}
}

func TestBindings_HaveDescriptions(t *testing.T) {
	for _, b := range Bindings {
		assert.NotEmpty(t, b.Description, "action %s", b.Action)
		assert.NotEmpty(t, b.Keys, "action %s", b.Action)
	}
}

func TestByContext(t *testing.T) {
	global := ByContext(ContextGlobal)
	for _, b := range global {
		assert.Equal(t, ContextGlobal, b.Context)
	}
	assert.Len(t, global, 3)

	tracks := ByContext(ContextTracks)
	assert.Len(t, tracks, 5)

	assert.Empty(t, ByContext("unknown"))
}
