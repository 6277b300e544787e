package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelToVolume(t *testing.T) {
	assert.InDelta(t, 0.0, levelToVolume(1), 1e-9)
	assert.InDelta(t, -1.0, levelToVolume(0.5), 1e-9)
	assert.InDelta(t, -2.0, levelToVolume(0.25), 1e-9)
	assert.InDelta(t, -10.0, levelToVolume(0), 1e-9)
	assert.InDelta(t, 0.0, levelToVolume(3), 1e-9)
}

func TestHTTP_SetVolume_Clamps(t *testing.T) {
	h := New()
	assert.InDelta(t, 1.0, h.Volume(), 1e-9)

	h.SetVolume(0.3)
	assert.InDelta(t, 0.3, h.Volume(), 1e-9)

	h.SetVolume(-1)
	assert.InDelta(t, 0.0, h.Volume(), 1e-9)

	h.SetVolume(7)
	assert.InDelta(t, 1.0, h.Volume(), 1e-9)
}
