package player

import (
	"math"
)

// SetVolume sets the volume level (0.0 to 1.0) used for new streams.
func (h *HTTP) SetVolume(level float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.volumeLevel = clampLevel(level)
}

// Volume returns the current volume level (0.0 to 1.0).
func (h *HTTP) Volume() float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.volumeLevel
}

// SetMuted silences new streams.
func (h *HTTP) SetMuted(muted bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.muted = muted
}

func clampLevel(level float64) float64 {
	return math.Min(math.Max(level, 0), 1)
}

// levelToVolume converts a 0.0-1.0 level to beep's Volume value.
// beep uses a logarithmic scale where Volume is in "decibels" with base 2.
// We map: 1.0 -> 0, 0.5 -> -1, 0.25 -> -2, 0 -> -10 (essentially silent)
func levelToVolume(level float64) float64 {
	if level <= 0 {
		return -10
	}
	if level >= 1 {
		return 0
	}
	return math.Log2(level)
}
