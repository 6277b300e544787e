package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrack_FormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration int
		expected string
	}{
		{"zero", 0, "0:00"},
		{"under a minute", 7, "0:07"},
		{"exact minute", 60, "1:00"},
		{"typical song", 215, "3:35"},
		{"over ten minutes", 671, "11:11"},
		{"negative clamps to zero", -5, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Track{Duration: tt.duration}
			assert.Equal(t, tt.expected, tr.FormatDuration())
		})
	}
}

func TestArtist_FansLabel(t *testing.T) {
	a := Artist{Fans: 1234567}
	assert.Equal(t, "1,234,567", a.FansLabel())

	a.Fans = 999
	assert.Equal(t, "999", a.FansLabel())
}

func TestTrack_HasPreview(t *testing.T) {
	assert.False(t, (&Track{}).HasPreview())
	assert.True(t, (&Track{PreviewURL: "https://cdn/preview.mp3"}).HasPreview())
}
