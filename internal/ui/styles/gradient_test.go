package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestGradient_KeepsText(t *testing.T) {
	tests := []string{"", "a", "Charles Ans", "Peso Pluma ✨"}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			out := Gradient(text, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff"), true)
			assert.Equal(t, text, ansi.Strip(out))
		})
	}
}

func TestBlend_Endpoints(t *testing.T) {
	colors := blend(3, lipgloss.Color("#ff0000"), lipgloss.Color("#0000ff"))
	assert.Len(t, colors, 3)
	assert.Less(t, colors[0].DistanceRgb(toColorful("#ff0000")), 0.02)
	assert.Less(t, colors[2].DistanceRgb(toColorful("#0000ff")), 0.02)
}

func TestToColorful_AnsiFallsBackToGray(t *testing.T) {
	c := toColorful(lipgloss.Color("212"))
	assert.Equal(t, "#808080", c.Hex())
}
