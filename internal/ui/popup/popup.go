// Package popup renders modal boxes over the main view.
package popup

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/beezer-app/beezer/internal/ui/styles"
)

// Popup is a modal component.
type Popup interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Popup, tea.Cmd)
	// View renders the content without border or centering.
	View() string
	SetSize(width, height int)
}

// Bordered wraps content in a rounded border sized to fit the screen.
func Bordered(content string, screenW, screenH int) string {
	width := min(widest(content)+6, screenW-4)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Padding(1, 2).
		Width(max(width-2, 0)).
		Render(content)
	return Center(box, screenW, screenH)
}

// Center pads box so it sits in the middle of the screen.
func Center(box string, screenW, screenH int) string {
	lines := strings.Split(box, "\n")
	padTop := max((screenH-len(lines))/2, 0)
	padLeft := max((screenW-widest(box))/2, 0)

	var b strings.Builder
	for range padTop {
		b.WriteString("\n")
	}
	left := strings.Repeat(" ", padLeft)
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(left)
		b.WriteString(line)
	}
	return b.String()
}

// Compose draws the visible part of each top line over base.
func Compose(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(top, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimLeft(plain, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		start := len(plain) - len(trimmed)
		end := start + ansi.StringWidth(strings.TrimRight(trimmed, " "))

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}
		prefix := ansi.Cut(under, 0, start)
		if w := ansi.StringWidth(prefix); w < start {
			prefix += strings.Repeat(" ", start-w)
		}
		baseLines[i] = prefix + ansi.Cut(line, start, end) + ansi.Cut(under, end, width)
	}

	return strings.Join(baseLines, "\n")
}

func widest(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}
