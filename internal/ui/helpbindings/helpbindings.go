// Package helpbindings provides a scrollable popup for displaying keybindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/beezer-app/beezer/internal/keymap"
	"github.com/beezer-app/beezer/internal/ui"
	"github.com/beezer-app/beezer/internal/ui/popup"
	"github.com/beezer-app/beezer/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// CloseMsg signals the help popup was dismissed.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{keymap.ContextGlobal, keymap.ContextTracks}

// categoryLabels maps context names to display labels.
var categoryLabels = map[string]string{
	keymap.ContextGlobal: "Global",
	keymap.ContextTracks: "Tracks",
}

// Model holds the state for the help bindings popup.
type Model struct {
	ui.Base
	title        string
	bindings     []keymap.Binding
	active       bool
	scrollOffset int
}

// New creates a hidden help popup listing every binding.
func New() Model {
	var bindings []keymap.Binding
	for _, ctx := range categoryOrder {
		bindings = append(bindings, keymap.ByContext(ctx)...)
	}
	return Model{bindings: bindings}
}

// Show displays the popup scrolled to the top.
func (m *Model) Show(title string, width, height int) {
	m.title = title
	m.SetSize(width, height)
	m.active = true
	m.scrollOffset = 0
}

// Active returns whether the popup is shown.
func (m Model) Active() bool {
	return m.active
}

// Init implements popup.Popup.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements popup.Popup.
func (m *Model) Update(msg tea.Msg) (popup.Popup, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.active {
		return m, nil
	}

	switch keyMsg.String() {
	case "?", "esc", "q":
		m.active = false
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	lines := strings.Split(m.buildContent(), "\n")

	// Width from all lines keeps the box steady while scrolling
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := lines[start:end]
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	var b strings.Builder
	b.WriteString(s.Title.Render(m.title))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(visible, "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render(m.buildFooter()))
	return b.String()
}

func (m Model) buildContent() string {
	s := styles.T().S()
	keyStyle := s.Cursor.Bold(true)

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	var sb strings.Builder
	currentContext := ""
	for _, b := range m.bindings {
		if b.Context != currentContext {
			if currentContext != "" {
				sb.WriteString("\n")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			sb.WriteString(s.Warning.Bold(true).Render(label))
			sb.WriteString("\n")
			sb.WriteString(s.Subtle.Render(strings.Repeat("─", maxKeyWidth+15)))
			sb.WriteString("\n")
			currentContext = b.Context
		}

		key := keyLabel(b)
		sb.WriteString(keyStyle.Render(key + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(key))))
		sb.WriteString("  ")
		sb.WriteString(s.Base.Render(b.Description))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// keyLabel joins the keys of b, naming the space bar.
func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	return strings.Join(keys, ", ")
}

func (m Model) buildFooter() string {
	if m.totalLines() <= m.visibleHeight() {
		return "?/esc"
	}
	return "j/k · ?/esc"
}

func (m Model) visibleHeight() int {
	// title, footer, border and padding
	return max(m.Height()-10, 5)
}

func (m Model) totalLines() int {
	return strings.Count(m.buildContent(), "\n") + 1
}

func (m Model) maxScroll() int {
	return max(m.totalLines()-m.visibleHeight(), 0)
}
