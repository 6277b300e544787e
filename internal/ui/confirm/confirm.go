// Package confirm provides a two-button yes/no popup.
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/beezer-app/beezer/internal/ui"
	"github.com/beezer-app/beezer/internal/ui/popup"
	"github.com/beezer-app/beezer/internal/ui/styles"
)

// Compile-time check that Model implements popup.Popup.
var _ popup.Popup = (*Model)(nil)

// Result is sent once the user answers.
type Result struct {
	Confirmed bool
	Context   any // passed through from Show
}

// Labels are the button captions.
type Labels struct {
	Yes string
	No  string
}

// Model is a yes/no confirmation popup.
type Model struct {
	ui.Base
	title   string
	message string
	labels  Labels
	context any
	active  bool
	yes     bool // yes button selected
}

// New creates a hidden confirmation popup.
func New() Model {
	return Model{}
}

// Show displays the popup with the yes button selected.
func (m *Model) Show(title, message string, labels Labels, context any, width, height int) {
	m.title = title
	m.message = message
	m.labels = labels
	m.context = context
	m.SetSize(width, height)
	m.active = true
	m.yes = true
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
	if !m.active {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "right", "tab", "h", "l":
		m.yes = !m.yes
	case "enter":
		return m, m.answer(m.yes)
	case "y", "Y":
		return m, m.answer(true)
	case "esc", "n", "N":
		return m, m.answer(false)
	}
	return m, nil
}

func (m *Model) answer(confirmed bool) tea.Cmd {
	m.active = false
	ctx := m.context
	return func() tea.Msg {
		return Result{Confirmed: confirmed, Context: ctx}
	}
}

// View implements popup.Popup.
func (m *Model) View() string {
	if !m.active || m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()

	yes, no := s.Muted, s.Muted
	if m.yes {
		yes = s.Cursor.Bold(true)
	} else {
		no = s.Cursor.Bold(true)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		yes.Render(" "+m.labels.Yes+" "),
		"  ",
		no.Render(" "+m.labels.No+" "),
	)

	return s.Playing.Render(m.title) + "\n\n" +
		s.Base.Render(m.message) + "\n\n" +
		buttons + "\n\n" +
		s.Subtle.Render("←→ · enter · esc")
}
