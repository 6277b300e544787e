package app

import (
	"strings"

	"github.com/beezer-app/beezer/internal/errmsg"
	"github.com/beezer-app/beezer/internal/keymap"
	"github.com/beezer-app/beezer/internal/ui"
	"github.com/beezer-app/beezer/internal/ui/artistpanel"
	"github.com/beezer-app/beezer/internal/ui/playerbar"
	"github.com/beezer-app/beezer/internal/ui/popup"
	"github.com/beezer-app/beezer/internal/ui/styles"
)

const (
	artistPanelHeight = 8
	statusHeight      = 3
)

// View renders the UI.
func (m Model) View() string {
	width := max(m.Width, ui.MinWidth)
	s := styles.T().S()

	var body string
	switch {
	case m.loading():
		body = m.spinner.View() + " " + s.Base.Render(m.msgs.Get(errmsg.MsgLoading))
	case m.view.Error != "":
		body = s.Error.Render(m.view.Error)
	case m.view.NotFound || m.view.Artist == nil:
		body = s.Warning.Render(m.msgs.Get(errmsg.MsgArtistNotFound))
	default:
		body = m.renderArtist(width)
	}

	if m.playing != 0 {
		body += "\n" + playerbar.Render(m.current, m.position, width)
	}
	if m.status != "" {
		body += "\n" + s.Warning.Render(m.status)
	}
	body += "\n" + s.Subtle.Render(m.hints())

	var overlay string
	switch {
	case m.confirm.Active():
		overlay = m.confirm.View()
	case m.help.Active():
		overlay = m.help.View()
	}
	if overlay != "" && m.Height > 0 {
		if n := strings.Count(body, "\n") + 1; n < m.Height {
			body += strings.Repeat("\n", m.Height-n)
		}
		box := popup.Bordered(overlay, width, m.Height)
		return popup.Compose(body, box, width)
	}
	return body
}

// hints lists the track keys and the first key of each global action.
func (m Model) hints() string {
	parts := []string{"↑↓", "enter/space ▶/■"}
	for _, h := range []struct {
		action keymap.Action
		label  string
	}{
		{keymap.ActionStop, "stop"},
		{keymap.ActionHelp, "help"},
		{keymap.ActionQuit, "quit"},
	} {
		if keys := m.keys.KeysFor(h.action); len(keys) > 0 {
			parts = append(parts, keys[0]+" "+h.label)
		}
	}
	return strings.Join(parts, " · ")
}

func (m Model) renderArtist(width int) string {
	var b strings.Builder
	b.WriteString(artistpanel.Render(m.view.Artist, m.msgs, m.view.FromCache, width))
	b.WriteString("\n")
	b.WriteString(m.tracks.View())
	return b.String()
}
