// Package tracklist renders the top tracks with a cursor and a play marker.
package tracklist

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/keymap"
	"github.com/beezer-app/beezer/internal/ui"
	"github.com/beezer-app/beezer/internal/ui/styles"
)

const (
	markerPlaying = "■"
	markerIdle    = "▶"
)

// ToggleMsg asks the app to play or stop a track.
type ToggleMsg struct {
	Track catalog.Track
}

// Model is the scrollable track list.
type Model struct {
	ui.Base
	title   string
	tracks  []catalog.Track
	playing int64 // id of the previewing track, 0 for none
	pos     int
	offset  int
	focused bool
}

var keys = keymap.NewResolver(keymap.ByContext(keymap.ContextTracks))

// New creates an empty list with the given panel title.
func New(title string) Model {
	return Model{title: title, focused: true}
}

// SetTracks replaces the tracks and keeps the cursor in range.
func (m *Model) SetTracks(tracks []catalog.Track) {
	m.tracks = tracks
	m.pos = min(m.pos, max(len(tracks)-1, 0))
	m.scroll()
}

// SetPlaying marks the track being previewed; 0 clears the marker.
func (m *Model) SetPlaying(id int64) {
	m.playing = id
}

// SetFocused sets whether keys go to the list.
func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

// Selected returns the track under the cursor.
func (m Model) Selected() (catalog.Track, bool) {
	if len(m.tracks) == 0 {
		return catalog.Track{}, false
	}
	return m.tracks[m.pos], true
}

// Cursor returns the cursor index.
func (m Model) Cursor() int {
	return m.pos
}

func (m Model) rows() int {
	return max(m.Height()-ui.PanelOverhead, 1)
}

// Update handles navigation and the toggle keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}

	switch keys.Resolve(keyMsg.String()) {
	case keymap.ActionMoveUp:
		m.move(-1)
	case keymap.ActionMoveDown:
		m.move(1)
	case keymap.ActionJumpStart:
		m.move(-len(m.tracks))
	case keymap.ActionJumpEnd:
		m.move(len(m.tracks))
	case keymap.ActionPlayPause:
		if t, ok := m.Selected(); ok {
			return m, func() tea.Msg { return ToggleMsg{Track: t} }
		}
	}
	return m, nil
}

func (m *Model) move(delta int) {
	if len(m.tracks) == 0 {
		return
	}
	m.pos = min(max(m.pos+delta, 0), len(m.tracks)-1)
	m.scroll()
}

// scroll keeps the cursor ScrollMargin rows away from the edges.
func (m *Model) scroll() {
	rows := m.rows()
	if m.pos < m.offset+ui.ScrollMargin {
		m.offset = max(m.pos-ui.ScrollMargin, 0)
	}
	if m.pos >= m.offset+rows-ui.ScrollMargin {
		m.offset = m.pos - rows + ui.ScrollMargin + 1
	}
	m.offset = min(max(m.offset, 0), max(len(m.tracks)-rows, 0))
}

// View renders the list inside a panel.
func (m Model) View() string {
	s := styles.T().S()
	inner := max(m.Width()-4, ui.MinWidth-4)

	var b strings.Builder
	b.WriteString(s.Title.Render(m.title))
	b.WriteString("\n")

	end := min(m.offset+m.rows(), len(m.tracks))
	for i := m.offset; i < end; i++ {
		b.WriteString("\n")
		b.WriteString(m.renderRow(m.tracks[i], i == m.pos, inner))
	}

	panel := s.Panel
	if m.focused {
		panel = s.Focused
	}
	return panel.Width(inner + 2).Render(b.String())
}

func (m Model) renderRow(t catalog.Track, selected bool, width int) string {
	s := styles.T().S()

	marker := markerIdle
	if t.ID == m.playing {
		marker = markerPlaying
	}
	if !t.HasPreview() {
		marker = " "
	}

	duration := t.FormatDuration()
	// marker, space, rank, space, title, space, duration
	prefix := fmt.Sprintf("%s %d. ", marker, t.Rank+1)
	titleWidth := max(width-runewidth.StringWidth(prefix)-len(duration)-1, 1)
	title := runewidth.FillRight(runewidth.Truncate(t.Title, titleWidth, "…"), titleWidth)
	row := prefix + title + " " + duration

	switch {
	case selected && m.focused:
		return s.Cursor.Render(row)
	case t.ID == m.playing:
		return s.Playing.Render(row)
	default:
		return s.Base.Render(row)
	}
}
