package app

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/beezer-app/beezer/internal/errmsg"
	"github.com/beezer-app/beezer/internal/keymap"
	"github.com/beezer-app/beezer/internal/playback"
	"github.com/beezer-app/beezer/internal/ui/confirm"
	"github.com/beezer-app/beezer/internal/ui/helpbindings"
	"github.com/beezer-app/beezer/internal/ui/tracklist"
)

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case TransitionMsg:
		if m.view.State.IsTerminal() {
			// LoadedMsg already arrived
			return m, nil
		}
		m.view.State = msg.Transition.To
		if msg.Transition.To.IsTerminal() {
			return m, nil
		}
		return m, m.WatchTransitions()

	case LoadedMsg:
		m.view = msg.View
		m.tracks.SetTracks(msg.View.TopTracks)
		m.log.Debug("view loaded",
			zap.Stringer("state", msg.View.State),
			zap.Bool("from_cache", msg.View.FromCache),
			zap.Int("tracks", len(msg.View.TopTracks)))
		return m, nil

	case tracklist.ToggleMsg:
		m.status = ""
		return m, m.ToggleCmd(msg.Track)

	case ToggleResultMsg:
		return m.handleToggleResult(msg)

	case PlaybackEventMsg:
		m.applyPlaybackEvent(msg.Event)
		if m.playing != 0 && !m.ticking {
			m.ticking = true
			return m, tea.Batch(m.WatchPlayback(), ProgressTick())
		}
		return m, m.WatchPlayback()

	case ProgressTickMsg:
		if m.playing == 0 || m.deps.Playback == nil {
			m.ticking = false
			return m, nil
		}
		m.position = m.deps.Playback.Position()
		return m, ProgressTick()

	case InstallOfferMsg:
		m.confirm.Show(
			m.msgs.Get(errmsg.MsgInstallTitle),
			m.msgs.Get(errmsg.MsgInstallQuestion),
			confirm.Labels{Yes: m.msgs.Get(errmsg.MsgInstallAccept), No: m.msgs.Get(errmsg.MsgInstallDecline)},
			installContext{},
			m.Width, m.Height,
		)
		m.tracks.SetFocused(false)
		return m, nil

	case helpbindings.CloseMsg:
		m.tracks.SetFocused(!m.confirm.Active())
		return m, nil

	case confirm.Result:
		return m.handleConfirm(msg)

	case InstallResultMsg:
		if msg.Err != nil {
			m.status = errmsg.Format(errmsg.OpInstall, msg.Err)
			m.log.Warn("install failed", zap.Error(msg.Err))
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.confirm.Active() {
		_, cmd := m.confirm.Update(msg)
		return m, cmd
	}
	if m.help.Active() {
		_, cmd := m.help.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.help.Show(m.msgs.Get(errmsg.MsgHelpTitle), m.Width, m.Height)
		m.tracks.SetFocused(false)
		return m, nil
	case keymap.ActionStop:
		if m.deps.Playback != nil {
			m.deps.Playback.Stop()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tracks, cmd = m.tracks.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	if m.deps.Playback != nil {
		m.deps.Playback.Stop()
	}
	return m, tea.Quit
}

func (m Model) handleToggleResult(msg ToggleResultMsg) (tea.Model, tea.Cmd) {
	if msg.Err == nil || errors.Is(msg.Err, playback.ErrSuperseded) {
		return m, nil
	}
	if errors.Is(msg.Err, playback.ErrNoPreview) {
		m.status = m.msgs.Get(errmsg.MsgNoPreview)
		return m, nil
	}
	m.status = errmsg.FormatWith(errmsg.OpPlaybackStart, msg.Track.Title, msg.Err)
	m.log.Warn("preview failed", zap.Int64("track", msg.Track.ID), zap.Error(msg.Err))
	return m, nil
}

func (m *Model) applyPlaybackEvent(e playback.Event) {
	switch e.Kind {
	case playback.Started:
		m.playing = e.Track.ID
		m.current = e.Track
		m.position = 0
	case playback.Stopped, playback.Finished:
		if m.playing == e.Track.ID {
			m.playing = 0
		}
	}
	m.tracks.SetPlaying(m.playing)
}

func (m Model) handleConfirm(msg confirm.Result) (tea.Model, tea.Cmd) {
	if _, ok := msg.Context.(installContext); !ok || m.deps.Prompt == nil {
		return m, nil
	}
	m.tracks.SetFocused(!m.help.Active())
	if msg.Confirmed {
		return m, m.AcceptInstallCmd()
	}
	if err := m.deps.Prompt.Decline(); err != nil {
		m.log.Debug("decline ignored", zap.Error(err))
	}
	return m, nil
}

func (m Model) loading() bool {
	return !m.view.State.IsTerminal()
}

func (m *Model) resize() {
	m.tracks.SetSize(m.Width, max(m.Height-artistPanelHeight-statusHeight, 0))
	m.confirm.SetSize(m.Width, m.Height)
	m.help.SetSize(m.Width, m.Height)
}
