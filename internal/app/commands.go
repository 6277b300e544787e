package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/beezer-app/beezer/internal/catalog"
)

// LoadCmd runs the load cycle and reports its terminal view.
func (m Model) LoadCmd() tea.Cmd {
	if m.deps.Loader == nil {
		return nil
	}
	ld, ctx := m.deps.Loader, m.ctx
	return func() tea.Msg {
		return LoadedMsg{View: ld.Load(ctx)}
	}
}

// WatchTransitions waits for the next loader transition.
// Returns nil once the subscription is closed.
func (m Model) WatchTransitions() tea.Cmd {
	if m.loadSub == nil {
		return nil
	}
	ch := m.loadSub.Transitions
	return func() tea.Msg {
		t, ok := <-ch
		if !ok {
			return nil
		}
		return TransitionMsg{Transition: t}
	}
}

// WatchPlayback waits for the next preview event.
func (m Model) WatchPlayback() tea.Cmd {
	if m.playSub == nil {
		return nil
	}
	ch := m.playSub.Events
	return func() tea.Msg {
		e, ok := <-ch
		if !ok {
			return nil
		}
		return PlaybackEventMsg{Event: e}
	}
}

// WatchInstall asks the detector once and requests the popup when
// installing is possible.
func (m Model) WatchInstall() tea.Cmd {
	p, d := m.deps.Prompt, m.deps.Detector
	if p == nil || d == nil {
		return nil
	}
	ctx, log := m.ctx, m.log
	return func() tea.Msg {
		offered, err := p.Watch(ctx, d)
		if err != nil {
			log.Warn("install detection failed", zap.Error(err))
			return nil
		}
		if !offered {
			return nil
		}
		return InstallOfferMsg{}
	}
}

// ToggleCmd plays track, or stops it when it is already playing.
func (m Model) ToggleCmd(track catalog.Track) tea.Cmd {
	if m.deps.Playback == nil {
		return nil
	}
	pb, ctx := m.deps.Playback, m.ctx
	return func() tea.Msg {
		playing, err := pb.Toggle(ctx, track)
		return ToggleResultMsg{Track: track, Playing: playing, Err: err}
	}
}

const progressInterval = time.Second

// ProgressTick schedules the next progress refresh.
func ProgressTick() tea.Cmd {
	return tea.Tick(progressInterval, func(time.Time) tea.Msg {
		return ProgressTickMsg{}
	})
}

// AcceptInstallCmd runs the installer.
func (m Model) AcceptInstallCmd() tea.Cmd {
	p := m.deps.Prompt
	return func() tea.Msg {
		return InstallResultMsg{Err: p.Accept()}
	}
}
