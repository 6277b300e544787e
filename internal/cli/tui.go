package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/beezer-app/beezer/internal/app"
	"github.com/beezer-app/beezer/internal/config"
	"github.com/beezer-app/beezer/internal/errmsg"
	"github.com/beezer-app/beezer/internal/install"
	"github.com/beezer-app/beezer/internal/mpris"
	"github.com/beezer-app/beezer/internal/notify"
	"github.com/beezer-app/beezer/internal/playback"
	"github.com/beezer-app/beezer/internal/player"
	"github.com/beezer-app/beezer/internal/stderr"
)

func runTUI(ctx context.Context, cfg *config.Config) error {
	rt, err := setup(ctx, cfg, nil)
	if err != nil {
		return err
	}
	defer rt.Close()

	// Capture ALSA noise before the speaker is initialized.
	capture := stderr.New(rt.log)
	if err := capture.Start(); err != nil {
		rt.log.Warn("stderr capture disabled", zap.Error(err))
	}
	defer capture.Stop()

	p := player.New()
	applyVolume(p, cfg.Volume)
	ctrl := playback.New(p, rt.log)
	defer ctrl.Close()

	if !cfg.Desktop.DisableNotifications {
		followNotifications(rt, ctrl)
	}
	if !cfg.Desktop.DisableMPRIS {
		adapter, err := mpris.New(ctrl, rt.loader)
		if err != nil {
			rt.log.Warn("mpris disabled", zap.Error(err))
		} else {
			defer adapter.Close()
		}
	}

	deps := app.Deps{
		Loader:   rt.loader,
		Playback: ctrl,
		Messages: rt.msgs,
		Logger:   rt.log,
	}
	if !cfg.Install.Disabled {
		desktop := &install.Desktop{Exec: executable()}
		prompt := install.NewPrompt(desktop)
		defer logInstallEvents(rt.log, prompt)()
		deps.Prompt = prompt
		deps.Detector = desktop
	}

	model := app.New(ctx, deps)
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		capture.WriteOriginal(errmsg.Format(errmsg.OpInitialize, err) + "\n")
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// followNotifications shows a desktop notification per started preview
// until the controller closes.
func followNotifications(rt *runtime, ctrl *playback.Controller) {
	n, err := notify.New()
	if err != nil {
		rt.log.Warn("notifications disabled", zap.Error(err))
		return
	}
	sub := ctrl.Subscribe()
	go notify.Follow(sub.Events, n, func() string {
		if a := rt.loader.View().Artist; a != nil {
			return a.Name
		}
		return ""
	})
}

type volumeSetter interface {
	SetVolume(level float64)
	SetMuted(muted bool)
}

// applyVolume maps the 0-100 config volume onto p; 0 mutes.
func applyVolume(p volumeSetter, volume int) {
	p.SetMuted(volume == 0)
	p.SetVolume(float64(volume) / 100)
}

// logInstallEvents records install prompt transitions until the returned
// cancel function is called.
func logInstallEvents(log *zap.Logger, p *install.Prompt) func() {
	return p.Subscribe(func(ev install.Event) {
		if ev.Err != nil {
			log.Warn("desktop install failed",
				zap.Stringer("from", ev.From), zap.Stringer("to", ev.To), zap.Error(ev.Err))
			return
		}
		log.Info("install prompt",
			zap.Stringer("from", ev.From), zap.Stringer("to", ev.To))
	})
}

func executable() string {
	path, err := os.Executable()
	if err != nil {
		return "beezer"
	}
	return path
}
