// Package app is the root bubbletea model of the beezer TUI.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/errmsg"
	"github.com/beezer-app/beezer/internal/install"
	"github.com/beezer-app/beezer/internal/keymap"
	"github.com/beezer-app/beezer/internal/loader"
	"github.com/beezer-app/beezer/internal/playback"
	"github.com/beezer-app/beezer/internal/ui/confirm"
	"github.com/beezer-app/beezer/internal/ui/helpbindings"
	"github.com/beezer-app/beezer/internal/ui/styles"
	"github.com/beezer-app/beezer/internal/ui/tracklist"
)

// Loader runs the load cycle.
type Loader interface {
	Load(ctx context.Context) loader.View
	Subscribe() *loader.Subscription
}

// Playback controls the track preview.
type Playback interface {
	Toggle(ctx context.Context, track catalog.Track) (bool, error)
	Stop()
	Position() time.Duration
	Subscribe() *playback.Subscription
}

// Deps are the collaborators of the model. Prompt and Detector may be nil
// to never offer installation.
type Deps struct {
	Loader   Loader
	Playback Playback
	Prompt   *install.Prompt
	Detector install.Detector
	Messages errmsg.Catalog
	Logger   *zap.Logger
}

// Model is the root application model.
type Model struct {
	deps Deps
	msgs errmsg.Catalog
	log  *zap.Logger
	ctx  context.Context

	keys    *keymap.Resolver
	view    loader.View
	spinner spinner.Model
	tracks  tracklist.Model
	confirm confirm.Model
	help    helpbindings.Model

	loadSub *loader.Subscription
	playSub *playback.Subscription

	playing  int64
	current  catalog.Track // valid while playing != 0
	position time.Duration
	ticking  bool
	status   string // transient error shown under the tracks

	Width  int
	Height int
}

// New builds the model. Subscriptions are taken here so no event emitted
// after Init is missed.
func New(ctx context.Context, deps Deps) Model {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.T().S().Playing

	m := Model{
		deps:    deps,
		msgs:    deps.Messages,
		log:     log.Named("app"),
		ctx:     ctx,
		view:    loader.View{State: loader.StateInit, Loading: true},
		spinner: sp,
		keys:    keymap.NewResolver(keymap.ByContext(keymap.ContextGlobal)),
		tracks:  tracklist.New(deps.Messages.Get(errmsg.MsgTopTracks)),
		confirm: confirm.New(),
		help:    helpbindings.New(),
		Width:   80,
		Height:  24,
	}
	m.resize()
	if deps.Loader != nil {
		m.loadSub = deps.Loader.Subscribe()
	}
	if deps.Playback != nil {
		m.playSub = deps.Playback.Subscribe()
	}
	return m
}

// Init starts loading, the spinner and the event watchers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.LoadCmd(),
		m.WatchTransitions(),
		m.WatchPlayback(),
		m.WatchInstall(),
	)
}

// LoaderView returns the last loader view received.
func (m Model) LoaderView() loader.View {
	return m.view
}

// Playing returns the id of the previewing track, 0 for none.
func (m Model) Playing() int64 {
	return m.playing
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// Close cancels the subscriptions held by the model.
func (m Model) Close() {
	if m.loadSub != nil {
		m.loadSub.Cancel()
	}
	if m.playSub != nil {
		m.playSub.Cancel()
	}
}
