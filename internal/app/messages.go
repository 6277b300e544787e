package app

import (
	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/loader"
	"github.com/beezer-app/beezer/internal/playback"
)

// LoadedMsg carries the terminal view of the load cycle.
type LoadedMsg struct {
	View loader.View
}

// TransitionMsg reports a loader state change while loading.
type TransitionMsg struct {
	Transition loader.Transition
}

// PlaybackEventMsg wraps an event of the preview controller.
type PlaybackEventMsg struct {
	Event playback.Event
}

// ProgressTickMsg refreshes the preview progress line.
type ProgressTickMsg struct{}

// ToggleResultMsg is the outcome of a play/stop request.
type ToggleResultMsg struct {
	Track   catalog.Track
	Playing bool
	Err     error
}

// InstallOfferMsg asks the model to show the install popup.
type InstallOfferMsg struct{}

// InstallResultMsg is the outcome of an accepted install.
type InstallResultMsg struct {
	Err error
}

// installContext tags the confirm popup used for installation.
type installContext struct{}
