package playback

import "github.com/beezer-app/beezer/internal/catalog"

// EventKind identifies what happened to the active preview.
type EventKind int

const (
	// Started is emitted after a new preview begins.
	Started EventKind = iota
	// Stopped is emitted when a preview is released by Stop or by a newer Play.
	Stopped
	// Finished is emitted when a preview plays to its end.
	Finished
)

// String returns the kind name.
func (k EventKind) String() string {
	switch k {
	case Started:
		return "Started"
	case Stopped:
		return "Stopped"
	case Finished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Event reports a change of the active preview.
type Event struct {
	Kind  EventKind
	Track catalog.Track
}
