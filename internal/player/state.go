// internal/player/state.go
package player

// State is the state of one preview stream.
//
//	Playing ──pause──▶ Paused
//	   ▲                 │
//	   └─────resume──────┘
//
// Close moves either state to Stopped, which is final: a stopped stream
// has released its source and cannot be resumed.
type State int

const (
	Stopped State = iota
	Playing
	Paused
)

// String returns the state name for debugging.
func (s State) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Playing:
		return "Playing"
	case Paused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsActive returns true if the stream still holds its source.
func (s State) IsActive() bool {
	return s == Playing || s == Paused
}
