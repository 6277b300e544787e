package loader

// State is a step of the load cycle.
//
//	Init → CheckingCache → ServingCache → Ready
//	                     ↘ Fetching     → Ready | Failed
//
// Ready and Failed are terminal for the process: a new cycle only starts on
// the next run of the application.
type State int

const (
	StateInit State = iota
	StateCheckingCache
	StateServingCache
	StateFetching
	StateReady
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateCheckingCache:
		return "CheckingCache"
	case StateServingCache:
		return "ServingCache"
	case StateFetching:
		return "Fetching"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// IsTerminal returns true for Ready and Failed.
func (s State) IsTerminal() bool {
	return s == StateReady || s == StateFailed
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
