// internal/player/interface.go
package player

import (
	"context"
	"time"
)

// Stream is one playing audio source.
type Stream interface {
	URL() string
	State() State
	Pause()
	Resume()
	// Close pauses the stream and detaches its source. Idempotent.
	Close() error
	// Done is closed when the stream ends, naturally or through Close.
	Done() <-chan struct{}
	Position() time.Duration
}

// Interface opens audio streams. Each call to Play returns a new stream that
// is already playing; the caller owns it and must Close it.
type Interface interface {
	Play(ctx context.Context, url string) (Stream, error)
}

// Verify implementations at compile time.
var (
	_ Interface = (*HTTP)(nil)
	_ Stream    = (*httpStream)(nil)
)
