package playback

import "sync"

const eventBufferSize = 16

// Subscription delivers playback events until cancelled.
type Subscription struct {
	Events <-chan Event

	ch     chan Event
	once   sync.Once
	cancel func(*Subscription)
}

func newSubscription(cancel func(*Subscription)) *Subscription {
	ch := make(chan Event, eventBufferSize)
	return &Subscription{Events: ch, ch: ch, cancel: cancel}
}

// Cancel stops delivery and closes Events. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.cancel(s)
		close(s.ch)
	})
}

// send delivers e without blocking; drops when the buffer is full.
func (s *Subscription) send(e Event) {
	select {
	case s.ch <- e:
	default:
	}
}
