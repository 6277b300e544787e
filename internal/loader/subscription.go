package loader

import "sync"

const transitionBufferSize = 8

// Transition is emitted on every state change.
type Transition struct {
	From State
	To   State
}

// Subscription delivers transitions until cancelled.
type Subscription struct {
	Transitions <-chan Transition

	ch     chan Transition
	once   sync.Once
	cancel func(*Subscription)
}

// Cancel stops delivery and closes Transitions. Safe to call more than once.
func (s *Subscription) Cancel() {
	s.once.Do(func() {
		s.cancel(s)
		close(s.ch)
	})
}

// send delivers t without blocking; slow subscribers drop events.
func (s *Subscription) send(t Transition) {
	select {
	case s.ch <- t:
	default:
	}
}
