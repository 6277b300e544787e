// Package install offers to install a desktop launcher for beezer.
package install

import (
	"context"
	"errors"
	"sync"
)

// ErrNotOffered is returned by Accept and Decline when no offer is pending.
var ErrNotOffered = errors.New("install not offered")

// Detector reports whether installing is possible.
type Detector interface {
	Available(ctx context.Context) (bool, error)
}

// Installer performs the installation.
type Installer interface {
	Install() error
}

// State is the prompt state.
type State int

const (
	Hidden State = iota
	Offered
	Accepted
	Declined
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Hidden:
		return "Hidden"
	case Offered:
		return "Offered"
	case Accepted:
		return "Accepted"
	case Declined:
		return "Declined"
	default:
		return "Unknown"
	}
}

// Event is delivered to subscribers on every state change.
type Event struct {
	From State
	To   State
	Err  error // set when an accepted install failed
}

// Prompt is the install offer state machine:
//
//	Hidden → Offered → Accepted | Declined
//
// A failed install returns to Hidden.
type Prompt struct {
	installer Installer

	mu     sync.Mutex
	state  State
	nextID int
	subs   map[int]func(Event)
}

// NewPrompt creates a hidden prompt.
func NewPrompt(installer Installer) *Prompt {
	return &Prompt{installer: installer, subs: map[int]func(Event){}}
}

// State returns the current state.
func (p *Prompt) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Subscribe registers fn for later events and returns its cancel function.
// fn runs synchronously on the goroutine causing the change.
func (p *Prompt) Subscribe(fn func(Event)) (cancel func()) {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.subs[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// Watch asks d once and offers the install when it is available.
// Returns whether the offer was made.
func (p *Prompt) Watch(ctx context.Context, d Detector) (bool, error) {
	ok, err := d.Available(ctx)
	if err != nil || !ok {
		return false, err
	}
	return p.Offer(), nil
}

// Offer shows the prompt. Only a hidden prompt can be offered.
func (p *Prompt) Offer() bool {
	return p.move(Hidden, Offered, nil) == nil
}

// Accept installs. On failure the prompt returns to Hidden and the error
// is returned.
func (p *Prompt) Accept() error {
	if err := p.move(Offered, Accepted, nil); err != nil {
		return err
	}
	if err := p.installer.Install(); err != nil {
		_ = p.move(Accepted, Hidden, err)
		return err
	}
	return nil
}

// Decline dismisses the prompt.
func (p *Prompt) Decline() error {
	return p.move(Offered, Declined, nil)
}

func (p *Prompt) move(from, to State, cause error) error {
	p.mu.Lock()
	if p.state != from {
		p.mu.Unlock()
		return ErrNotOffered
	}
	p.state = to
	subs := make([]func(Event), 0, len(p.subs))
	for _, fn := range p.subs {
		subs = append(subs, fn)
	}
	p.mu.Unlock()

	e := Event{From: from, To: to, Err: cause}
	for _, fn := range subs {
		fn(e)
	}
	return nil
}
