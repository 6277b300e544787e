// internal/player/mock.go
package player

import (
	"context"
	"sync"
	"time"
)

// Mock is a test double for HTTP.
type Mock struct {
	mu        sync.Mutex
	playErr   error
	playCalls []string
	streams   []*MockStream
}

// NewMock creates a new mock player for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Play(_ context.Context, url string) (Stream, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls = append(m.playCalls, url)
	if m.playErr != nil {
		return nil, m.playErr
	}
	s := &MockStream{url: url, state: Playing, done: make(chan struct{})}
	m.streams = append(m.streams, s)
	return s, nil
}

// Test helpers

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) PlayCalls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.playCalls...)
}

// Streams returns every stream opened so far, oldest first.
func (m *Mock) Streams() []*MockStream {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*MockStream(nil), m.streams...)
}

// Active returns the streams that have not been closed or finished.
func (m *Mock) Active() []*MockStream {
	var active []*MockStream
	for _, s := range m.Streams() {
		if s.State().IsActive() {
			active = append(active, s)
		}
	}
	return active
}

// MockStream is a Stream that never produces sound.
type MockStream struct {
	mu          sync.Mutex
	url         string
	state       State
	closed      bool
	pausedFirst bool // Pause was called before Close
	position    time.Duration
	done        chan struct{}
	doneOnce    sync.Once
}

func (s *MockStream) URL() string { return s.url }

func (s *MockStream) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *MockStream) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Playing {
		s.state = Paused
	}
	if !s.closed {
		s.pausedFirst = true
	}
}

func (s *MockStream) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Paused {
		s.state = Playing
	}
}

func (s *MockStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.state = Stopped
	s.doneOnce.Do(func() { close(s.done) })
	return nil
}

func (s *MockStream) Done() <-chan struct{} { return s.done }

func (s *MockStream) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.position
}

// SetPosition sets the value Position reports.
func (s *MockStream) SetPosition(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.position = d
}

// Closed reports whether Close was called.
func (s *MockStream) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

// PausedBeforeClose reports whether the stream was paused before being closed.
func (s *MockStream) PausedBeforeClose() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pausedFirst
}

// SimulateFinished ends the stream as if the preview played to the end.
func (s *MockStream) SimulateFinished() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Stopped
	s.doneOnce.Do(func() { close(s.done) })
}

// Verify Mock implements Interface at compile time.
var (
	_ Interface = (*Mock)(nil)
	_ Stream    = (*MockStream)(nil)
)
