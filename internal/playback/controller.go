// Package playback owns the single active preview stream.
package playback

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/player"
)

var (
	// ErrNoPreview is returned when a track has no preview URL.
	ErrNoPreview = errors.New("track has no preview")
	// ErrSuperseded is returned by Play when Stop, Close or a newer Play ran
	// while the stream was opening. The opened stream is discarded.
	ErrSuperseded = errors.New("preview superseded")
)

// active is the stream currently owned by the controller.
type active struct {
	track  catalog.Track
	stream player.Stream
}

// Controller plays at most one preview at a time. Starting a preview first
// pauses and releases the previous one.
type Controller struct {
	player player.Interface
	log    *zap.Logger

	mu      sync.Mutex
	current *active
	gen     uint64 // bumped on every release
	closed  bool

	subsMu sync.Mutex
	subs   []*Subscription
}

// New creates a controller over p. log may be nil.
func New(p player.Interface, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{player: p, log: log}
}

// Play releases the current preview, if any, and starts track. The stream
// is opened without holding the controller lock, so queries stay responsive
// while the preview downloads.
func (c *Controller) Play(ctx context.Context, track catalog.Track) error {
	if !track.HasPreview() {
		return ErrNoPreview
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return errors.New("playback controller closed")
	}
	c.releaseLocked()
	gen := c.gen
	c.mu.Unlock()

	stream, err := c.player.Play(ctx, track.PreviewURL)
	if err != nil {
		return fmt.Errorf("play %q: %w", track.Title, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.gen != gen {
		stream.Pause()
		_ = stream.Close()
		c.log.Debug("preview superseded", zap.Int64("track_id", track.ID))
		return ErrSuperseded
	}

	a := &active{track: track, stream: stream}
	c.current = a
	go c.watch(a)

	c.log.Debug("preview started", zap.Int64("track_id", track.ID), zap.String("title", track.Title))
	c.emit(Event{Kind: Started, Track: track})
	return nil
}

// Stop releases the current preview. No-op when nothing plays.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.releaseLocked()
}

// Toggle stops track if it is the one playing, and plays it otherwise.
// Returns whether track is playing afterwards.
func (c *Controller) Toggle(ctx context.Context, track catalog.Track) (bool, error) {
	if c.IsPlaying(track.ID) {
		c.Stop()
		return false, nil
	}
	if err := c.Play(ctx, track); err != nil {
		return false, err
	}
	return true, nil
}

// Current returns the track bound to the active stream, or nil.
func (c *Controller) Current() *catalog.Track {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return nil
	}
	t := c.current.track
	return &t
}

// Position returns the play position of the active preview, 0 when none.
func (c *Controller) Position() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return 0
	}
	return c.current.stream.Position()
}

// IsPlaying reports whether the track with id owns the active stream and
// is audible.
func (c *Controller) IsPlaying(id int64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current != nil &&
		c.current.track.ID == id &&
		c.current.stream.State() == player.Playing
}

// Subscribe returns a handle receiving later events.
func (c *Controller) Subscribe() *Subscription {
	sub := newSubscription(c.unsubscribe)
	c.subsMu.Lock()
	c.subs = append(c.subs, sub)
	c.subsMu.Unlock()
	return sub
}

func (c *Controller) unsubscribe(sub *Subscription) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for i, s := range c.subs {
		if s == sub {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}

// Close stops playback and cancels all subscriptions.
func (c *Controller) Close() error {
	c.mu.Lock()
	c.releaseLocked()
	c.closed = true
	c.mu.Unlock()

	c.subsMu.Lock()
	subs := append([]*Subscription(nil), c.subs...)
	c.subsMu.Unlock()
	for _, s := range subs {
		s.Cancel()
	}
	return nil
}

// releaseLocked pauses and detaches the current stream and invalidates any
// Play still opening its stream. Caller holds c.mu.
func (c *Controller) releaseLocked() {
	c.gen++
	if c.current == nil {
		return
	}
	a := c.current
	c.current = nil

	a.stream.Pause()
	if err := a.stream.Close(); err != nil {
		c.log.Warn("release preview", zap.Int64("track_id", a.track.ID), zap.Error(err))
	}
	c.emit(Event{Kind: Stopped, Track: a.track})
}

// watch clears the current stream when it ends on its own.
func (c *Controller) watch(a *active) {
	<-a.stream.Done()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current != a {
		return // released by Stop or a newer Play
	}
	c.current = nil
	_ = a.stream.Close()

	c.log.Debug("preview finished", zap.Int64("track_id", a.track.ID))
	c.emit(Event{Kind: Finished, Track: a.track})
}

func (c *Controller) emit(e Event) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()
	for _, s := range c.subs {
		s.send(e)
	}
}
