// Package mpris exposes the preview controller on D-Bus so desktop media
// keys and widgets can drive it.
package mpris

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/loader"
)

// Controller is the part of the preview controller MPRIS drives.
type Controller interface {
	Play(ctx context.Context, track catalog.Track) error
	Stop()
	Current() *catalog.Track
	Position() time.Duration
}

// Source provides the loaded artist and tracks.
type Source interface {
	View() loader.View
}

// player holds the state-independent logic of the MPRIS player interface.
type player struct {
	ctrl Controller
	src  Source

	mu   sync.Mutex
	last *catalog.Track // last track played, for Play after Stop
}

func (p *player) tracks() []catalog.Track {
	return p.src.View().TopTracks
}

// index returns, with mu held, the rank position of the current (or last) track, -1 if none.
func (p *player) index() int {
	cur := p.ctrl.Current()
	if cur == nil {
		cur = p.last
	}
	if cur == nil {
		return -1
	}
	for i, t := range p.tracks() {
		if t.ID == cur.ID {
			return i
		}
	}
	return -1
}

func (p *player) playAt(i int) error {
	tracks := p.tracks()
	if i < 0 || i >= len(tracks) {
		return nil
	}
	t := tracks[i]
	p.last = &t
	return p.ctrl.Play(context.Background(), t)
}

func (p *player) next() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playAt(p.index() + 1)
}

func (p *player) previous() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playAt(max(p.index()-1, 0))
}

func (p *player) play() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playLocked()
}

func (p *player) playLocked() error {
	if p.ctrl.Current() != nil {
		return nil
	}
	return p.playAt(max(p.index(), 0))
}

func (p *player) playPause() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cur := p.ctrl.Current(); cur != nil {
		p.last = cur
		p.ctrl.Stop()
		return nil
	}
	return p.playLocked()
}

func (p *player) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if cur := p.ctrl.Current(); cur != nil {
		p.last = cur
	}
	p.ctrl.Stop()
}

func (p *player) canGoNext() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index()+1 < len(p.tracks())
}

func (p *player) canGoPrevious() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.index() > 0
}

func trackObjectPath(id int64) string {
	return fmt.Sprintf("/org/mpris/MediaPlayer2/beezer/track/%d", id)
}
