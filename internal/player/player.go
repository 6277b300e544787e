// Package player plays MP3 previews streamed over HTTP.
package player

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	// Previews are short; no overall timeout, only the connect phase is bounded.
	dialTimeout     = 10 * time.Second
	resampleQuality = 4
)

// HTTP plays remote MP3 files through the default audio device.
type HTTP struct {
	client *http.Client

	mu          sync.Mutex
	speakerInit bool
	speakerRate beep.SampleRate
	volumeLevel float64
	muted       bool
}

// New creates an HTTP player at full volume.
func New() *HTTP {
	return &HTTP{
		client: &http.Client{
			Transport: &http.Transport{
				Proxy:                 http.ProxyFromEnvironment,
				ResponseHeaderTimeout: dialTimeout,
			},
		},
		volumeLevel: 1,
	}
}

// Play downloads url progressively, decodes it and starts playback.
func (h *HTTP) Play(ctx context.Context, url string) (Stream, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	// The decoder owns resp.Body from here on.
	streamer, format, err := mp3.Decode(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, fmt.Errorf("decode mp3: %w", err)
	}

	rate, err := h.ensureSpeaker(format.SampleRate)
	if err != nil {
		streamer.Close()
		return nil, err
	}

	var playStreamer beep.Streamer = streamer
	if format.SampleRate != rate {
		playStreamer = beep.Resample(resampleQuality, format.SampleRate, rate, streamer)
	}

	s := &httpStream{
		url:    url,
		source: streamer,
		format: format,
		ctrl:   &beep.Ctrl{Streamer: playStreamer},
		state:  Playing,
		done:   make(chan struct{}),
	}
	h.mu.Lock()
	s.volume = &effects.Volume{
		Streamer: s.ctrl,
		Base:     2,
		Volume:   levelToVolume(h.volumeLevel),
		Silent:   h.muted,
	}
	h.mu.Unlock()

	speaker.Play(beep.Seq(s.volume, beep.Callback(s.finish)))
	return s, nil
}

// ensureSpeaker initialises the speaker once with the first stream's rate.
func (h *HTTP) ensureSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.speakerInit {
		return h.speakerRate, nil
	}
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return 0, fmt.Errorf("init speaker: %w", err)
	}
	h.speakerInit = true
	h.speakerRate = rate
	return rate, nil
}

// httpStream is a Stream playing on the shared speaker.
type httpStream struct {
	url    string
	source beep.StreamSeekCloser
	format beep.Format
	ctrl   *beep.Ctrl
	volume *effects.Volume

	mu       sync.Mutex
	state    State
	released bool
	done     chan struct{}
	doneOnce sync.Once
}

// finish runs on the speaker goroutine when the sequence ends.
func (s *httpStream) finish() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *httpStream) URL() string { return s.url }

func (s *httpStream) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case <-s.done:
		return Stopped
	default:
		return s.state
	}
}

func (s *httpStream) Pause() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Playing {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()
	s.state = Paused
}

func (s *httpStream) Resume() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != Paused {
		return
	}
	speaker.Lock()
	s.ctrl.Paused = false
	speaker.Unlock()
	s.state = Playing
}

// Close pauses, detaches the source from the speaker and closes the HTTP body.
func (s *httpStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return nil
	}
	s.released = true
	s.state = Stopped

	speaker.Lock()
	s.ctrl.Paused = true
	s.ctrl.Streamer = nil
	speaker.Unlock()

	s.finish()
	return s.source.Close()
}

func (s *httpStream) Done() <-chan struct{} { return s.done }

func (s *httpStream) Position() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return 0
	}
	speaker.Lock()
	defer speaker.Unlock()
	return s.format.SampleRate.D(s.source.Position())
}
