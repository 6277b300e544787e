//go:build linux

package mpris

import (
	"time"

	"github.com/godbus/dbus/v5"
	"github.com/quarckster/go-mpris-server/pkg/server"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

// Adapter serves the MPRIS interfaces until closed.
type Adapter struct {
	server *server.Server
}

// New starts serving MPRIS for ctrl.
func New(ctrl Controller, src Source) (*Adapter, error) {
	p := &player{ctrl: ctrl, src: src}
	a := &Adapter{
		server: server.NewServer("beezer", rootAdapter{}, &playerAdapter{p: p}),
	}
	go func() {
		_ = a.server.Listen()
	}()
	return a, nil
}

// Close releases the D-Bus name.
func (a *Adapter) Close() error {
	return a.server.Stop()
}

type rootAdapter struct{}

func (rootAdapter) Raise() error                { return nil }
func (rootAdapter) Quit() error                 { return nil }
func (rootAdapter) CanQuit() (bool, error)      { return false, nil }
func (rootAdapter) CanRaise() (bool, error)     { return false, nil }
func (rootAdapter) HasTrackList() (bool, error) { return false, nil }
func (rootAdapter) Identity() (string, error)   { return "Beezer", nil }

//nolint:revive // Method name required by interface.
func (rootAdapter) SupportedUriSchemes() ([]string, error) { return []string{"https"}, nil }

func (rootAdapter) SupportedMimeTypes() ([]string, error) { return []string{"audio/mpeg"}, nil }

// playerAdapter implements OrgMprisMediaPlayer2PlayerAdapter.
type playerAdapter struct {
	p *player
}

func (a *playerAdapter) Next() error      { return a.p.next() }
func (a *playerAdapter) Previous() error  { return a.p.previous() }
func (a *playerAdapter) Pause() error     { a.p.stop(); return nil }
func (a *playerAdapter) PlayPause() error { return a.p.playPause() }
func (a *playerAdapter) Stop() error      { a.p.stop(); return nil }
func (a *playerAdapter) Play() error      { return a.p.play() }

// Previews are short; seeking is not offered.
func (a *playerAdapter) Seek(types.Microseconds) error                { return nil }
func (a *playerAdapter) SetPosition(string, types.Microseconds) error { return nil }

//nolint:revive // Method name required by interface.
func (a *playerAdapter) OpenUri(string) error { return nil }

func (a *playerAdapter) PlaybackStatus() (types.PlaybackStatus, error) {
	if a.p.ctrl.Current() != nil {
		return types.PlaybackStatusPlaying, nil
	}
	return types.PlaybackStatusStopped, nil
}

func (a *playerAdapter) Rate() (float64, error) { return 1.0, nil }
func (a *playerAdapter) SetRate(float64) error  { return nil }

func (a *playerAdapter) Metadata() (types.Metadata, error) {
	track := a.p.ctrl.Current()
	if track == nil {
		return types.Metadata{}, nil
	}

	meta := types.Metadata{
		TrackId:     dbus.ObjectPath(trackObjectPath(track.ID)),
		Length:      types.Microseconds((time.Duration(track.Duration) * time.Second).Microseconds()),
		Title:       track.Title,
		TrackNumber: track.Rank + 1,
	}
	if artist := a.p.src.View().Artist; artist != nil {
		meta.Artist = []string{artist.Name}
		meta.ArtUrl = artist.PictureURL
	}
	return meta, nil
}

func (a *playerAdapter) Volume() (float64, error) { return 1.0, nil }
func (a *playerAdapter) SetVolume(float64) error  { return nil }

func (a *playerAdapter) Position() (int64, error) {
	return a.p.ctrl.Position().Microseconds(), nil
}

func (a *playerAdapter) MinimumRate() (float64, error) { return 1.0, nil }
func (a *playerAdapter) MaximumRate() (float64, error) { return 1.0, nil }
func (a *playerAdapter) CanGoNext() (bool, error)      { return a.p.canGoNext(), nil }
func (a *playerAdapter) CanGoPrevious() (bool, error)  { return a.p.canGoPrevious(), nil }
func (a *playerAdapter) CanPlay() (bool, error)        { return len(a.p.tracks()) > 0, nil }
func (a *playerAdapter) CanPause() (bool, error)       { return true, nil }
func (a *playerAdapter) CanSeek() (bool, error)        { return false, nil }
func (a *playerAdapter) CanControl() (bool, error)     { return true, nil }
