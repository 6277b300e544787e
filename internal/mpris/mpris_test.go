package mpris

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/loader"
	"github.com/beezer-app/beezer/internal/playback"
	"github.com/beezer-app/beezer/internal/player"
)

type fixedSource struct{ view loader.View }

func (f fixedSource) View() loader.View { return f.view }

func newTestPlayer(t *testing.T) (*player, *playback.Controller) {
	t.Helper()
	ctrl := playback.New(player.NewMock(), zaptest.NewLogger(t))
	t.Cleanup(func() { _ = ctrl.Close() })

	src := fixedSource{view: loader.View{
		State: loader.StateReady,
		TopTracks: []catalog.Track{
			{ID: 301, Rank: 0, Title: "Ese Día", PreviewURL: "https://cdn/301.mp3"},
			{ID: 102, Rank: 1, Title: "Mi Historia", PreviewURL: "https://cdn/102.mp3"},
			{ID: 203, Rank: 2, Title: "Otra", PreviewURL: "https://cdn/203.mp3"},
		},
	}}
	return &player{ctrl: ctrl, src: src}, ctrl
}

func currentID(ctrl *playback.Controller) int64 {
	if cur := ctrl.Current(); cur != nil {
		return cur.ID
	}
	return 0
}

func TestPlayer_PlayStartsFirstTrack(t *testing.T) {
	p, ctrl := newTestPlayer(t)

	require.NoError(t, p.play())

	assert.Equal(t, int64(301), currentID(ctrl))
	assert.False(t, p.canGoPrevious())
	assert.True(t, p.canGoNext())
}

func TestPlayer_NextPrevious(t *testing.T) {
	p, ctrl := newTestPlayer(t)
	require.NoError(t, p.play())

	require.NoError(t, p.next())
	assert.Equal(t, int64(102), currentID(ctrl))

	require.NoError(t, p.next())
	assert.Equal(t, int64(203), currentID(ctrl))
	assert.False(t, p.canGoNext())

	require.NoError(t, p.next(), "past the end is a no-op")
	assert.Equal(t, int64(203), currentID(ctrl))

	require.NoError(t, p.previous())
	assert.Equal(t, int64(102), currentID(ctrl))
}

func TestPlayer_PlayPauseResumesLastTrack(t *testing.T) {
	p, ctrl := newTestPlayer(t)
	require.NoError(t, ctrl.Play(context.Background(), catalog.Track{ID: 102, Rank: 1, Title: "Mi Historia", PreviewURL: "https://cdn/102.mp3"}))

	require.NoError(t, p.playPause())
	assert.Nil(t, ctrl.Current())

	require.NoError(t, p.playPause())
	assert.Equal(t, int64(102), currentID(ctrl))
}

func TestPlayer_StopRemembersTrack(t *testing.T) {
	p, ctrl := newTestPlayer(t)
	require.NoError(t, p.play())
	require.NoError(t, p.next())

	p.stop()
	assert.Nil(t, ctrl.Current())

	require.NoError(t, p.next())
	assert.Equal(t, int64(203), currentID(ctrl))
}

func TestTrackObjectPath(t *testing.T) {
	assert.Equal(t, "/org/mpris/MediaPlayer2/beezer/track/42", trackObjectPath(42))
}
