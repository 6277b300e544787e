// Package loader decides whether artist data comes from the local store or
// from the remote catalog, and fills the store after a fetch.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/deezer"
	"github.com/beezer-app/beezer/internal/errmsg"
	"github.com/beezer-app/beezer/internal/store"
)

// DefaultTrackLimit is the number of top tracks fetched.
const DefaultTrackLimit = 5

// Remote is the catalog used on a cache miss.
type Remote interface {
	FindArtistByName(ctx context.Context, name string) (*catalog.ArtistSummary, error)
	GetArtist(ctx context.Context, id int64) (*catalog.Artist, error)
	GetTopTracks(ctx context.Context, id int64, limit int) ([]catalog.Track, error)
}

// Verify the Deezer client satisfies Remote at compile time.
var _ Remote = (*deezer.Client)(nil)

// View is the read-only result handed to the presentation layer.
type View struct {
	State     State           `json:"state"`
	Artist    *catalog.Artist `json:"artist"`
	TopTracks []catalog.Track `json:"topTracks"`
	Loading   bool            `json:"loading"`
	Error     string          `json:"error,omitempty"`
	NotFound  bool            `json:"notFound,omitempty"`
	FromCache bool            `json:"fromCache,omitempty"`
}

// cachedArtist is the stored artist record, tagged with the search name it
// was fetched for.
type cachedArtist struct {
	catalog.Artist
	Query string `json:"query"`
}

// normalizeName folds case and whitespace so "Charles  Ans" and
// "charles ans" share a cache.
func normalizeName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Config configures a Loader.
type Config struct {
	ArtistName string
	TrackLimit int
	Messages   errmsg.Catalog
	Logger     *zap.Logger
}

// Loader runs the read-through load cycle once per process.
type Loader struct {
	store  store.Store // nil when the store could not be opened
	remote Remote
	name   string
	limit  int
	msgs   errmsg.Catalog
	log    *zap.Logger

	mu    sync.Mutex
	state State
	view  View
	ran   bool

	subsMu sync.Mutex
	subs   []*Subscription
}

// New creates a loader. s may be nil, in which case every load is a miss.
func New(s store.Store, remote Remote, cfg Config) *Loader {
	limit := cfg.TrackLimit
	if limit <= 0 {
		limit = DefaultTrackLimit
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{
		store:  s,
		remote: remote,
		name:   cfg.ArtistName,
		limit:  limit,
		msgs:   cfg.Messages,
		log:    log,
		state:  StateInit,
		view:   View{State: StateInit, Loading: true},
	}
}

// State returns the current state.
func (l *Loader) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// View returns a snapshot of the current view.
func (l *Loader) View() View {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

func (l *Loader) snapshotLocked() View {
	v := l.view
	v.State = l.state
	if l.view.TopTracks != nil {
		v.TopTracks = append([]catalog.Track(nil), l.view.TopTracks...)
	}
	return v
}

// Subscribe returns a handle that receives every later transition.
func (l *Loader) Subscribe() *Subscription {
	ch := make(chan Transition, transitionBufferSize)
	sub := &Subscription{Transitions: ch, ch: ch}
	sub.cancel = l.unsubscribe

	l.subsMu.Lock()
	l.subs = append(l.subs, sub)
	l.subsMu.Unlock()
	return sub
}

func (l *Loader) unsubscribe(sub *Subscription) {
	l.subsMu.Lock()
	defer l.subsMu.Unlock()
	for i, s := range l.subs {
		if s == sub {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return
		}
	}
}

func (l *Loader) transition(to State, update func(v *View)) {
	l.mu.Lock()
	from := l.state
	l.state = to
	if update != nil {
		update(&l.view)
	}
	l.view.State = to
	l.view.Loading = !to.IsTerminal()
	l.mu.Unlock()

	l.subsMu.Lock()
	for _, s := range l.subs {
		s.send(Transition{From: from, To: to})
	}
	l.subsMu.Unlock()
}

// Load runs the cycle and returns the terminal view. Later calls return the
// same view without touching the store or the network.
func (l *Loader) Load(ctx context.Context) View {
	l.mu.Lock()
	if l.ran {
		v := l.snapshotLocked()
		l.mu.Unlock()
		return v
	}
	l.ran = true
	l.mu.Unlock()

	log := l.log.With(zap.String("cycle", uuid.NewString()), zap.String("artist", l.name))
	start := time.Now()

	l.transition(StateCheckingCache, nil)
	if artist, tracks, ok := l.readCache(ctx, log); ok {
		l.transition(StateServingCache, func(v *View) {
			v.Artist = artist
			v.TopTracks = tracks
			v.FromCache = true
		})
		l.transition(StateReady, nil)
		log.Info("served from cache",
			zap.Int("tracks", len(tracks)),
			zap.Duration("elapsed", time.Since(start)))
		return l.View()
	}

	l.transition(StateFetching, nil)
	artist, tracks, err := l.fetch(ctx)
	switch {
	case errors.Is(err, deezer.ErrNotFound):
		l.transition(StateReady, func(v *View) {
			v.NotFound = true
			v.TopTracks = []catalog.Track{}
		})
		log.Info("artist not found")
	case err != nil:
		l.transition(StateFailed, func(v *View) {
			v.Error = l.msgs.Get(errmsg.MsgLoadFailed)
		})
		log.Error(errmsg.Format(errmsg.OpLoad, err), zap.Error(err))
	default:
		l.writeBack(ctx, log, artist, tracks)
		l.transition(StateReady, func(v *View) {
			v.Artist = artist
			v.TopTracks = tracks
		})
		log.Info("fetched from remote",
			zap.Int64("artist_id", artist.ID),
			zap.Int("tracks", len(tracks)),
			zap.Duration("elapsed", time.Since(start)))
	}

	return l.View()
}

// readCache returns the cached data when both partitions are non-empty and
// were filled for the configured artist name. Store errors and undecodable
// records count as a miss.
func (l *Loader) readCache(ctx context.Context, log *zap.Logger) (*catalog.Artist, []catalog.Track, bool) {
	if l.store == nil {
		log.Debug("no local store, skipping cache")
		return nil, nil, false
	}

	artistRecords, err := l.store.ReadAll(ctx, store.PartitionArtist)
	if err != nil {
		log.Warn("cache read failed", zap.String("partition", string(store.PartitionArtist)), zap.Error(err))
		return nil, nil, false
	}
	trackRecords, err := l.store.ReadAll(ctx, store.PartitionTopTracks)
	if err != nil {
		log.Warn("cache read failed", zap.String("partition", string(store.PartitionTopTracks)), zap.Error(err))
		return nil, nil, false
	}
	if len(artistRecords) == 0 || len(trackRecords) == 0 {
		log.Debug("cache miss",
			zap.Int("artist_records", len(artistRecords)),
			zap.Int("track_records", len(trackRecords)))
		return nil, nil, false
	}

	var cached cachedArtist
	if err := json.Unmarshal(artistRecords[0].Data, &cached); err != nil {
		log.Warn("cached artist undecodable", zap.Error(err))
		return nil, nil, false
	}
	if normalizeName(cached.Query) != normalizeName(l.name) {
		log.Info("cache holds another artist", zap.String("cached_query", cached.Query))
		return nil, nil, false
	}
	artist := cached.Artist

	tracks := make([]catalog.Track, 0, len(trackRecords))
	for i, r := range trackRecords {
		var t catalog.Track
		if err := json.Unmarshal(r.Data, &t); err != nil {
			log.Warn("cached track undecodable", zap.Int64("id", r.ID), zap.Error(err))
			return nil, nil, false
		}
		t.Rank = i
		tracks = append(tracks, t)
	}

	return &artist, tracks, true
}

// fetch runs search, artist detail and top tracks in sequence.
func (l *Loader) fetch(ctx context.Context) (*catalog.Artist, []catalog.Track, error) {
	summary, err := l.remote.FindArtistByName(ctx, l.name)
	if err != nil {
		return nil, nil, err
	}

	artist, err := l.remote.GetArtist(ctx, summary.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("artist %d: %w", summary.ID, err)
	}

	tracks, err := l.remote.GetTopTracks(ctx, summary.ID, l.limit)
	if err != nil {
		return nil, nil, fmt.Errorf("top tracks %d: %w", summary.ID, err)
	}
	if tracks == nil {
		tracks = []catalog.Track{}
	}

	return artist, tracks, nil
}

// writeBack persists fresh data. Failures are logged only: the in-memory
// view is already valid for this session.
func (l *Loader) writeBack(ctx context.Context, log *zap.Logger, artist *catalog.Artist, tracks []catalog.Track) {
	if l.store == nil {
		return
	}

	cached := cachedArtist{Artist: *artist, Query: l.name}
	artistRecords, err := encodeRecords([]cachedArtist{cached}, func(a cachedArtist) int64 { return a.ID })
	if err == nil {
		err = l.store.ReplaceAll(ctx, store.PartitionArtist, artistRecords)
	}
	if err != nil {
		log.Warn(errmsg.Format(errmsg.OpCacheWrite, err), zap.String("partition", string(store.PartitionArtist)))
	}

	trackRecords, err := encodeRecords(tracks, func(t catalog.Track) int64 { return t.ID })
	if err == nil {
		err = l.store.ReplaceAll(ctx, store.PartitionTopTracks, trackRecords)
	}
	if err != nil {
		log.Warn(errmsg.Format(errmsg.OpCacheWrite, err), zap.String("partition", string(store.PartitionTopTracks)))
	}
}

func encodeRecords[T any](items []T, id func(T) int64) ([]store.Record, error) {
	records := make([]store.Record, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		records = append(records, store.Record{ID: id(item), Data: data})
	}
	return records, nil
}
