package loader

import (
	"context"
	"errors"
	"sync"

	"github.com/beezer-app/beezer/internal/catalog"
	"github.com/beezer-app/beezer/internal/deezer"
	"github.com/beezer-app/beezer/internal/store"
)

// memStore is an in-memory store.Store with failure injection.
type memStore struct {
	mu         sync.Mutex
	partitions map[store.Partition][]store.Record
	readErr    error
	writeErr   error
	writes     int
	onReplace  func(store.Partition) // called before each write, without the lock
}

func newMemStore() *memStore {
	return &memStore{partitions: map[store.Partition][]store.Record{}}
}

func (m *memStore) ReadAll(_ context.Context, p store.Partition) ([]store.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	return append([]store.Record(nil), m.partitions[p]...), nil
}

func (m *memStore) ReplaceAll(_ context.Context, p store.Partition, records []store.Record) error {
	if m.onReplace != nil {
		m.onReplace(p)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes++
	if m.writeErr != nil {
		return m.writeErr
	}
	m.partitions[p] = append([]store.Record(nil), records...)
	return nil
}

func (m *memStore) Close() error { return nil }

func (m *memStore) snapshot() map[store.Partition][]store.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[store.Partition][]store.Record, len(m.partitions))
	for k, v := range m.partitions {
		out[k] = append([]store.Record(nil), v...)
	}
	return out
}

// fakeRemote records calls and returns canned data.
type fakeRemote struct {
	mu sync.Mutex

	summary *catalog.ArtistSummary
	artist  *catalog.Artist
	tracks  []catalog.Track

	searchErr error
	artistErr error
	tracksErr error

	calls []string
	limit int
}

func (f *fakeRemote) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeRemote) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeRemote) FindArtistByName(_ context.Context, _ string) (*catalog.ArtistSummary, error) {
	f.record("search")
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.summary == nil {
		return nil, deezer.ErrNotFound
	}
	return f.summary, nil
}

func (f *fakeRemote) GetArtist(_ context.Context, _ int64) (*catalog.Artist, error) {
	f.record("artist")
	if f.artistErr != nil {
		return nil, f.artistErr
	}
	a := *f.artist
	return &a, nil
}

func (f *fakeRemote) GetTopTracks(_ context.Context, _ int64, limit int) ([]catalog.Track, error) {
	f.record("top")
	f.mu.Lock()
	f.limit = limit
	f.mu.Unlock()
	if f.tracksErr != nil {
		return nil, f.tracksErr
	}
	return append([]catalog.Track(nil), f.tracks...), nil
}

var errBoom = errors.New("boom")

func scenarioRemote() *fakeRemote {
	return &fakeRemote{
		summary: &catalog.ArtistSummary{ID: 42, Name: "Charles Ans"},
		artist:  &catalog.Artist{ID: 42, Name: "Charles Ans", Fans: 1000, Albums: 3, PictureURL: "u"},
		tracks: []catalog.Track{
			{ID: 301, Rank: 0, Title: "Uno", Duration: 180, PreviewURL: "p1"},
			{ID: 102, Rank: 1, Title: "Dos", Duration: 200, PreviewURL: "p2"},
			{ID: 203, Rank: 2, Title: "Tres", Duration: 95, PreviewURL: "p3"},
		},
	}
}
