// Package catalog defines the artist and track records shown by beezer.
package catalog

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Artist holds the detail of one catalog artist.
// It is replaced wholesale on every successful fetch, never merged.
type Artist struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Fans       int64  `json:"nb_fan"`
	Albums     int64  `json:"nb_album"`
	PictureURL string `json:"picture_medium"`
	Link       string `json:"link,omitempty"`
}

// FansLabel returns the fan count with thousands separators.
func (a *Artist) FansLabel() string {
	return humanize.Comma(a.Fans)
}

// ArtistSummary is the subset of an artist returned by a search.
type ArtistSummary struct {
	ID         int64
	Name       string
	PictureURL string
}

// Track is one entry of an artist's top tracks.
// Rank is the zero-based position in the ranking returned by the catalog.
type Track struct {
	ID         int64  `json:"id"`
	Rank       int    `json:"rank"`
	Title      string `json:"title"`
	Duration   int    `json:"duration"` // seconds
	PreviewURL string `json:"preview"`
}

// FormatDuration returns the duration as m:ss.
func (t *Track) FormatDuration() string {
	d := max(t.Duration, 0)
	return fmt.Sprintf("%d:%02d", d/60, d%60)
}

// HasPreview reports whether the track can be previewed.
func (t *Track) HasPreview() bool {
	return t.PreviewURL != ""
}
