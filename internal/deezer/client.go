// Package deezer provides a client for the Deezer public catalog API.
package deezer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/beezer-app/beezer/internal/catalog"
)

const (
	// DefaultBaseURL is the upstream catalog host.
	DefaultBaseURL = "https://api.deezer.com"
	defaultTimeout = 10 * time.Second
	userAgent      = "beezer/1.0"
)

// Client is a Deezer API client. It never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the request timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// New creates a client for baseURL, which may be the upstream host or a
// local proxy prefix such as "http://localhost:8080/deezer".
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FindArtistByName returns the first search result for name.
// Returns ErrNotFound when the search has no results.
func (c *Client) FindArtistByName(ctx context.Context, name string) (*catalog.ArtistSummary, error) {
	params := url.Values{}
	params.Set("q", name)

	var result searchResponse
	if err := c.get(ctx, "search", "/search/artist?"+params.Encode(), &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, &RemoteError{Op: "search", Err: result.Error}
	}
	if len(result.Data) == 0 {
		return nil, ErrNotFound
	}

	first := result.Data[0]
	return &catalog.ArtistSummary{
		ID:         first.ID,
		Name:       first.Name,
		PictureURL: first.PictureMedium,
	}, nil
}

// GetArtist fetches the full detail of an artist.
func (c *Client) GetArtist(ctx context.Context, id int64) (*catalog.Artist, error) {
	var result artistResult
	if err := c.get(ctx, "artist", "/artist/"+strconv.FormatInt(id, 10), &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, &RemoteError{Op: "artist", Err: result.Error}
	}
	if result.ID == 0 {
		return nil, &RemoteError{Op: "artist", Err: errors.New("response has no artist id")}
	}

	return &catalog.Artist{
		ID:         result.ID,
		Name:       result.Name,
		Fans:       result.NbFan,
		Albums:     result.NbAlbum,
		PictureURL: result.PictureMedium,
		Link:       result.Link,
	}, nil
}

// GetTopTracks fetches up to limit top tracks, in ranking order.
func (c *Client) GetTopTracks(ctx context.Context, id int64, limit int) ([]catalog.Track, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var result topResponse
	path := fmt.Sprintf("/artist/%d/top?%s", id, params.Encode())
	if err := c.get(ctx, "top", path, &result); err != nil {
		return nil, err
	}
	if result.Error != nil {
		return nil, &RemoteError{Op: "top", Err: result.Error}
	}

	data := result.Data
	if limit > 0 && len(data) > limit {
		data = data[:limit]
	}

	tracks := make([]catalog.Track, 0, len(data))
	for i, t := range data {
		tracks = append(tracks, catalog.Track{
			ID:         t.ID,
			Rank:       i,
			Title:      t.Title,
			Duration:   t.Duration,
			PreviewURL: t.Preview,
		})
	}
	return tracks, nil
}

// get issues a GET for path and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, op, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RemoteError{Op: op, Err: fmt.Errorf("http request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RemoteError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("unexpected status: %s", resp.Status)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RemoteError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
