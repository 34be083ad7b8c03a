// Package playlists picks representative playlists for a mood bucket, either
// from a curated static catalog or from a live search source.
package playlists

import (
	"context"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/justestif/go-mood-playlists/internal/mood"
)

// MaxLiveResults caps the number of playlists requested from a live source.
const MaxLiveResults = 5

// Entry is a playlist shown to the user.
type Entry struct {
	Name  string  `json:"name"`
	URL   string  `json:"url"`
	Image *string `json:"image"` // nil when the playlist has no cover
}

// SearchResult is a playlist returned by a live source.
type SearchResult struct {
	Name   string
	URL    string
	Images []string // Cover image URLs, largest first
}

// LiveSource searches an external catalog for playlists.
type LiveSource interface {
	SearchPlaylists(ctx context.Context, query string, limit int) ([]SearchResult, error)
}

// Provider returns playlists for mood buckets.
type Provider struct {
	live   LiveSource
	logger *zap.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithLiveSource makes the provider query src instead of the static catalog.
// A nil src keeps the static catalog.
func WithLiveSource(src LiveSource) Option {
	return func(p *Provider) {
		p.live = src
	}
}

// WithLogger sets the logger used to report live source failures.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewProvider creates a Provider. It fails if the static tables do not cover
// every mood bucket.
func NewProvider(opts ...Option) (*Provider, error) {
	if err := ValidateTables(); err != nil {
		return nil, err
	}

	p := &Provider{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Live reports whether the provider queries a live source.
func (p *Provider) Live() bool {
	return p.live != nil
}

// Get returns playlists for a bucket. Live source failures are logged and
// yield an empty list; Get itself never fails.
func (p *Provider) Get(ctx context.Context, bucket mood.Bucket) []Entry {
	if p.live == nil {
		return Static(bucket)
	}

	query := SearchQuery(bucket)
	results, err := p.live.SearchPlaylists(ctx, query, MaxLiveResults)
	if err != nil {
		p.logger.Warn("live playlist search failed",
			zap.String("mood", string(bucket)),
			zap.String("query", query),
			zap.Error(err),
		)
		return []Entry{}
	}

	entries := make([]Entry, 0, min(len(results), MaxLiveResults))
	for _, r := range results {
		if len(entries) == MaxLiveResults {
			break
		}
		entries = append(entries, toEntry(r))
	}
	return entries
}

// Static returns a copy of the curated playlists for a bucket, falling back
// to the chill list for unknown buckets.
func Static(bucket mood.Bucket) []Entry {
	list, ok := catalog[bucket]
	if !ok {
		list = catalog[mood.Fallback]
	}
	return append([]Entry(nil), list...)
}

// SearchQuery returns the live search phrase for a bucket, or the bucket name
// when no phrase is configured.
func SearchQuery(bucket mood.Bucket) string {
	if phrases := searchQueries[bucket]; len(phrases) > 0 {
		return phrases[0]
	}
	return string(bucket)
}

// SearchPhrases returns a copy of every candidate phrase for a bucket, in
// preference order. SearchQuery uses the first.
func SearchPhrases(bucket mood.Bucket) []string {
	return slices.Clone(searchQueries[bucket])
}

// ValidateTables checks that every mood bucket has static playlists and a
// search phrase.
func ValidateTables() error {
	for b := range catalog {
		if !mood.IsValid(b) {
			return fmt.Errorf("static playlists for unknown mood %q", b)
		}
	}
	for b := range searchQueries {
		if !mood.IsValid(b) {
			return fmt.Errorf("search query for unknown mood %q", b)
		}
	}
	for _, b := range mood.Buckets {
		if len(catalog[b]) == 0 {
			return fmt.Errorf("no static playlists for mood %q", b)
		}
		if len(searchQueries[b]) == 0 {
			return fmt.Errorf("no search query for mood %q", b)
		}
	}
	return nil
}

func toEntry(r SearchResult) Entry {
	e := Entry{Name: r.Name, URL: r.URL}
	if len(r.Images) > 0 {
		img := r.Images[0]
		e.Image = &img
	}
	return e
}
