package spotify

import (
	"context"
	"fmt"

	"github.com/zmb3/spotify/v2"

	"github.com/justestif/go-mood-playlists/internal/playlists"
)

// SearchPlaylists searches Spotify for playlists matching query.
// It implements playlists.LiveSource.
func (c *Client) SearchPlaylists(ctx context.Context, query string, limit int) ([]playlists.SearchResult, error) {
	result, err := c.api.Search(ctx, query, spotify.SearchTypePlaylist, spotify.Limit(limit))
	if err != nil {
		return nil, fmt.Errorf("searching playlists for %q: %w", query, err)
	}
	if result.Playlists == nil {
		return []playlists.SearchResult{}, nil
	}

	out := make([]playlists.SearchResult, 0, len(result.Playlists.Playlists))
	for _, p := range result.Playlists.Playlists {
		r, ok := convertPlaylist(p)
		if !ok {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// convertPlaylist converts a Spotify playlist to a search result.
// Spotify sometimes returns null items in search pages; those decode to empty
// playlists and are skipped.
func convertPlaylist(p spotify.SimplePlaylist) (playlists.SearchResult, bool) {
	url := p.ExternalURLs["spotify"]
	if p.Name == "" || url == "" {
		return playlists.SearchResult{}, false
	}

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if img.URL != "" {
			images = append(images, img.URL)
		}
	}

	return playlists.SearchResult{
		Name:   p.Name,
		URL:    url,
		Images: images,
	}, true
}
