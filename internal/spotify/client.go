// Package spotify provides a wrapper around the Spotify Web API.
package spotify

import (
	"net/http"

	"github.com/zmb3/spotify/v2"
)

// Client wraps the Spotify API client with convenience methods.
type Client struct {
	api *spotify.Client
}

// New creates a new Spotify client wrapper.
// The underlying client should already be authenticated.
func New(api *spotify.Client) *Client {
	return &Client{api: api}
}

// NewFromHTTP creates a client from an authenticated HTTP client.
// Requests are not retried: each search is attempted once.
func NewFromHTTP(httpClient *http.Client, opts ...spotify.ClientOption) *Client {
	return New(spotify.New(httpClient, opts...))
}
