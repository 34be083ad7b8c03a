// Package auth provides Spotify app authentication using the OAuth2
// client-credentials flow, with an on-disk token cache.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrMissingCredentials is returned when the client ID or secret is empty.
var ErrMissingCredentials = errors.New("missing SPOTIFY_CLIENT_ID or SPOTIFY_CLIENT_SECRET")

// Authenticator issues app tokens for the Spotify Web API.
// App tokens cannot read user data; playlist search does not need any.
type Authenticator struct {
	config *clientcredentials.Config
	cache  *TokenCache
	logger *zap.Logger
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithTokenCache persists issued tokens to cache.
func WithTokenCache(cache *TokenCache) Option {
	return func(a *Authenticator) {
		a.cache = cache
	}
}

// WithLogger sets the logger used for cache failures.
func WithLogger(logger *zap.Logger) Option {
	return func(a *Authenticator) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an Authenticator for the given app credentials.
func New(clientID, clientSecret string, opts ...Option) (*Authenticator, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrMissingCredentials
	}

	a := &Authenticator{
		config: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     spotifyauth.TokenURL,
		},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Client returns an HTTP client that attaches app tokens and fetches a new
// one when the current token expires. Create it once and share it.
func (a *Authenticator) Client(ctx context.Context) *http.Client {
	return oauth2.NewClient(ctx, a.TokenSource(ctx))
}

// TokenSource returns a token source seeded from the cache, if any, that
// writes every newly issued token back to the cache.
func (a *Authenticator) TokenSource(ctx context.Context) oauth2.TokenSource {
	var initial *oauth2.Token
	if a.cache != nil {
		token, err := a.cache.Load()
		if err != nil {
			a.logger.Warn("ignoring unreadable spotify token cache",
				zap.String("path", a.cache.Path()), zap.Error(err))
		}
		initial = token
	}

	return oauth2.ReuseTokenSource(initial, &cachingTokenSource{
		base:   a.config.TokenSource(ctx),
		cache:  a.cache,
		logger: a.logger,
	})
}

// cachingTokenSource fetches tokens from base and saves them to cache.
// ReuseTokenSource serializes calls to Token.
type cachingTokenSource struct {
	base   oauth2.TokenSource
	cache  *TokenCache
	logger *zap.Logger
}

func (s *cachingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.base.Token()
	if err != nil {
		return nil, fmt.Errorf("fetching spotify app token: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Save(token); err != nil {
			s.logger.Warn("caching spotify app token failed",
				zap.String("path", s.cache.Path()), zap.Error(err))
		}
	}
	return token, nil
}
