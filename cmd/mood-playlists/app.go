package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/justestif/go-mood-playlists/internal/auth"
	"github.com/justestif/go-mood-playlists/internal/config"
	"github.com/justestif/go-mood-playlists/internal/db"
	"github.com/justestif/go-mood-playlists/internal/detect"
	"github.com/justestif/go-mood-playlists/internal/emotion"
	"github.com/justestif/go-mood-playlists/internal/facial"
	"github.com/justestif/go-mood-playlists/internal/lexicon"
	"github.com/justestif/go-mood-playlists/internal/ollama"
	"github.com/justestif/go-mood-playlists/internal/playlists"
	"github.com/justestif/go-mood-playlists/internal/spotify"
)

// app holds the long-lived collaborators built from configuration.
type app struct {
	detector *detect.Service
	database *db.DB // nil when history is disabled
}

// newApp wires every optional capability the configuration enables.
// withHistory is false for one-shot commands that should not need a database.
func newApp(ctx context.Context, cfg *config.Config, logger *zap.Logger, withHistory bool) (*app, error) {
	caps := cfg.Capabilities()

	var oracle emotion.TextOracle = lexicon.New()
	if caps.LLMText {
		oracle = ollama.NewClient(cfg.OllamaHost, cfg.OllamaModel)
	}

	providerOpts := []playlists.Option{playlists.WithLogger(logger)}
	if caps.LivePlaylists {
		live, err := newSpotifySource(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		providerOpts = append(providerOpts, playlists.WithLiveSource(live))
	}
	provider, err := playlists.NewProvider(providerOpts...)
	if err != nil {
		return nil, fmt.Errorf("creating playlist provider: %w", err)
	}

	a := &app{}
	detectOpts := []detect.Option{detect.WithLogger(logger)}
	if caps.Facial {
		detectOpts = append(detectOpts, detect.WithFacialOracle(facial.NewClient(cfg.FacialAPIURL)))
	}
	if caps.History && withHistory {
		database, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("connecting to database: %w", err)
		}
		if err := database.Migrate(ctx); err != nil {
			database.Close()
			return nil, err
		}
		a.database = database
		detectOpts = append(detectOpts, detect.WithRecorder(database.Detections()))
	}

	a.detector = detect.New(emotion.NewArbiter(oracle), provider, detectOpts...)

	logger.Info("capabilities",
		zap.Bool("live_playlists", caps.LivePlaylists),
		zap.Bool("facial", caps.Facial),
		zap.Bool("llm_text", caps.LLMText),
		zap.Bool("history", a.database != nil),
	)
	return a, nil
}

// newSpotifySource builds a playlist search client on app credentials.
// A token cache that cannot be located is skipped, not fatal.
func newSpotifySource(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*spotify.Client, error) {
	opts := []auth.Option{auth.WithLogger(logger)}
	if cfg.SpotifyTokenCache != "" {
		opts = append(opts, auth.WithTokenCache(auth.NewTokenCache(cfg.SpotifyTokenCache)))
	} else if cache, err := auth.DefaultTokenCache(); err == nil {
		opts = append(opts, auth.WithTokenCache(cache))
	} else {
		logger.Warn("spotify token cache disabled", zap.Error(err))
	}

	authenticator, err := auth.New(cfg.SpotifyClientID, cfg.SpotifyClientSecret, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating spotify authenticator: %w", err)
	}
	return spotify.NewFromHTTP(authenticator.Client(ctx)), nil
}

func (a *app) Close() {
	if a.database != nil {
		a.database.Close()
	}
}
