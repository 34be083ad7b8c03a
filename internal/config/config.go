// Package config loads application settings from the environment.
package config

import (
	"errors"
	"net"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultAddr is the listen address when neither ADDR nor PORT is set.
const DefaultAddr = "127.0.0.1:5000"

// ErrPartialSpotifyCredentials is returned when only one of
// SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET is set.
var ErrPartialSpotifyCredentials = errors.New("SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET must be set together")

// Config holds application configuration.
type Config struct {
	Addr string

	SpotifyClientID     string
	SpotifyClientSecret string
	SpotifyTokenCache   string // empty means the user config dir

	FacialAPIURL string

	OllamaHost  string
	OllamaModel string

	DatabaseURL string

	LogLevel  string
	LogFormat string
}

// Capabilities reports which optional collaborators are configured.
type Capabilities struct {
	LivePlaylists bool `json:"live_playlists"`
	Facial        bool `json:"facial"`
	LLMText       bool `json:"llm_text"`
	History       bool `json:"history"`
}

// Load reads configuration from environment variables, after loading an
// optional .env file from the working directory.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Addr:                listenAddr(),
		SpotifyClientID:     getEnv("SPOTIFY_CLIENT_ID", ""),
		SpotifyClientSecret: getEnv("SPOTIFY_CLIENT_SECRET", ""),
		SpotifyTokenCache:   getEnv("SPOTIFY_TOKEN_CACHE", ""),
		FacialAPIURL:        getEnv("FACIAL_API_URL", ""),
		OllamaHost:          getEnv("OLLAMA_HOST", ""),
		OllamaModel:         getEnv("OLLAMA_MODEL", ""),
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		LogLevel:            strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:           strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	if (cfg.SpotifyClientID == "") != (cfg.SpotifyClientSecret == "") {
		return nil, ErrPartialSpotifyCredentials
	}

	return cfg, nil
}

// Capabilities returns the optional features this configuration enables.
func (c *Config) Capabilities() Capabilities {
	return Capabilities{
		LivePlaylists: c.SpotifyClientID != "" && c.SpotifyClientSecret != "",
		Facial:        c.FacialAPIURL != "",
		LLMText:       c.OllamaHost != "",
		History:       c.DatabaseURL != "",
	}
}

// listenAddr prefers ADDR, then PORT on all interfaces.
func listenAddr() string {
	if addr := os.Getenv("ADDR"); addr != "" {
		return addr
	}
	if port := os.Getenv("PORT"); port != "" {
		return net.JoinHostPort("0.0.0.0", port)
	}
	return DefaultAddr
}

func getEnv(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}
	return value
}
