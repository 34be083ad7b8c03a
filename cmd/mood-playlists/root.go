package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/justestif/go-mood-playlists/internal/config"
	"github.com/justestif/go-mood-playlists/internal/logging"
)

// cli carries state shared by subcommands once the root pre-run has loaded
// configuration.
type cli struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	cmd := &cobra.Command{
		Use:   "mood-playlists",
		Short: "Mood-based playlist recommendations",
		Long: `Detects an emotion from text or a face image, maps it to one of eight
moods and suggests playlists for that mood.

Configuration is read from the environment and an optional .env file:
  ADDR / PORT                                 listen address
  SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET    live playlist search
  FACIAL_API_URL                              facial emotion service
  OLLAMA_HOST, OLLAMA_MODEL                   LLM text scoring
  DATABASE_URL                                detection history
  LOG_LEVEL, LOG_FORMAT                       logging`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	cmd.AddCommand(
		newServeCmd(c),
		newDetectCmd(c),
		newMoodsCmd(),
	)
	return cmd
}
