package main

import (
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/justestif/go-mood-playlists/internal/web"
	webfs "github.com/justestif/go-mood-playlists/web"
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), c.cfg, c.logger, true)
			if err != nil {
				return err
			}
			defer a.Close()

			templates, err := fs.Sub(webfs.TemplatesFS, "templates")
			if err != nil {
				return fmt.Errorf("creating templates filesystem: %w", err)
			}
			static, err := fs.Sub(webfs.StaticFS, "static")
			if err != nil {
				return fmt.Errorf("creating static filesystem: %w", err)
			}

			srvCfg := web.ServerConfig{
				Addr:         c.cfg.Addr,
				Detector:     a.detector,
				Capabilities: c.cfg.Capabilities(),
				TemplatesFS:  templates,
				StaticFS:     static,
				Logger:       c.logger,
			}
			if a.database != nil {
				srvCfg.History = a.database.Detections()
			}

			server, err := web.NewServer(srvCfg)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			return server.Run()
		},
	}
}
