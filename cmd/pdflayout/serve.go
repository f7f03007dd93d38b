package main

import (
	"github.com/spf13/cobra"

	"github.com/thywilljoshua/pdflayout/internal/config"
	"github.com/thywilljoshua/pdflayout/internal/server"
)

func serveCmd(rf *rootFlags) *cobra.Command {
	var addr string
	var workers int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve POST /v1/extract over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, rf, func(c *config.Config) {
				if cmd.Flags().Changed("addr") {
					c.Server.Addr = addr
				}
				if cmd.Flags().Changed("workers") {
					c.Workers = workers
				}
			})
			if err != nil {
				return err
			}
			ex, err := newExtractor(cfg, log)
			if err != nil {
				return err
			}
			srv := server.New(ex, log, server.Options{
				MaxUploadBytes: cfg.Server.MaxUploadBytes,
				AllowedOrigins: cfg.Server.AllowedOrigins,
			})
			return server.ListenAndServe(cmd.Context(), cfg.Server.Addr, srv.Router(), log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().IntVar(&workers, "workers", 1, "pages extracted concurrently per request")
	return cmd
}
