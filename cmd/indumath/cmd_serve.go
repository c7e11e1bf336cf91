package main

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/indumath/indumath/internal/server"
	"github.com/indumath/indumath/internal/ui"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators as a JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !strings.EqualFold(a.cfg.Log.Level, "debug") {
				gin.SetMode(gin.ReleaseMode)
			}
			cfg := a.cfg
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return server.New(cfg, a.logger).Run(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides server.addr)")
	return cmd
}

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the tabbed terminal calculator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The alternate screen owns the terminal, so solve logs are
			// dropped rather than written over it.
			m := ui.New(ui.Options{
				Precision:    a.cfg.Display.Precision,
				SolveOptions: a.solveOptions(),
			})
			return ui.Run(cmd.Context(), m)
		},
	}
}
