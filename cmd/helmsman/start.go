package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/fleetcore/helmsman/pkg/log"
	"github.com/fleetcore/helmsman/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Helmsman services",
	Long:  `Initializes and starts the HTTP API, session storage and background workers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting helmsman")

		services := NewServices(ctx)

		srv.StartServices(ctx, services)

		// Wait for shutdown signal
		srv.ShutdownServices(ctx, services)
		logger.Info().Msg("helmsman has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
