package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/app"
	"github.com/spf13/cobra"
)

func newSweepCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "sweep",
		Short: "Expire stale pending bookings once and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			ctx, cancel := context.WithTimeout(ctx, cfg.Sweeper.SweepTimeout)
			defer cancel()

			application, err := app.New(ctx, cfg, log)
			if err != nil {
				return fmt.Errorf("app init: %w", err)
			}
			defer application.Close()

			report, err := application.SweepOnce(ctx)
			if err != nil {
				return fmt.Errorf("sweep: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}
}
