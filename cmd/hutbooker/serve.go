package main

import (
	"context"
	"fmt"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/app"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/config"
	"github.com/spf13/cobra"
)

func newServeCmd(load loadFunc) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the expiration sweeper",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}

			if migrateUp && cfg.Storage.Driver == config.StorageDriverPostgres {
				if err = app.RunMigrations(cfg.Postgres.DSN(), log); err != nil {
					return fmt.Errorf("migrations: %w", err)
				}
			}

			application, err := app.New(context.Background(), cfg, log)
			if err != nil {
				return fmt.Errorf("app init: %w", err)
			}

			if err = application.Run(); err != nil {
				return fmt.Errorf("app run: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")
	return cmd
}
