package main

import (
	"fmt"

	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/app"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/config"
	"github.com/spf13/cobra"
)

func newMigrateCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := load()
			if err != nil {
				return err
			}
			if cfg.Storage.Driver != config.StorageDriverPostgres {
				return fmt.Errorf("migrate requires the %q storage driver, got %q",
					config.StorageDriverPostgres, cfg.Storage.Driver)
			}
			return app.RunMigrations(cfg.Postgres.DSN(), log)
		},
	}
}
