package main

import (
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/app"
	"github.com/smbilal1/Huts-And-Farms-AI-sub000/internal/config"
	"github.com/spf13/cobra"
	"github.com/wb-go/wbf/logger"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "hutbooker",
		Short:         "Hut and farmhouse booking service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to config file (defaults to CONFIG_PATH or "+config.DefaultPath+")")

	load := func() (*config.Config, logger.Logger, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, nil, err
		}
		log, err := app.NewLogger(cfg)
		if err != nil {
			return nil, nil, err
		}
		return cfg, log, nil
	}

	root.AddCommand(newServeCmd(load))
	root.AddCommand(newSweepCmd(load))
	root.AddCommand(newMigrateCmd(load))

	return root
}

type loadFunc func() (*config.Config, logger.Logger, error)
