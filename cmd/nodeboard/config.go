package main

import (
	"os"

	"github.com/phanxgames/nodeboard/internal/config"
	"github.com/phanxgames/nodeboard/internal/ui"
	"github.com/spf13/cobra"
)

func configCmd() *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if write {
				path := configPath
				if path == "" {
					path = config.DefaultPath()
				}
				if err := config.Save(cfg, path); err != nil {
					ui.Bad.Printf("nodeboard: %v\n", err)
					return err
				}
				ui.KeyValue("wrote", path)
				return nil
			}
			ui.Banner("config")
			return config.Encode(cfg, os.Stdout)
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "Write the effective config to the config file")
	return cmd
}
