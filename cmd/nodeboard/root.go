package main

import (
	"github.com/phanxgames/nodeboard/internal/config"
	"github.com/phanxgames/nodeboard/internal/ui"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "nodeboard",
	Short: "nodeboard: a pannable, zoomable node canvas",
	Long: ui.Brand.Sprint("nodeboard") + " places rectangular nodes on an infinite grid\n" +
		ui.Subtle.Sprint("Drag nodes with the left button, pan with right or middle, zoom with the wheel"),
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEditor(cmd)
	},
}

func init() {
	rootCmd.SetVersionTemplate("nodeboard {{ .Version }}\n")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.DefaultPath()+")")

	rootCmd.AddCommand(
		runCmd(),
		renderCmd(),
		configCmd(),
	)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		ui.Bad.Printf("nodeboard: %v\n", err)
		return nil, err
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
