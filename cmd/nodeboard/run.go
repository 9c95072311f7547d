package main

import (
	"os"

	"github.com/phanxgames/nodeboard"
	"github.com/spf13/cobra"
)

var (
	runScript string
	runDebug  bool
)

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the canvas in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEditor(cmd)
		},
	}
	cmd.Flags().StringVar(&runScript, "script", "", "YAML or JSON test script to play back")
	cmd.Flags().BoolVar(&runDebug, "debug", false, "Log per-frame stats to stderr")
	return cmd
}

func runEditor(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if runDebug {
		opts.Debug = true
	}

	board := nodeboard.NewBoard(nodeboard.DefaultNodes())
	a := newApp(board, opts)
	a.editor.ScreenshotDir = cfg.Debug.ScreenshotDir

	if runScript != "" {
		data, err := os.ReadFile(runScript)
		if err != nil {
			return err
		}
		runner, err := nodeboard.LoadTestScript(data)
		if err != nil {
			return err
		}
		a.editor.SetTestRunner(runner)
		a.runner = runner
	}

	return nodeboard.RunGame(a, nodeboard.RunConfig{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Resizable: cfg.Window.Resizable,
	})
}
