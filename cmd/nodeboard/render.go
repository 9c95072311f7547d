package main

import (
	"fmt"
	"strings"

	"github.com/phanxgames/nodeboard"
	"github.com/phanxgames/nodeboard/internal/ui"
	"github.com/spf13/cobra"
)

func renderCmd() *cobra.Command {
	var (
		out      string
		width    int
		height   int
		selectID string
		sets     []string
		fit      bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the starter board to a PNG without opening a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}

			board := nodeboard.NewBoard(nodeboard.DefaultNodes())
			if selectID != "" {
				if _, ok := board.Node(selectID); !ok {
					return fmt.Errorf("unknown node %q", selectID)
				}
				board.SetSelected(selectID)
			}
			for _, kv := range sets {
				if err := applySet(board, kv); err != nil {
					return err
				}
			}

			viewport := nodeboard.Vec2{X: float64(width), Y: float64(height)}
			cam := nodeboard.NewCamera(opts.InitialCamera.X, opts.InitialCamera.Y, opts.InitialScale, opts.MinScale, opts.MaxScale)
			if fit {
				if r, ok := nodeboard.NodesBounds(board.Nodes()); ok {
					cam.FitRect(r, viewport, 48, 0, nil)
				}
			}

			img, err := nodeboard.RenderImage(*cam, viewport, board.Nodes(), board.Selected(), opts)
			if err != nil {
				return err
			}
			if err := img.SavePNG(out); err != nil {
				ui.Bad.Printf("nodeboard: %v\n", err)
				return err
			}
			fmt.Printf("  %s wrote %s (%dx%d)\n", ui.Good.Sprint("✓"), out, width, height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "board.png", "Output PNG path")
	cmd.Flags().IntVar(&width, "width", 1280, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", 720, "Image height in pixels")
	cmd.Flags().StringVar(&selectID, "select", "", "Node id to select before rendering")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Property edit on the selected node, e.g. --set label=Hello")
	cmd.Flags().BoolVar(&fit, "fit", false, "Fit the camera to all nodes")
	return cmd
}

func applySet(board *nodeboard.Board, kv string) error {
	key, value, ok := strings.Cut(kv, "=")
	if !ok {
		return fmt.Errorf("--set %q: want field=value", kv)
	}
	field, ok := nodeboard.ParseField(key)
	if !ok {
		return fmt.Errorf("--set %q: unknown field %q", kv, key)
	}
	if !board.SetField(field, value) {
		ui.Warn.Printf("  ignored --set %s\n", kv)
	}
	return nil
}
