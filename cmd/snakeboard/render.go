package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/snakeboard/board"
	"github.com/lixenwraith/snakeboard/logging"
	"github.com/lixenwraith/snakeboard/render"
)

var (
	outputFile string
	noTiles    bool
)

func init() {
	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render a board to PNG",
		Long: `Render one generated board as a PNG image.

Examples:
  snakeboard render --out board.png
  snakeboard render --seed 42 --out board.png --show-points`,
		RunE: runRender,
	}

	renderCmd.Flags().StringVarP(&outputFile, "out", "o", "board.png", "Output PNG file")
	renderCmd.Flags().BoolVar(&noTiles, "no-tiles", false, "Skip the numbered tile background")

	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	g := board.New(cfg)
	l := g.Generate()

	opts := render.DefaultOptions(render.NewHeadCache(cfg.HeadAssetDir, cfg.BaseHeadSize))
	opts.DrawBoard = !noTiles
	opts.ShowEndpoints = cfg.ShowStartEndPoints

	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := render.PNG(f, l, g.Geometry(), opts); err != nil {
		f.Close()
		return fmt.Errorf("failed to render board: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFile, err)
	}

	logging.Log.WithField("file", outputFile).Info("board rendered")
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (seed %d)\n", outputFile, l.Report.Seed)
	return nil
}
