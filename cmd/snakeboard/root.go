package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/snakeboard/config"
	"github.com/lixenwraith/snakeboard/logging"
)

var (
	debug       bool
	configPath  string
	seed        int64
	ladderOnTop bool
	showPoints  bool

	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "snakeboard",
	Short: "Procedural snakes and ladders board generator",
	Long: `Generate snakes and ladders boards with fair item placement and
non-overlapping snake bodies.

Examples:
  snakeboard gen --seed 42
  snakeboard gen --json -n 3
  snakeboard render --out board.png
  snakeboard view`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logFile = logging.Setup(debug)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&debug, "debug", false, "Write debug log to logs/snakeboard.log")
	flags.StringVarP(&configPath, "config", "c", "", "TOML config file")
	flags.Int64VarP(&seed, "seed", "s", 0, "Random seed, 0 picks one from the clock")
	flags.BoolVar(&ladderOnTop, "ladder-on-top", false, "Draw ladders over snakes")
	flags.BoolVar(&showPoints, "show-points", false, "Mark item endpoints")
}

// loadConfig layers defaults, the config file, environment and flags
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
	}
	cfg = config.ApplyEnv(cfg)

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("ladder-on-top") {
		cfg.LadderOnTop = ladderOnTop
	}
	if flags.Changed("show-points") {
		cfg.ShowStartEndPoints = showPoints
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	logging.Log.WithField("seed", cfg.Seed).Debug("config loaded")
	return cfg, nil
}
