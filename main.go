// planetdrop is a drop-and-merge physics puzzle: pull a planet back from the
// spawn point and let go to fling it into the arena.
//
// Usage:
//
//	planetdrop                  - Play in a window (same as "play")
//	planetdrop simulate         - Run scripted launches without a window
//	planetdrop trajectory       - Print the predicted path for a drag
//
// Global flags:
//
//	--config <path>     - YAML config to overlay on the defaults
//	--seed <value>      - RNG seed for the level draws (0 = random)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/planetdrop/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint64
	flagLogLevel string

	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "planetdrop",
	Short: "Fling planets into a walled arena",
	Long: `planetdrop spawns a planet at the top of the arena. Press on it, pull back
and release to launch it; the further you pull, the faster it flies. A dashed
line previews the path while you aim.

Keys:
  P    - Toggle the path preview
  F    - Toggle fullscreen
  F3   - Toggle debug overlay`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(trajectoryCmd)
}

// setup configures logging and loads the config before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "planetdrop",
		Level:           level,
	})
	log.SetDefault(logger)

	path, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("config loaded", "path", path)
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
