// sisyphus is a terminal rendition of the eternal labor: push the stone up
// the mountain, watch it roll down, start again.
//
// Usage:
//
//	sisyphus play [variant]  - Push the stone (default variant: sisyphus)
//	sisyphus menu            - Pick a mountain interactively
//	sisyphus serve           - Start SSH server for remote play
//	sisyphus list            - List available variants
//	sisyphus config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible terrain
//	--config <path>       - Custom YAML config
//	--terrain <policy>    - Terrain policy: random or peak
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Log file for local play
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sisyphus/internal/config"
	"github.com/vovakirdan/sisyphus/internal/games/sisyphus"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagTerrain  string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sisyphus",
	Short: "Sisyphus - push the stone, forever",
	Long: `Sisyphus pushes a stone up a procedurally generated mountain.
Once the stone crosses the peak it rolls down the far side and the
labor starts over. There is no score and no end.

Available commands:
  play     - Push the stone on a chosen mountain
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  list     - Show all variants
  config   - Print the effective configuration

Examples:
  sisyphus play
  sisyphus play sisyphus_peak
  sisyphus play --terrain peak --seed 42
  sisyphus serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagTerrain, "terrain", "", "Terrain policy override: random, peak")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs of local play to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the effective configuration from the global flags
// and hands the overrides to the game package. Exits on invalid input.
func loadConfig() config.SisyphusConfig {
	cfg, err := config.LoadSisyphus(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flagTerrain != "" {
		policy, err := config.ParsePolicy(flagTerrain)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		config.ApplyPolicy(&cfg, policy)
		sisyphus.SetTerrainPolicy(policy)
	}

	if flagFPS <= 0 {
		fmt.Fprintf(os.Stderr, "Error: --fps must be positive, got %d\n", flagFPS)
		os.Exit(1)
	}

	sisyphus.SetConfigPath(flagConfig)
	return cfg
}

// newLogger builds a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
}

// localLogger returns the logger for local play. The terminal belongs to
// the TUI, so logs only go to --log-file when it is set.
// The returned close function must be called on exit.
func localLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard, "sisyphus"), func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open log file: %v\n", err)
		os.Exit(1)
	}
	return newLogger(f, "sisyphus"), func() { f.Close() }
}

// holdDuration converts the configured key hold time.
func holdDuration(cfg config.SisyphusConfig) time.Duration {
	return time.Duration(cfg.Input.HoldMS) * time.Millisecond
}
