package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/sisyphus/internal/core"
	"github.com/vovakirdan/sisyphus/internal/platform/tui"
	"github.com/vovakirdan/sisyphus/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Push the stone",
	Long: `Start pushing the stone on the given mountain variant.

Controls:
  Up/W/K       - Push the stone uphill
  Left/A/H     - Walk left
  Right/D/L    - Walk right (also pushes while below the peak)
  P            - Pause
  R            - Start over on a new mountain
  ?            - More help
  Q/Ctrl+C     - Quit

Examples:
  sisyphus play
  sisyphus play sisyphus_peak
  sisyphus play --seed 42 --config ./my-mountain.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "sisyphus"
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if variant exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'sisyphus list' to see available variants.")
		os.Exit(1)
	}

	cfg := loadConfig()
	logger, closeLog := localLogger()
	defer closeLog()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, terminalConfig(), tui.ModelOptions{
		HoldDuration: holdDuration(cfg),
		Logger:       logger,
	}); err != nil {
		logger.Error("game failed", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// terminalConfig returns a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
