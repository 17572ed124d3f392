package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sisyphus/internal/platform/tui"
	"github.com/vovakirdan/sisyphus/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mountain from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
Esc or B in game returns to the menu.

Examples:
  sisyphus menu
  sisyphus menu --fps 30`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	logger, closeLog := localLogger()
	defer closeLog()

	runtime := terminalConfig()
	opts := tui.ModelOptions{
		HoldDuration: holdDuration(cfg),
		Logger:       logger,
	}

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(runtime)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		runtime = menuResult.Config
		if menuResult.Quit {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh mountain every round unless a seed is pinned
		if flagSeed == 0 {
			runtime.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, runtime, opts)
		if err != nil {
			logger.Error("game failed", "game", game.ID(), "error", err)
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if !back {
			break
		}
	}
}
