package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sisyphus/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, after applying
the config file search order and the --terrain override, as YAML.

With --defaults it prints the built-in defaults file instead, comments
included.

The output is a valid config file:
  sisyphus config > ~/.sisyphus/configs/sisyphus.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults file")
}

func runConfig(_ *cobra.Command, _ []string) {
	var cfg config.SisyphusConfig
	if !flagDefaults {
		cfg = loadConfig()
	}

	if err := writeConfig(os.Stdout, cfg, flagDefaults); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig writes cfg as YAML, or the embedded defaults file when
// defaults is set.
func writeConfig(w io.Writer, cfg config.SisyphusConfig, defaults bool) error {
	data := config.GetDefaultYAML()
	if !defaults {
		var err error
		if data, err = config.Marshal(cfg); err != nil {
			return err
		}
	}
	_, err := w.Write(data)
	return err
}
