package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"impractical.co/adaptable"
	"impractical.co/adaptable/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "adaptable",
	Short: "Render the Adaptable theme's page shell",
	Long: `adaptable renders the head, navbar and header region of the Adaptable
theme from a YAML settings file, either once to stdout or continuously
through a preview server.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "adaptable.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadTheme() (*adaptable.Theme, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	theme, err := cfg.Theme()
	if err != nil {
		return nil, fmt.Errorf("building theme: %w", err)
	}
	return theme, nil
}
