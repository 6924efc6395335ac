package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abdulachik/adskit/internal/config"
)

var (
	configPath string
	logLevel   = new(slog.LevelVar)
)

var rootCmd = &cobra.Command{
	Use:   "adskit",
	Short: "Generate search ad campaign kits",
	Long: `Adskit turns a store URL, a business description and a target country into a
downloadable campaign kit: keyword and ad CSVs plus tracking and optimization guides.`,
	SilenceUsage: true,
}

func init() {
	// Load .env file if present
	_ = godotenv.Load()

	// Set up logging
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel.Set(slog.LevelDebug)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default: $ADSKIT_CONFIG)")
}

// loadConfig reads configuration and applies its log level.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return nil, err
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
