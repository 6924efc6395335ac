package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdulachik/adskit/internal/app"
	"github.com/abdulachik/adskit/internal/campaign"
)

var (
	generateURL         string
	generateDescription string
	generateCountry     string
	generateOutput      string
	generateOffline     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a campaign kit archive",
	Long: `Generate a campaign kit ZIP for one store.

Examples:
  adskit generate --url https://acme-leather.com --description "Handmade leather wallets" --country "United States"
  adskit generate --url https://acme.com --description "Oak dining tables" --country UK --offline -o kit.zip`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateURL, "url", "", "Store URL")
	generateCmd.Flags().StringVar(&generateDescription, "description", "", "Business description")
	generateCmd.Flags().StringVar(&generateCountry, "country", "", "Target country")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: adskit-<brand>-campaign.zip)")
	generateCmd.Flags().BoolVar(&generateOffline, "offline", false, "Skip the AI pipeline and write fallback content")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(cfg, app.Options{Offline: generateOffline})
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	k, err := a.BuildKit(ctx, campaign.Input{
		StoreURL:    generateURL,
		Description: generateDescription,
		Country:     generateCountry,
	})
	if err != nil {
		return err
	}

	path := generateOutput
	if path == "" {
		path = k.Filename
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, k.Archive, 0o644); err != nil {
		return fmt.Errorf("write kit: %w", err)
	}

	slog.Info("kit written",
		"path", path,
		"brand", k.Brand,
		"fallback", k.Fallback,
		"request_id", k.RequestID,
	)
	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}
