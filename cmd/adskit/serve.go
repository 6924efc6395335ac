package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abdulachik/adskit/internal/app"
	"github.com/abdulachik/adskit/internal/server"
)

const shutdownTimeout = 10 * time.Second

var (
	serveAddr    string
	serveOffline bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the kit generation HTTP server",
	Long: `Run an HTTP server exposing POST /api/generate, which returns a campaign kit
ZIP for a JSON body {"storeUrl", "description", "country"}, and GET /healthz.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default: $HTTP_ADDR or :8080)")
	serveCmd.Flags().BoolVar(&serveOffline, "offline", false, "Serve fallback content only")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serveAddr != "" {
		cfg.HTTPAddr = serveAddr
	}
	if err := cfg.ValidateForServe(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	a, err := app.New(cfg, app.Options{Offline: serveOffline})
	if err != nil {
		return fmt.Errorf("create app: %w", err)
	}

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           server.New(a, a.Logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	slog.Info("starting adskit server",
		"addr", cfg.HTTPAddr,
		"provider", cfg.AIProvider,
		"offline", serveOffline,
	)

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal")
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	slog.Info("shutting down...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
