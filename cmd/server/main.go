package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mmynk/giftdraw/internal/auth"
	"github.com/mmynk/giftdraw/internal/config"
	"github.com/mmynk/giftdraw/internal/metrics"
	"github.com/mmynk/giftdraw/internal/pairing"
	"github.com/mmynk/giftdraw/internal/server"
	"github.com/mmynk/giftdraw/internal/storage/sqlite"
	"github.com/mmynk/giftdraw/internal/telemetry"
	"github.com/mmynk/giftdraw/pkg/logging"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return fmt.Errorf("setup tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			slog.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	engine, err := pairing.NewEngine(cfg.Pairing())
	if err != nil {
		return err
	}

	authenticator := auth.NewPasswordAuthenticator(store)
	if cfg.AdminEmail != "" {
		if err := authenticator.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
			return err
		}
	}

	router := server.NewRouter(server.Deps{
		Store:         store,
		Engine:        engine,
		Authenticator: authenticator,
		JWT:           auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL),
		Metrics:       metrics.NewCollector(),
		CORSOrigins:   cfg.CORSOrigins,
		Logger:        slog.Default(),
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := server.NewHTTPServer(addr, router)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting",
			"address", addr,
			"url", fmt.Sprintf("http://localhost%s", addr),
			"years_lookback", cfg.YearsLookback,
			"minimum_age", cfg.MinimumAge,
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
