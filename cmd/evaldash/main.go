package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/evaldash/internal/adapter/driven/reviewapi"
	sqliteadapter "github.com/ericfisherdev/evaldash/internal/adapter/driven/sqlite"
	httphandler "github.com/ericfisherdev/evaldash/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/evaldash/internal/adapter/driving/web"
	"github.com/ericfisherdev/evaldash/internal/application"
	"github.com/ericfisherdev/evaldash/internal/config"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration (fail fast on a missing API URL).
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"api_url", cfg.APIBaseURL,
		"listen_addr", cfg.ListenAddr,
		"db_path", cfg.DBPath,
		"request_timeout", cfg.RequestTimeout,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the profile database (dual reader/writer with WAL mode).
	db, err := sqliteadapter.NewDB(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("error closing database", "error", closeErr)
		}
	}()
	slog.Info("database opened", "path", cfg.DBPath)

	// 4. Run migrations on the writer connection.
	if err := sqliteadapter.RunMigrations(db.Writer); err != nil {
		return err
	}
	slog.Info("migrations complete")

	// 5. Wire adapters and services.
	profileStore := sqliteadapter.NewProfileRepo(db)
	apiClient, err := reviewapi.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		return err
	}
	reviewSvc := application.NewReviewService(apiClient, profileStore, slog.Default())

	// Warn, don't fail: the dashboard renders an inline error until the
	// backend comes up.
	if err := apiClient.Health(ctx); err != nil {
		slog.Warn("review API not reachable at startup", "error", err)
	}

	// 6. Register JSON API and GUI routes.
	mux := http.NewServeMux()
	apiHandler := httphandler.NewHandler(apiClient, slog.Default())
	httphandler.RegisterRoutes(mux, apiHandler)

	guiHandler := webhandler.NewHandler(apiClient, reviewSvc, slog.Default())
	webhandler.RegisterRoutes(mux, guiHandler)

	handler := httphandler.ApplyMiddleware(mux, slog.Default())

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
		}
	}()

	slog.Info("evaldash started", "listen_addr", cfg.ListenAddr)

	// 7. Wait for shutdown signal, then drain with a 10s timeout.
	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}
