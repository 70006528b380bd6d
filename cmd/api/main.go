package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/biztime/internal/company"
	companyStore "github.com/MrJamesThe3rd/biztime/internal/company/store"
	"github.com/MrJamesThe3rd/biztime/internal/config"
	"github.com/MrJamesThe3rd/biztime/internal/database"
	bizHttp "github.com/MrJamesThe3rd/biztime/internal/http"
	companyHandler "github.com/MrJamesThe3rd/biztime/internal/http/company"
	healthHandler "github.com/MrJamesThe3rd/biztime/internal/http/health"
	invoiceHandler "github.com/MrJamesThe3rd/biztime/internal/http/invoice"
	"github.com/MrJamesThe3rd/biztime/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/biztime/internal/invoice/store"
	"github.com/MrJamesThe3rd/biztime/internal/logging"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, err := logging.New(os.Stderr, logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Discard: cfg.IsTest(),
	})
	if err != nil {
		return fmt.Errorf("configuring logger: %w", err)
	}

	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(ctx, cfg.ConnectionString(), database.PoolOptions{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	var (
		companyService = company.NewService(companyStore.New(db))
		invoiceService = invoice.NewService(invoiceStore.New(db))
	)

	router := bizHttp.New(
		bizHttp.Options{
			RequestTimeout: cfg.Server.Timeout,
			MaxBodyBytes:   cfg.Server.MaxBodyBytes,
			AllowedOrigins: cfg.CORS.AllowedOrigins,
		},
		healthHandler.NewHandler(db),
		companyHandler.NewHandler(companyService),
		invoiceHandler.NewHandler(invoiceService),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "env", cfg.App.Env, "addr", srv.Addr)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	return nil
}
