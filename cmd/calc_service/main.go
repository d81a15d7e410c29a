package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"utility-calculator/internal/api"
	"utility-calculator/internal/config"
	"utility-calculator/internal/logger"
	"utility-calculator/internal/metrics"
	"utility-calculator/internal/storage"
	"utility-calculator/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "calc_service",
		Short:        "HTTP utility calculators and an in-memory user list",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath, cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a config file (yaml, json or toml)")
	cmd.Flags().String("addr", ":8080", "listen address")
	cmd.Flags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().String("db", ":memory:", "sqlite DSN for the calculation history")
	return cmd
}

// SetupRouter builds the HTTP handler and returns a cleanup func for the
// resources it opened.
func SetupRouter(cfg *config.Config, log *zap.Logger) (http.Handler, func(), error) {
	gin.SetMode(cfg.Server.Mode)

	db, err := storage.NewSQLite(cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := storage.Close(db); err != nil {
			log.Warn("close database", zap.Error(err))
		}
	}

	router := api.NewRouter(api.Deps{
		Users:        store.NewUsers(store.WithObserver(metrics.SetUserRecords)),
		History:      storage.NewHistory(db),
		Limits:       cfg.Limits,
		Log:          log,
		AllowOrigins: cfg.CORS.AllowOrigins,
	})
	return router, cleanup, nil
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.New(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	handler, cleanup, err := SetupRouter(cfg, log)
	if err != nil {
		log.Error("setup failed", zap.Error(err))
		return err
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error("server failed", zap.Error(err))
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
