package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres/plan"
	"github.com/heartmarshall/plancatalog-backend/internal/auth"
	"github.com/heartmarshall/plancatalog-backend/internal/config"
	"github.com/heartmarshall/plancatalog-backend/internal/service/catalog"
	"github.com/heartmarshall/plancatalog-backend/internal/transport/middleware"
	"github.com/heartmarshall/plancatalog-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires the catalog service behind the REST API and serves until
// ctx is cancelled, then shuts the HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("audit_policy", cfg.Catalog.AuditPolicy),
		slog.String("slug_collision", cfg.Catalog.SlugCollision),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer migrator.Close()

	if cfg.Database.AutoMigrate {
		applied, err := migrator.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Any("versions", applied))
	}

	svc := catalog.NewService(
		logger,
		plan.New(pool),
		audit.New(pool),
		postgres.NewTxManager(pool),
		CatalogPolicy(cfg.Catalog),
	)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewRouter(RouterDeps{
		Config:  cfg,
		Logger:  logger,
		Plans:   rest.NewPlanHandler(svc, logger),
		Health:  rest.NewHealthHandler(pool, migrator, Version),
		Tokens:  jwt,
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	return serve(ctx, srv, cfg.Server.ShutdownTimeout, logger)
}

// serve runs srv until ctx is done, then drains in-flight requests for at
// most shutdownTimeout.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return <-errCh
}

// CatalogPolicy maps validated configuration onto the service policy.
func CatalogPolicy(cfg config.CatalogConfig) catalog.Policy {
	p := catalog.DefaultPolicy()
	if cfg.SlugCollision == config.SlugCollisionReject {
		p.SlugCollision = catalog.SlugCollisionReject
	}
	if cfg.AuditPolicy == config.AuditPolicyBestEffort {
		p.AuditPolicy = catalog.AuditBestEffort
	}
	p.RequireFullReorder = cfg.RequireFullReorder
	if cfg.DefaultCurrency != "" {
		p.DefaultCurrency = cfg.DefaultCurrency
	}
	if cfg.HistoryLimit > 0 {
		p.HistoryLimit = cfg.HistoryLimit
	}
	return p
}
