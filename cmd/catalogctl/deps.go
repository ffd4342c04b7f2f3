package main

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres/plan"
	"github.com/heartmarshall/plancatalog-backend/internal/app"
	"github.com/heartmarshall/plancatalog-backend/internal/config"
	"github.com/heartmarshall/plancatalog-backend/internal/domain"
	"github.com/heartmarshall/plancatalog-backend/internal/service/catalog"
)

// deps holds what the data commands share. close releases the pool.
type deps struct {
	cfg  *config.Config
	pool *pgxpool.Pool
	svc  *catalog.Service
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func loadDeps(ctx context.Context) (*deps, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := app.NewLogger(cfg.Log)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	svc := catalog.NewService(
		logger,
		plan.New(pool),
		audit.New(pool),
		postgres.NewTxManager(pool),
		app.CatalogPolicy(cfg.Catalog),
	)
	return &deps{cfg: cfg, pool: pool, svc: svc}, nil
}

func (d *deps) close() {
	d.pool.Close()
}

// actorFlags adds the flags that identify who performs a mutation.
func actorFlags(cmd *cobra.Command, id, email *string) {
	cmd.Flags().StringVar(id, "actor-id", "", "UUID of the operator performing the change (required)")
	cmd.Flags().StringVar(email, "actor-email", "", "email of the operator")
	_ = cmd.MarkFlagRequired("actor-id")
}

func parseActor(id, email string) (domain.Actor, error) {
	uid, err := uuid.Parse(id)
	if err != nil || uid == uuid.Nil {
		return domain.Actor{}, fmt.Errorf("invalid --actor-id %q", id)
	}
	return domain.Actor{ID: uid, Email: email}, nil
}

// parseEntityID accepts a plan UUID or "catalog" for the reorder history.
func parseEntityID(s string) (uuid.UUID, error) {
	if s == "catalog" {
		return domain.CatalogEntityID, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid plan id %q: %w", s, err)
	}
	return id, nil
}
