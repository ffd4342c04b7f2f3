package testhelper

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

// catalogMu serializes tests that need the plans table to themselves.
var catalogMu sync.Mutex

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedActor returns an actor with a unique email.
func SeedActor() domain.Actor {
	return domain.Actor{ID: uuid.New(), Email: "admin-" + uniqueSuffix() + "@example.com"}
}

// SeedPlan inserts a plan directly and returns it. The slug and name carry a
// unique suffix so parallel tests do not collide.
func SeedPlan(t *testing.T, pool *pgxpool.Pool, order int) domain.Plan {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	actor := SeedActor()
	maxUsers := 10

	plan := domain.Plan{
		ID:          uuid.New(),
		Slug:        "seed-plan-" + suffix,
		Name:        "Seed Plan " + suffix,
		Description: "Seeded for tests",
		Price:       19.5,
		Currency:    "USD",
		Period:      domain.PlanPeriodMonthly,
		Features:    []string{"menu", "orders"},
		IsActive:    true,
		IsPublic:    true,
		Order:       order,
		Icon:        "star",
		Color:       "#ff8800",
		MaxUsers:    &maxUsers,
		CreatedAt:   now,
		CreatedBy:   actor,
		UpdatedAt:   now,
		UpdatedBy:   actor,
		Version:     1,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO plans (id, slug, name, description, price, currency, period, features,
		   is_active, is_public, is_popular, sort_order, icon, color, max_users, max_projects,
		   created_at, created_by_id, created_by_email, updated_at, updated_by_id, updated_by_email, version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
		   $17, $18, $19, $20, $21, $22, $23)`,
		plan.ID, plan.Slug, plan.Name, plan.Description, plan.Price, plan.Currency, string(plan.Period), plan.Features,
		plan.IsActive, plan.IsPublic, plan.IsPopular, plan.Order, plan.Icon, plan.Color, plan.MaxUsers, plan.MaxProjects,
		plan.CreatedAt, plan.CreatedBy.ID, plan.CreatedBy.Email, plan.UpdatedAt, plan.UpdatedBy.ID, plan.UpdatedBy.Email, plan.Version,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPlan insert: %v", err)
	}

	return plan
}

// LockCatalog gives the calling test exclusive use of the plans table and
// empties it. The lock is released via t.Cleanup. Audit rows are kept; they
// are keyed by plan id and never collide.
func LockCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	catalogMu.Lock()
	t.Cleanup(catalogMu.Unlock)

	if _, err := pool.Exec(context.Background(), `DELETE FROM plans`); err != nil {
		t.Fatalf("testhelper: LockCatalog clear plans: %v", err)
	}
}
