// Package plan implements the Plan repository using PostgreSQL.
// It owns the mutable current state of catalog plans; history lives in the
// audit package.
package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

const (
	table          = "plans"
	slugConstraint = "ux_plans_slug"
)

var columns = []string{
	"id", "slug", "name", "description", "price", "currency", "period", "features",
	"is_active", "is_public", "is_popular", "sort_order", "icon", "color",
	"max_users", "max_projects",
	"created_at", "created_by_id", "created_by_email",
	"updated_at", "updated_by_id", "updated_by_email", "version",
}

// Strictly increasing per row, even when two writes land in the same microsecond.
var nextUpdatedAt = squirrel.Expr("GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')")

// Repo provides plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a plan by primary key.
// Returns domain.ErrNotFound if the plan does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, false, id)
}

// GetByIDForUpdate returns a plan and locks its row until the surrounding
// transaction ends. Outside a transaction it behaves like GetByID.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, postgres.InTx(ctx), id)
}

// GetBySlug returns the plan owning slug.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (*domain.Plan, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, false, slug)
}

// SlugTaken reports whether slug belongs to any plan other than excludeID.
// Pass uuid.Nil to check against every plan.
func (r *Repo) SlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	inner := postgres.Builder().
		Select("1").
		From(table).
		Where(squirrel.Eq{"slug": slug}).
		Where(squirrel.NotEq{"id": excludeID})

	sql, args, err := inner.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build slug check: %w", err)
	}

	var taken bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&taken); err != nil {
		return false, postgres.MapError(err, "plan slug", slug)
	}
	return taken, nil
}

// Count returns the number of plans in the catalog, soft-deleted included.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count plans: %w", err)
	}
	return n, nil
}

// List returns plans ordered by display order, then creation time.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.PlanFilter) ([]*domain.Plan, error) {
	q := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("sort_order ASC", "created_at ASC", "id ASC")
	if filter.OnlyPublic {
		q = q.Where(squirrel.Eq{"is_active": true, "is_public": true})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	defer rows.Close()

	plans := make([]*domain.Plan, 0)
	for rows.Next() {
		p, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		plans = append(plans, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return plans, nil
}

// ListIDs returns the id of every plan in the catalog, soft-deleted included.
func (r *Repo) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	sql, args, err := postgres.Builder().Select("id").From(table).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list ids: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list plan ids: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, fmt.Errorf("list plan ids: %w", err)
	}
	return ids, nil
}

// LockCatalog takes a transaction-scoped advisory lock that serializes
// operations depending on the set of plans or their slugs (create, rename,
// rollback, reorder). It must be called inside a transaction and before any
// plan row lock, so every caller acquires the locks in the same order.
func (r *Repo) LockCatalog(ctx context.Context) error {
	if !postgres.InTx(ctx) {
		return fmt.Errorf("lock catalog: called outside a transaction")
	}
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('plans'))`); err != nil {
		return postgres.MapError(err, "catalog", "lock")
	}
	return nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new plan and returns the persisted row.
// CreatedAt and UpdatedAt are assigned by the database; Version starts at 1.
// Returns a *domain.DuplicateSlugError if the slug is taken.
func (r *Repo) Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	q := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			id, p.Slug, p.Name, p.Description, p.Price, p.Currency, string(p.Period), p.Features,
			p.IsActive, p.IsPublic, p.IsPopular, p.Order, p.Icon, p.Color,
			p.MaxUsers, p.MaxProjects,
			squirrel.Expr("clock_timestamp()"), p.CreatedBy.ID, p.CreatedBy.Email,
			squirrel.Expr("clock_timestamp()"), p.CreatedBy.ID, p.CreatedBy.Email, 1,
		).
		Suffix("RETURNING " + columnList())

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	created, err := scanPlan(row)
	if err != nil {
		if postgres.IsUniqueViolationOn(err, slugConstraint) {
			return nil, &domain.DuplicateSlugError{Slug: p.Slug}
		}
		return nil, postgres.MapError(err, "plan", id)
	}
	return created, nil
}

// Update writes every mutable field of p, attributing the write to actor.
// The write only applies when the stored version equals p.Version; the
// returned plan carries the incremented version and a strictly later UpdatedAt.
// Returns domain.ErrNotFound for an unknown id, domain.ErrConflict on a
// version mismatch and *domain.DuplicateSlugError when the slug is taken.
func (r *Repo) Update(ctx context.Context, p *domain.Plan, actor domain.Actor) (*domain.Plan, error) {
	q := postgres.Builder().
		Update(table).
		SetMap(map[string]any{
			"slug":             p.Slug,
			"name":             p.Name,
			"description":      p.Description,
			"price":            p.Price,
			"currency":         p.Currency,
			"period":           string(p.Period),
			"features":         p.Features,
			"is_active":        p.IsActive,
			"is_public":        p.IsPublic,
			"is_popular":       p.IsPopular,
			"sort_order":       p.Order,
			"icon":             p.Icon,
			"color":            p.Color,
			"max_users":        p.MaxUsers,
			"max_projects":     p.MaxProjects,
			"updated_at":       nextUpdatedAt,
			"updated_by_id":    actor.ID,
			"updated_by_email": actor.Email,
			"version":          squirrel.Expr("version + 1"),
		}).
		Where(squirrel.Eq{"id": p.ID, "version": p.Version}).
		Suffix("RETURNING " + columnList())

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...)
	updated, err := scanPlan(row)
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, pgx.ErrNoRows):
		return nil, r.missOrConflict(ctx, p.ID, p.Version)
	case postgres.IsUniqueViolationOn(err, slugConstraint):
		return nil, &domain.DuplicateSlugError{Slug: p.Slug}
	default:
		return nil, postgres.MapError(err, "plan", p.ID)
	}
}

// SetOrders assigns sort_order for every id in one pgx batch. It must run
// inside a transaction for all-or-nothing semantics: the first id that does
// not exist aborts the batch with domain.ErrNotFound.
func (r *Repo) SetOrders(ctx context.Context, ids []uuid.UUID, actor domain.Actor) error {
	if len(ids) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, id := range ids {
		sql, args, err := postgres.Builder().
			Update(table).
			Set("sort_order", i).
			Set("updated_at", nextUpdatedAt).
			Set("updated_by_id", actor.ID).
			Set("updated_by_email", actor.Email).
			Set("version", squirrel.Expr("version + 1")).
			Where(squirrel.Eq{"id": id}).
			ToSql()
		if err != nil {
			return fmt.Errorf("build reorder: %w", err)
		}
		batch.Queue(sql, args...)
	}

	br := postgres.QuerierFromCtx(ctx, r.pool).SendBatch(ctx, batch)
	defer br.Close()

	for _, id := range ids {
		tag, err := br.Exec()
		if err != nil {
			return postgres.MapError(err, "plan", id)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
		}
	}

	return br.Close()
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, forUpdate bool, key any) (*domain.Plan, error) {
	q := postgres.Builder().Select(columns...).From(table).Where(where)
	if forUpdate {
		q = q.Suffix("FOR UPDATE")
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	p, err := scanPlan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "plan", key)
	}
	return p, nil
}

func (r *Repo) missOrConflict(ctx context.Context, id uuid.UUID, version int) error {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return fmt.Errorf("plan %s: version %d is stale (current %d): %w", id, version, current.Version, domain.ErrConflict)
}

func columnList() string {
	return strings.Join(columns, ", ")
}

func scanPlan(row pgx.Row) (*domain.Plan, error) {
	var (
		p      domain.Plan
		period string
	)
	err := row.Scan(
		&p.ID, &p.Slug, &p.Name, &p.Description, &p.Price, &p.Currency, &period, &p.Features,
		&p.IsActive, &p.IsPublic, &p.IsPopular, &p.Order, &p.Icon, &p.Color,
		&p.MaxUsers, &p.MaxProjects,
		&p.CreatedAt, &p.CreatedBy.ID, &p.CreatedBy.Email,
		&p.UpdatedAt, &p.UpdatedBy.ID, &p.UpdatedBy.Email, &p.Version,
	)
	if err != nil {
		return nil, err
	}
	p.Period = domain.PlanPeriod(period)
	return &p, nil
}
