// Package audit implements the plan audit log using PostgreSQL.
// It provides append-only operations; rows are never updated or deleted
// (the table also rejects UPDATE/DELETE by trigger).
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

const table = "plan_audit_log"

var columns = []string{
	"id", "entity_id", "action", "performed_by_id", "performed_by_email",
	"created_at", "previous_data", "new_data", "details",
}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts a new audit entry and returns it as persisted.
// The timestamp is assigned by the database and is strictly later than any
// earlier entry for the same entity. A zero entry.ID is replaced by a new UUID.
func (r *Repo) Append(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	prevJSON, err := marshalSnapshot(entry.PreviousData)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit entry %s marshal previous_data: %w", entry.ID, err)
	}
	newJSON, err := marshalSnapshot(entry.NewData)
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit entry %s marshal new_data: %w", entry.ID, err)
	}

	timestamp := squirrel.Expr(
		"GREATEST(clock_timestamp(), COALESCE((SELECT max(created_at) FROM "+table+
			" WHERE entity_id = ?), '-infinity'::timestamptz) + interval '1 microsecond')",
		entry.EntityID,
	)

	sql, args, err := postgres.Builder().
		Insert(table).
		Columns(columns...).
		Values(
			entry.ID, entry.EntityID, string(entry.Action), entry.PerformedBy.ID, entry.PerformedBy.Email,
			timestamp, prevJSON, newJSON, entry.Details,
		).
		Suffix("RETURNING created_at").
		ToSql()
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("build audit insert: %w", err)
	}

	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&entry.Timestamp); err != nil {
		return domain.AuditEntry{}, postgres.MapError(err, "audit entry", entry.ID)
	}

	return entry, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a single audit entry.
// Returns domain.ErrNotFound if it does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (domain.AuditEntry, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.AuditEntry{}, fmt.Errorf("build audit select: %w", err)
	}

	entry, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return domain.AuditEntry{}, postgres.MapError(err, "audit entry", id)
	}
	return entry, nil
}

// ListByEntity returns the change history for one entity, most recent first,
// limited to limit entries. Returns an empty slice (not nil) when there is none.
func (r *Repo) ListByEntity(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	sql, args, err := postgres.Builder().
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit entries by entity: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.AuditEntry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries by entity: %w", err)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (domain.AuditEntry, error) {
	var (
		e              domain.AuditEntry
		action         string
		prevJSON, newJ []byte
	)
	if err := row.Scan(
		&e.ID, &e.EntityID, &action, &e.PerformedBy.ID, &e.PerformedBy.Email,
		&e.Timestamp, &prevJSON, &newJ, &e.Details,
	); err != nil {
		return domain.AuditEntry{}, err
	}
	e.Action = domain.AuditAction(action)

	var err error
	if e.PreviousData, err = unmarshalSnapshot(prevJSON); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit entry %s unmarshal previous_data: %w", e.ID, err)
	}
	if e.NewData, err = unmarshalSnapshot(newJ); err != nil {
		return domain.AuditEntry{}, fmt.Errorf("audit entry %s unmarshal new_data: %w", e.ID, err)
	}

	return e, nil
}

// marshalSnapshot encodes a snapshot as JSONB (nil -> NULL).
func marshalSnapshot(s *domain.PlanSnapshot) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func unmarshalSnapshot(data []byte) (*domain.PlanSnapshot, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var s domain.PlanSnapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
