// Package catalog manages the subscription-plan catalog: validated plan
// mutations, slug and ordering rules, soft delete, and point-in-time rollback,
// each recorded as exactly one immutable audit entry.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
	"github.com/heartmarshall/plancatalog-backend/internal/metrics"
)

type planRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Plan, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Plan, error)
	SlugTaken(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, filter domain.PlanFilter) ([]*domain.Plan, error)
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
	LockCatalog(ctx context.Context) error
	Create(ctx context.Context, p *domain.Plan) (*domain.Plan, error)
	Update(ctx context.Context, p *domain.Plan, actor domain.Actor) (*domain.Plan, error)
	SetOrders(ctx context.Context, ids []uuid.UUID, actor domain.Actor) error
}

type auditLog interface {
	Append(ctx context.Context, entry domain.AuditEntry) (domain.AuditEntry, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.AuditEntry, error)
	ListByEntity(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Slug collision policies and audit policies accepted by Policy.
const (
	SlugCollisionSuffix = "suffix"
	SlugCollisionReject = "reject"

	AuditMandatory = "mandatory"
	// AuditBestEffort appends after commit, once the row locks are released.
	// Concurrent writers, even on the same plan, may then record their entries
	// in a different order than they committed.
	AuditBestEffort = "best_effort"
)

const (
	// slugSuffixAttempts bounds the search for a free disambiguated slug.
	slugSuffixAttempts = 5
	// fallbackSlug is used when a name has no slug-safe characters.
	fallbackSlug = "plan"
)

// Policy holds the catalog rules that are deployment choices.
type Policy struct {
	SlugCollision      string
	AuditPolicy        string
	RequireFullReorder bool
	DefaultCurrency    string
	HistoryLimit       int
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{
		SlugCollision:      SlugCollisionSuffix,
		AuditPolicy:        AuditMandatory,
		RequireFullReorder: true,
		DefaultCurrency:    "USD",
		HistoryLimit:       100,
	}
}

// Service provides plan catalog operations.
//
// Under the best-effort audit policy a mutating method may return a non-nil
// result together with a *domain.AuditWarning: the change is committed but
// its history entry is missing. Callers that only check err != nil will
// treat that as a failure; use errors.As to tell the cases apart.
type Service struct {
	plans  planRepo
	audit  auditLog
	tx     txManager
	policy Policy
	log    *slog.Logger

	newToken func() string
}

// NewService creates a new catalog service.
func NewService(
	log *slog.Logger,
	plans planRepo,
	audit auditLog,
	tx txManager,
	policy Policy,
) *Service {
	return &Service{
		plans:    plans,
		audit:    audit,
		tx:       tx,
		policy:   policy,
		log:      log.With("service", "catalog"),
		newToken: func() string { return uuid.New().String()[:8] },
	}
}

// write runs fn in a transaction and records the audit entry it returns.
// fn returns a nil entry when it decided nothing needs to change.
//
// With the mandatory policy the entry is appended inside the transaction, so
// an append failure rolls the mutation back. With the best-effort policy it
// is appended after commit and a failure becomes a *domain.AuditWarning;
// entries of concurrent writers may then land out of commit order.
func (s *Service) write(ctx context.Context, action domain.AuditAction, fn func(ctx context.Context) (*domain.AuditEntry, error)) error {
	var pending *domain.AuditEntry

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := fn(txCtx)
		if err != nil || entry == nil {
			return err
		}

		entry.Action = action
		if s.policy.AuditPolicy == AuditBestEffort {
			pending = entry
			return nil
		}

		if _, err := s.audit.Append(txCtx, *entry); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrAuditFailed, err)
		}
		pending = entry
		return nil
	})
	if err != nil {
		metrics.ObserveMutation(action.String(), metrics.ResultError)
		return err
	}

	if pending == nil {
		metrics.ObserveMutation(action.String(), metrics.ResultNoop)
		return nil
	}
	metrics.ObserveMutation(action.String(), metrics.ResultOK)

	if s.policy.AuditPolicy != AuditBestEffort {
		return nil
	}

	if _, err := s.audit.Append(ctx, *pending); err != nil {
		metrics.AuditAppendFailuresTotal.WithLabelValues(action.String()).Inc()
		s.log.WarnContext(ctx, "audit entry not recorded",
			slog.String("action", action.String()),
			slog.String("entity_id", pending.EntityID.String()),
			slog.String("error", err.Error()),
		)
		return &domain.AuditWarning{EntityID: pending.EntityID.String(), Action: action, Err: err}
	}
	return nil
}

// committed reports whether a write result means the mutation is durable.
func committed(err error) bool {
	var warning *domain.AuditWarning
	return err == nil || errors.As(err, &warning)
}

// requireActor rejects mutations without an identified actor.
func requireActor(actor domain.Actor) error {
	if actor.IsZero() {
		return domain.ErrUnauthorized
	}
	return nil
}

// baseSlug derives the slug for name, falling back when nothing usable remains.
func baseSlug(name string) string {
	if slug := domain.Slugify(name); slug != "" {
		return slug
	}
	return fallbackSlug
}

func snapshotPtr(p *domain.Plan) *domain.PlanSnapshot {
	snap := p.Snapshot()
	return &snap
}
