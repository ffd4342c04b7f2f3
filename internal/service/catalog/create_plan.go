package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

// CreatePlan validates input, derives a unique slug and appends the plan to
// the end of the catalog order. The "created" audit entry carries no
// previous state.
func (s *Service) CreatePlan(ctx context.Context, input CreatePlanInput, actor domain.Actor) (*domain.Plan, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	draft := input.plan(s.policy.DefaultCurrency)
	draft.CreatedBy = actor
	draft.UpdatedBy = actor

	var created *domain.Plan
	err := s.write(ctx, domain.AuditActionCreated, func(txCtx context.Context) (*domain.AuditEntry, error) {
		if err := s.plans.LockCatalog(txCtx); err != nil {
			return nil, fmt.Errorf("lock catalog: %w", err)
		}

		slug, err := s.uniqueSlug(txCtx, baseSlug(draft.Name), uuid.Nil)
		if err != nil {
			return nil, err
		}
		draft.Slug = slug

		count, err := s.plans.Count(txCtx)
		if err != nil {
			return nil, fmt.Errorf("count plans: %w", err)
		}
		draft.Order = count

		created, err = s.plans.Create(txCtx, draft)
		if err != nil {
			return nil, fmt.Errorf("create plan: %w", err)
		}

		return &domain.AuditEntry{
			EntityID:    created.ID,
			PerformedBy: actor,
			NewData:     snapshotPtr(created),
			Details:     fmt.Sprintf("created plan %q", created.Slug),
		}, nil
	})
	if !committed(err) {
		return nil, err
	}

	s.log.InfoContext(ctx, "plan created",
		slog.String("plan_id", created.ID.String()),
		slog.String("slug", created.Slug),
		slog.String("actor_id", actor.ID.String()),
	)

	return created, err
}

// uniqueSlug returns base or, under the suffix policy, a disambiguated
// variant of it that no other plan uses.
func (s *Service) uniqueSlug(ctx context.Context, base string, excludeID uuid.UUID) (string, error) {
	taken, err := s.plans.SlugTaken(ctx, base, excludeID)
	if err != nil {
		return "", fmt.Errorf("check slug: %w", err)
	}
	if !taken {
		return base, nil
	}
	if s.policy.SlugCollision == SlugCollisionReject {
		return "", &domain.DuplicateSlugError{Slug: base}
	}

	for range slugSuffixAttempts {
		candidate := domain.WithSuffix(base, s.newToken())
		taken, err := s.plans.SlugTaken(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("check slug: %w", err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", &domain.DuplicateSlugError{Slug: base}
}
