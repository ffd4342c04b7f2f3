package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

// UpdatePlan applies a partial update. A name change re-derives the slug,
// which must stay unique; a collision fails without writing anything.
// An update that changes nothing returns the current plan untouched.
//
// Lock order is catalog lock, then plan row, the same as ReorderPlans.
// The catalog lock is only needed when the slug may change.
func (s *Service) UpdatePlan(ctx context.Context, id uuid.UUID, input UpdatePlanInput, actor domain.Actor) (*domain.Plan, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *domain.Plan
	err := s.write(ctx, domain.AuditActionUpdated, func(txCtx context.Context) (*domain.AuditEntry, error) {
		if input.Name != nil {
			if err := s.plans.LockCatalog(txCtx); err != nil {
				return nil, fmt.Errorf("lock catalog: %w", err)
			}
		}

		current, err := s.plans.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return nil, fmt.Errorf("get plan: %w", err)
		}
		if input.ExpectedVersion != nil && *input.ExpectedVersion != current.Version {
			return nil, fmt.Errorf("plan %s: version %d is stale (current %d): %w",
				id, *input.ExpectedVersion, current.Version, domain.ErrConflict)
		}

		next := input.apply(current)
		if next.Name != current.Name {
			next.Slug = baseSlug(next.Name)
		}

		before := current.Snapshot()
		if before.SameContent(next.Snapshot()) {
			result = current
			return nil, nil
		}

		if next.Slug != current.Slug {
			if err := s.claimSlug(txCtx, next.Slug, id); err != nil {
				return nil, err
			}
		}

		result, err = s.plans.Update(txCtx, next, actor)
		if err != nil {
			return nil, fmt.Errorf("update plan: %w", err)
		}

		return &domain.AuditEntry{
			EntityID:     id,
			PerformedBy:  actor,
			PreviousData: &before,
			NewData:      snapshotPtr(result),
			Details:      fmt.Sprintf("updated plan %q", result.Slug),
		}, nil
	})
	if !committed(err) {
		return nil, err
	}

	s.log.InfoContext(ctx, "plan updated",
		slog.String("plan_id", id.String()),
		slog.Int("version", result.Version),
		slog.String("actor_id", actor.ID.String()),
	)

	return result, err
}

// claimSlug fails with *domain.DuplicateSlugError when another plan already
// holds slug. The caller must hold the catalog lock.
func (s *Service) claimSlug(ctx context.Context, slug string, owner uuid.UUID) error {
	taken, err := s.plans.SlugTaken(ctx, slug, owner)
	if err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return &domain.DuplicateSlugError{Slug: slug}
	}
	return nil
}
