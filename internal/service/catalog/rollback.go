package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

// RollbackToEntry restores a plan to the state recorded in the entry's
// PreviousData, the state just before that change happened.
//
// This is point-in-time restore, not undo: every change made after the
// entry is discarded rather than replayed. ID and creation attribution are
// kept; UpdatedAt, UpdatedBy and Version advance as for any other write.
// A rollback is always recorded, even when the restored content equals the
// current content. The catalog lock is taken before the plan row, as in
// ReorderPlans, since the restored slug and order may change.
func (s *Service) RollbackToEntry(ctx context.Context, planID, entryID uuid.UUID, actor domain.Actor) (*domain.Plan, error) {
	if err := requireActor(actor); err != nil {
		return nil, err
	}

	entry, err := s.audit.GetByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("get audit entry: %w", err)
	}
	if entry.EntityID != planID {
		return nil, fmt.Errorf("audit entry %s for plan %s: %w", entryID, planID, domain.ErrNotFound)
	}
	if !entry.CanRollback() {
		return nil, fmt.Errorf("audit entry %s (%s): %w", entryID, entry.Action, domain.ErrRollbackNotAvailable)
	}

	var restored *domain.Plan
	err = s.write(ctx, domain.AuditActionRollback, func(txCtx context.Context) (*domain.AuditEntry, error) {
		if err := s.plans.LockCatalog(txCtx); err != nil {
			return nil, fmt.Errorf("lock catalog: %w", err)
		}

		current, err := s.plans.GetByIDForUpdate(txCtx, planID)
		if err != nil {
			return nil, fmt.Errorf("get plan: %w", err)
		}

		next := entry.PreviousData.RestoreOnto(current)
		if next.Slug != current.Slug {
			if err := s.claimSlug(txCtx, next.Slug, planID); err != nil {
				return nil, err
			}
		}

		restored, err = s.plans.Update(txCtx, next, actor)
		if err != nil {
			return nil, fmt.Errorf("restore plan: %w", err)
		}

		return &domain.AuditEntry{
			EntityID:     planID,
			PerformedBy:  actor,
			PreviousData: snapshotPtr(current),
			NewData:      snapshotPtr(restored),
			Details:      fmt.Sprintf("rolled back to audit entry %s", entryID),
		}, nil
	})
	if !committed(err) {
		var dup *domain.DuplicateSlugError
		if errors.As(err, &dup) {
			s.log.WarnContext(ctx, "rollback blocked by slug in use",
				slog.String("plan_id", planID.String()),
				slog.String("slug", dup.Slug),
			)
		}
		return nil, err
	}

	s.log.InfoContext(ctx, "plan rolled back",
		slog.String("plan_id", planID.String()),
		slog.String("entry_id", entryID.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return restored, err
}
