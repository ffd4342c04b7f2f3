package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

// SoftDeletePlan hides a plan by clearing IsActive and IsPublic. The plan
// and its history are kept. Deleting an already deleted plan is a no-op.
func (s *Service) SoftDeletePlan(ctx context.Context, id uuid.UUID, actor domain.Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	err := s.write(ctx, domain.AuditActionDeleted, func(txCtx context.Context) (*domain.AuditEntry, error) {
		current, err := s.plans.GetByIDForUpdate(txCtx, id)
		if err != nil {
			return nil, fmt.Errorf("get plan: %w", err)
		}
		if current.IsSoftDeleted() {
			return nil, nil
		}

		next := current.Clone()
		next.IsActive = false
		next.IsPublic = false

		deleted, err := s.plans.Update(txCtx, next, actor)
		if err != nil {
			return nil, fmt.Errorf("soft delete plan: %w", err)
		}

		return &domain.AuditEntry{
			EntityID:     id,
			PerformedBy:  actor,
			PreviousData: snapshotPtr(current),
			NewData:      snapshotPtr(deleted),
			Details:      fmt.Sprintf("soft-deleted plan %q", deleted.Slug),
		}, nil
	})
	if !committed(err) {
		return err
	}

	s.log.InfoContext(ctx, "plan soft-deleted",
		slog.String("plan_id", id.String()),
		slog.String("actor_id", actor.ID.String()),
	)

	return err
}
