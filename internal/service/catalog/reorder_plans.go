package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

// ReorderPlans sets each plan's order to its index in ids, all in one
// transaction. A single "reordered" entry is recorded on the catalog entity.
func (s *Service) ReorderPlans(ctx context.Context, ids []uuid.UUID, actor domain.Actor) error {
	if err := requireActor(actor); err != nil {
		return err
	}
	if err := validateReorder(ids); err != nil {
		return err
	}

	err := s.write(ctx, domain.AuditActionReordered, func(txCtx context.Context) (*domain.AuditEntry, error) {
		if err := s.plans.LockCatalog(txCtx); err != nil {
			return nil, fmt.Errorf("lock catalog: %w", err)
		}

		existing, err := s.plans.ListIDs(txCtx)
		if err != nil {
			return nil, fmt.Errorf("list plan ids: %w", err)
		}
		known := make(map[uuid.UUID]struct{}, len(existing))
		for _, id := range existing {
			known[id] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := known[id]; !ok {
				return nil, fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
			}
		}
		if s.policy.RequireFullReorder && len(ids) != len(existing) {
			return nil, domain.NewValidationError("ids",
				fmt.Sprintf("must list every plan in the catalog (%d given, %d exist)", len(ids), len(existing)))
		}

		if err := s.plans.SetOrders(txCtx, ids, actor); err != nil {
			return nil, fmt.Errorf("set orders: %w", err)
		}

		return &domain.AuditEntry{
			EntityID:    domain.CatalogEntityID,
			PerformedBy: actor,
			Details:     reorderDetails(ids),
		}, nil
	})
	if !committed(err) {
		return err
	}

	s.log.InfoContext(ctx, "plans reordered",
		slog.Int("count", len(ids)),
		slog.String("actor_id", actor.ID.String()),
	)

	return err
}

func validateReorder(ids []uuid.UUID) error {
	if len(ids) == 0 {
		return domain.NewValidationError("ids", "required")
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return domain.NewValidationError("ids", "must not contain empty ids")
		}
		if _, dup := seen[id]; dup {
			return domain.NewValidationError("ids", fmt.Sprintf("duplicate id %s", id))
		}
		seen[id] = struct{}{}
	}
	return nil
}

// reorderDetails renders "reordered N plans: id=order,...".
func reorderDetails(ids []uuid.UUID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "reordered %d plans: ", len(ids))
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s=%d", id, i)
	}
	return b.String()
}
