package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

// GetHistory returns the audit entries of a plan, most recent first.
// domain.CatalogEntityID returns the reorder history of the whole catalog.
// limit <= 0 or above the configured maximum falls back to that maximum.
func (s *Service) GetHistory(ctx context.Context, entityID uuid.UUID, limit int) ([]domain.AuditEntry, error) {
	if entityID != domain.CatalogEntityID {
		if _, err := s.plans.GetByID(ctx, entityID); err != nil {
			return nil, fmt.Errorf("get plan: %w", err)
		}
	}

	if limit <= 0 || limit > s.policy.HistoryLimit {
		limit = s.policy.HistoryLimit
	}

	entries, err := s.audit.ListByEntity(ctx, entityID, limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return entries, nil
}
