package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

// GetPlan returns a plan by ID, soft-deleted plans included.
func (s *Service) GetPlan(ctx context.Context, id uuid.UUID) (*domain.Plan, error) {
	p, err := s.plans.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return p, nil
}

// GetPlanBySlug returns a plan by its slug.
func (s *Service) GetPlanBySlug(ctx context.Context, slug string) (*domain.Plan, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, domain.NewValidationError("slug", "required")
	}
	p, err := s.plans.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get plan by slug: %w", err)
	}
	return p, nil
}

// ListPlans returns plans in catalog order.
func (s *Service) ListPlans(ctx context.Context, filter domain.PlanFilter) ([]*domain.Plan, error) {
	plans, err := s.plans.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}
