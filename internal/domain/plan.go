package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Actor identifies who performed a catalog mutation.
type Actor struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// IsZero reports whether the actor carries no identity.
func (a Actor) IsZero() bool {
	return a.ID == uuid.Nil
}

// Plan is a subscription tier offered in the catalog.
// Plans are never physically removed; soft delete clears IsActive and IsPublic.
type Plan struct {
	ID          uuid.UUID
	Slug        string
	Name        string
	Description string
	Price       float64
	Currency    string
	Period      PlanPeriod
	Features    []string
	IsActive    bool
	IsPublic    bool
	IsPopular   bool
	Order       int
	Icon        string
	Color       string
	MaxUsers    *int
	MaxProjects *int
	CreatedAt   time.Time
	CreatedBy   Actor
	UpdatedAt   time.Time
	UpdatedBy   Actor
	Version     int
}

// IsSoftDeleted reports whether the plan has been soft-deleted.
func (p *Plan) IsSoftDeleted() bool {
	return !p.IsActive && !p.IsPublic
}

// Snapshot returns an independent copy of the plan's full state.
// Later changes to p never show through the returned value.
func (p *Plan) Snapshot() PlanSnapshot {
	return PlanSnapshot{
		ID:          p.ID,
		Slug:        p.Slug,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Currency:    p.Currency,
		Period:      p.Period,
		Features:    slices.Clone(p.Features),
		IsActive:    p.IsActive,
		IsPublic:    p.IsPublic,
		IsPopular:   p.IsPopular,
		Order:       p.Order,
		Icon:        p.Icon,
		Color:       p.Color,
		MaxUsers:    cloneIntPtr(p.MaxUsers),
		MaxProjects: cloneIntPtr(p.MaxProjects),
		CreatedAt:   p.CreatedAt,
		CreatedBy:   p.CreatedBy,
		UpdatedAt:   p.UpdatedAt,
		UpdatedBy:   p.UpdatedBy,
		Version:     p.Version,
	}
}

// Clone returns a deep copy of the plan.
func (p *Plan) Clone() *Plan {
	c := *p
	c.Features = slices.Clone(p.Features)
	c.MaxUsers = cloneIntPtr(p.MaxUsers)
	c.MaxProjects = cloneIntPtr(p.MaxProjects)
	return &c
}

// PlanSnapshot is the value form of a Plan stored in audit entries.
type PlanSnapshot struct {
	ID          uuid.UUID  `json:"id"`
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       float64    `json:"price"`
	Currency    string     `json:"currency"`
	Period      PlanPeriod `json:"period"`
	Features    []string   `json:"features"`
	IsActive    bool       `json:"isActive"`
	IsPublic    bool       `json:"isPublic"`
	IsPopular   bool       `json:"isPopular"`
	Order       int        `json:"order"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	MaxUsers    *int       `json:"maxUsers,omitempty"`
	MaxProjects *int       `json:"maxProjects,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	CreatedBy   Actor      `json:"createdBy"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	UpdatedBy   Actor      `json:"updatedBy"`
	Version     int        `json:"version"`
}

// RestoreOnto copies the snapshot's mutable content onto a clone of current.
// Identity (ID, CreatedAt, CreatedBy) and write metadata (UpdatedAt,
// UpdatedBy, Version) are taken from current.
func (s PlanSnapshot) RestoreOnto(current *Plan) *Plan {
	p := current.Clone()
	p.Slug = s.Slug
	p.Name = s.Name
	p.Description = s.Description
	p.Price = s.Price
	p.Currency = s.Currency
	p.Period = s.Period
	p.Features = slices.Clone(s.Features)
	p.IsActive = s.IsActive
	p.IsPublic = s.IsPublic
	p.IsPopular = s.IsPopular
	p.Order = s.Order
	p.Icon = s.Icon
	p.Color = s.Color
	p.MaxUsers = cloneIntPtr(s.MaxUsers)
	p.MaxProjects = cloneIntPtr(s.MaxProjects)
	return p
}

// SameContent reports whether two snapshots agree on every restorable field.
func (s PlanSnapshot) SameContent(o PlanSnapshot) bool {
	return s.Slug == o.Slug &&
		s.Name == o.Name &&
		s.Description == o.Description &&
		s.Price == o.Price &&
		s.Currency == o.Currency &&
		s.Period == o.Period &&
		slices.Equal(s.Features, o.Features) &&
		s.IsActive == o.IsActive &&
		s.IsPublic == o.IsPublic &&
		s.IsPopular == o.IsPopular &&
		s.Order == o.Order &&
		s.Icon == o.Icon &&
		s.Color == o.Color &&
		intPtrEqual(s.MaxUsers, o.MaxUsers) &&
		intPtrEqual(s.MaxProjects, o.MaxProjects)
}

// PlanFilter narrows catalog listings.
type PlanFilter struct {
	OnlyPublic bool // active and public plans only
}

func cloneIntPtr(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// IsCurrencyCode reports whether s looks like an upper-case ISO 4217 code.
func IsCurrencyCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
