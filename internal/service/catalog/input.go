package catalog

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

const (
	minNameLen        = 3
	maxNameLen        = 100
	maxDescriptionLen = 2000
)

// CreatePlanInput holds the parameters for creating a plan.
type CreatePlanInput struct {
	Name        string
	Description string
	Price       float64
	Currency    string // empty = policy default
	Period      domain.PlanPeriod // empty = monthly
	Features    []string
	IsActive    bool
	IsPublic    bool
	IsPopular   bool
	Icon        string
	Color       string
	MaxUsers    *int
	MaxProjects *int
}

// Validate checks all fields and collects all errors.
func (i CreatePlanInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateDescription(errs, i.Description)
	errs = validatePrice(errs, i.Price)
	if i.Currency != "" {
		errs = validateCurrency(errs, i.Currency)
	}
	if i.Period != "" && !i.Period.IsValid() {
		errs = append(errs, domain.FieldError{Field: "period", Message: "must be monthly, yearly or lifetime"})
	}
	errs = validateFeatures(errs, i.Features)
	errs = validateLimits(errs, i.MaxUsers, i.MaxProjects)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// plan builds the plan to persist from normalized input.
func (i CreatePlanInput) plan(defaultCurrency string) *domain.Plan {
	currency := domain.NormalizeCurrency(i.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	period := i.Period
	if period == "" {
		period = domain.PlanPeriodMonthly
	}

	return &domain.Plan{
		Name:        domain.NormalizeName(i.Name),
		Description: strings.TrimSpace(i.Description),
		Price:       i.Price,
		Currency:    currency,
		Period:      period,
		Features:    domain.NormalizeFeatures(i.Features),
		IsActive:    i.IsActive,
		IsPublic:    i.IsPublic,
		IsPopular:   i.IsPopular,
		Icon:        strings.TrimSpace(i.Icon),
		Color:       strings.TrimSpace(i.Color),
		MaxUsers:    i.MaxUsers,
		MaxProjects: i.MaxProjects,
	}
}

// UpdatePlanInput holds the parameters for a partial plan update.
// A nil field is left unchanged. The limits are optional on a plan, so
// ClearMaxUsers and ClearMaxProjects remove them; a clear flag cannot be
// combined with a value for the same limit.
type UpdatePlanInput struct {
	Name        *string
	Description *string
	Price       *float64
	Currency    *string
	Period      *domain.PlanPeriod
	Features    []string // nil = don't change
	IsActive    *bool
	IsPublic    *bool
	IsPopular   *bool
	Icon        *string
	Color       *string
	MaxUsers    *int
	MaxProjects *int

	ClearMaxUsers    bool
	ClearMaxProjects bool

	// ExpectedVersion, when set, must match the stored version.
	ExpectedVersion *int
}

func (i UpdatePlanInput) empty() bool {
	return i.Name == nil && i.Description == nil && i.Price == nil &&
		i.Currency == nil && i.Period == nil && i.Features == nil &&
		i.IsActive == nil && i.IsPublic == nil && i.IsPopular == nil &&
		i.Icon == nil && i.Color == nil && i.MaxUsers == nil && i.MaxProjects == nil &&
		!i.ClearMaxUsers && !i.ClearMaxProjects
}

// Validate checks all fields and collects all errors.
func (i UpdatePlanInput) Validate() error {
	var errs []domain.FieldError

	if i.empty() {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	if i.Description != nil {
		errs = validateDescription(errs, *i.Description)
	}
	if i.Price != nil {
		errs = validatePrice(errs, *i.Price)
	}
	if i.Currency != nil {
		errs = validateCurrency(errs, *i.Currency)
	}
	if i.Period != nil && !i.Period.IsValid() {
		errs = append(errs, domain.FieldError{Field: "period", Message: "must be monthly, yearly or lifetime"})
	}
	if i.Features != nil {
		errs = validateFeatures(errs, i.Features)
	}
	errs = validateLimits(errs, i.MaxUsers, i.MaxProjects)
	if i.ClearMaxUsers && i.MaxUsers != nil {
		errs = append(errs, domain.FieldError{Field: "max_users", Message: "cannot be set and cleared at once"})
	}
	if i.ClearMaxProjects && i.MaxProjects != nil {
		errs = append(errs, domain.FieldError{Field: "max_projects", Message: "cannot be set and cleared at once"})
	}
	if i.ExpectedVersion != nil && *i.ExpectedVersion < 1 {
		errs = append(errs, domain.FieldError{Field: "version", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// apply returns a copy of current with the input's fields applied.
func (i UpdatePlanInput) apply(current *domain.Plan) *domain.Plan {
	p := current.Clone()
	if i.Name != nil {
		p.Name = domain.NormalizeName(*i.Name)
	}
	if i.Description != nil {
		p.Description = strings.TrimSpace(*i.Description)
	}
	if i.Price != nil {
		p.Price = *i.Price
	}
	if i.Currency != nil {
		p.Currency = domain.NormalizeCurrency(*i.Currency)
	}
	if i.Period != nil {
		p.Period = *i.Period
	}
	if i.Features != nil {
		p.Features = domain.NormalizeFeatures(i.Features)
	}
	if i.IsActive != nil {
		p.IsActive = *i.IsActive
	}
	if i.IsPublic != nil {
		p.IsPublic = *i.IsPublic
	}
	if i.IsPopular != nil {
		p.IsPopular = *i.IsPopular
	}
	if i.Icon != nil {
		p.Icon = strings.TrimSpace(*i.Icon)
	}
	if i.Color != nil {
		p.Color = strings.TrimSpace(*i.Color)
	}
	switch {
	case i.ClearMaxUsers:
		p.MaxUsers = nil
	case i.MaxUsers != nil:
		v := *i.MaxUsers
		p.MaxUsers = &v
	}
	switch {
	case i.ClearMaxProjects:
		p.MaxProjects = nil
	case i.MaxProjects != nil:
		v := *i.MaxProjects
		p.MaxProjects = &v
	}
	return p
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	n := utf8.RuneCountInString(domain.NormalizeName(name))
	switch {
	case n == 0:
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	case n < minNameLen:
		return append(errs, domain.FieldError{Field: "name", Message: "min 3 characters"})
	case n > maxNameLen:
		return append(errs, domain.FieldError{Field: "name", Message: "max 100 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, description string) []domain.FieldError {
	d := strings.TrimSpace(description)
	if d == "" {
		return append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if utf8.RuneCountInString(d) > maxDescriptionLen {
		return append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	return errs
}

func validatePrice(errs []domain.FieldError, price float64) []domain.FieldError {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return append(errs, domain.FieldError{Field: "price", Message: "must be a finite number"})
	}
	if price < 0 {
		return append(errs, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	return errs
}

func validateCurrency(errs []domain.FieldError, currency string) []domain.FieldError {
	if !domain.IsCurrencyCode(domain.NormalizeCurrency(currency)) {
		return append(errs, domain.FieldError{Field: "currency", Message: "must be a 3-letter ISO 4217 code"})
	}
	return errs
}

func validateFeatures(errs []domain.FieldError, features []string) []domain.FieldError {
	if len(features) == 0 {
		return append(errs, domain.FieldError{Field: "features", Message: "at least one feature required"})
	}
	for _, f := range features {
		if strings.TrimSpace(f) == "" {
			return append(errs, domain.FieldError{Field: "features", Message: "features must not be blank"})
		}
	}
	return errs
}

func validateLimits(errs []domain.FieldError, maxUsers, maxProjects *int) []domain.FieldError {
	if maxUsers != nil && *maxUsers < 0 {
		errs = append(errs, domain.FieldError{Field: "max_users", Message: "must not be negative"})
	}
	if maxProjects != nil && *maxProjects < 0 {
		errs = append(errs, domain.FieldError{Field: "max_projects", Message: "must not be negative"})
	}
	return errs
}
