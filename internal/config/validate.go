package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/plancatalog-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.MutationRateLimit < 0 {
		return fmt.Errorf("server.mutation_rate_limit must be >= 0 (got %d)", c.Server.MutationRateLimit)
	}

	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must be >= 0 (got %s)", c.Database.StatementTimeout)
	}

	if err := c.Catalog.validate(); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

func (c *CatalogConfig) validate() error {
	switch c.SlugCollision {
	case SlugCollisionSuffix, SlugCollisionReject:
	default:
		return fmt.Errorf("slug_collision must be %q or %q (got %q)", SlugCollisionSuffix, SlugCollisionReject, c.SlugCollision)
	}

	switch c.AuditPolicy {
	case AuditPolicyMandatory, AuditPolicyBestEffort:
	default:
		return fmt.Errorf("audit_policy must be %q or %q (got %q)", AuditPolicyMandatory, AuditPolicyBestEffort, c.AuditPolicy)
	}

	c.DefaultCurrency = strings.ToUpper(strings.TrimSpace(c.DefaultCurrency))
	if !domain.IsCurrencyCode(c.DefaultCurrency) {
		return fmt.Errorf("default_currency must be a 3-letter ISO 4217 code (got %q)", c.DefaultCurrency)
	}

	if c.HistoryLimit <= 0 || c.HistoryLimit > 1000 {
		return fmt.Errorf("history_limit must be in 1..1000 (got %d)", c.HistoryLimit)
	}

	return nil
}
