package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// MutationRateLimit caps catalog writes per caller per minute; 0 disables it.
	MutationRateLimit int `yaml:"mutation_rate_limit" env:"SERVER_MUTATION_RATE_LIMIT" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout bounds every statement server-side; 0 disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"15s"`
	ApplicationName  string        `yaml:"application_name"  env:"DATABASE_APPLICATION_NAME"  env-default:"plancatalog"`
	// AutoMigrate applies pending migrations when the server starts.
	AutoMigrate bool `yaml:"auto_migrate" env:"DATABASE_AUTO_MIGRATE" env-default:"false"`
}

// AuthConfig holds access-token validation settings.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"plancatalog"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// Slug collision policies for plan creation.
const (
	SlugCollisionSuffix = "suffix"
	SlugCollisionReject = "reject"
)

// Audit policies.
const (
	AuditPolicyMandatory  = "mandatory"
	AuditPolicyBestEffort = "best_effort"
)

// CatalogConfig holds plan catalog policies.
type CatalogConfig struct {
	// SlugCollision decides what CreatePlan does when the derived slug is taken:
	// "suffix" appends a unique token, "reject" fails with a duplicate slug error.
	SlugCollision string `yaml:"slug_collision" env:"CATALOG_SLUG_COLLISION" env-default:"suffix"`
	// AuditPolicy is "mandatory" (audit append is part of the mutation
	// transaction) or "best_effort" (mutation commits first, failures are
	// reported as warnings).
	AuditPolicy        string `yaml:"audit_policy"         env:"CATALOG_AUDIT_POLICY"         env-default:"mandatory"`
	RequireFullReorder bool   `yaml:"require_full_reorder" env:"CATALOG_REQUIRE_FULL_REORDER" env-default:"true"`
	DefaultCurrency    string `yaml:"default_currency"     env:"CATALOG_DEFAULT_CURRENCY"     env-default:"USD"`
	HistoryLimit       int    `yaml:"history_limit"        env:"CATALOG_HISTORY_LIMIT"        env-default:"100"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" env:"METRICS_ENABLED" env-default:"true"`
	Path    string `yaml:"path"    env:"METRICS_PATH"    env-default:"/metrics"`
}
