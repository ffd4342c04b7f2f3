package testhelper

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/heartmarshall/plancatalog-backend/internal/adapter/postgres"
	"github.com/heartmarshall/plancatalog-backend/internal/config"
)

// DSNEnv names an existing database to test against instead of starting a
// container. The schema is migrated up on first use.
const DSNEnv = "PLANCATALOG_TEST_DSN"

var (
	once      sync.Once
	sharedDSN string
	initErr   error
)

// SetupTestDB returns a pool connected to a migrated PostgreSQL database.
// The database (a container unless DSNEnv is set) is prepared once per test
// binary; each call gets its own pool, closed via t.Cleanup.
//
// Tests sharing the database must not assume an empty plans table; use
// LockCatalog in tests that need exclusive ownership of the catalog.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("testhelper: skipping database test in -short mode")
	}

	once.Do(func() {
		sharedDSN, initErr = prepareDatabase()
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, dbConfig(sharedDSN))
	if err != nil {
		t.Fatalf("testhelper: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func dbConfig(dsn string) config.DatabaseConfig {
	return config.DatabaseConfig{
		DSN:              dsn,
		MaxConns:         10,
		MinConns:         0,
		MaxConnLifetime:  time.Hour,
		MaxConnIdleTime:  time.Minute,
		StatementTimeout: 30 * time.Second,
		ApplicationName:  "plancatalog-test",
	}
}

func prepareDatabase() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	dsn := os.Getenv(DSNEnv)
	if dsn == "" {
		var err error
		if dsn, err = startContainer(ctx); err != nil {
			return "", err
		}
	}

	pool, err := postgres.NewPool(ctx, dbConfig(dsn))
	if err != nil {
		return "", err
	}
	defer pool.Close()

	migrator, err := postgres.NewMigrator(pool)
	if err != nil {
		return "", err
	}
	defer migrator.Close()

	if _, err := migrator.Up(ctx); err != nil {
		return "", err
	}
	return dsn, nil
}

func startContainer(ctx context.Context) (string, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "catalog",
				"POSTGRES_PASSWORD": "catalog",
				"POSTGRES_DB":       "catalog_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://catalog:catalog@%s:%s/catalog_test?sslmode=disable", host, port.Port()), nil
}
