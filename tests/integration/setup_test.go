package integration

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/comfitco/luxe-store/internal/catalog"
	"github.com/comfitco/luxe-store/internal/config"
	"github.com/comfitco/luxe-store/internal/database"
	"github.com/comfitco/luxe-store/internal/notice"
	"github.com/comfitco/luxe-store/internal/orders"
)

func setupTestDB(t *testing.T) (*sql.DB, string) {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:14-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	postgres, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Fatalf("Failed to start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := postgres.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate container: %v", err)
		}
	})

	host, err := postgres.Host(ctx)
	if err != nil {
		t.Fatalf("Failed to get container host: %v", err)
	}

	port, err := postgres.MappedPort(ctx, "5432")
	if err != nil {
		t.Fatalf("Failed to get container port: %v", err)
	}

	dsn := fmt.Sprintf("postgres://testuser:testpass@%s:%s/testdb?sslmode=disable", host, port.Port())

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("Failed to connect to database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close database: %v", err)
		}
	})

	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping database: %v", err)
	}

	if err := database.RunMigrations(db, "../../migrations", "up"); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db, dsn
}

func listenerConfig() *config.ListenerConfig {
	return &config.ListenerConfig{
		MinReconnect: 50 * time.Millisecond,
		MaxReconnect: time.Second,
	}
}

func newCatalogService(t *testing.T, db *sql.DB, dsn string, board *notice.Board) *catalog.Service {
	t.Helper()

	events, err := database.Listen(&config.DatabaseConfig{URL: dsn}, listenerConfig(), catalog.NotifyChannel)
	if err != nil {
		t.Fatalf("Listen on product changes: %v", err)
	}

	svc := catalog.NewService(db, events, board)
	svc.Start(context.Background())
	t.Cleanup(svc.Stop)

	return svc
}

func newOrderService(t *testing.T, db *sql.DB, dsn string, board *notice.Board) *orders.Service {
	t.Helper()

	events, err := database.Listen(&config.DatabaseConfig{URL: dsn}, listenerConfig(), orders.NotifyChannel)
	if err != nil {
		t.Fatalf("Listen on order changes: %v", err)
	}

	svc := orders.NewService(db, events, board)
	svc.Start(context.Background())
	t.Cleanup(svc.Stop)

	return svc
}

// waitFor polls cond until it holds or the timeout passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool, msg string) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(25 * time.Millisecond)
	}
	t.Fatalf("Timed out waiting for %s", msg)
}
