package database

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/yourusername/gridiron-edge/internal/config"
)

// SetupTestDB creates a test database connection, skipping when no test
// database is configured via GRIDIRON_EDGE_TEST_CONFIG.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	path := os.Getenv("GRIDIRON_EDGE_TEST_CONFIG")
	if path == "" {
		t.Skip("GRIDIRON_EDGE_TEST_CONFIG not set; skipping database test")
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("failed to load test config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		t.Fatalf("failed to create test database connection: %v", err)
	}

	t.Cleanup(db.Close)

	return db
}
