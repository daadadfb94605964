package testutil

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dfontes/prazo/internal/db"
	"github.com/dfontes/prazo/internal/domain"
	"github.com/dfontes/prazo/internal/store"
)

// Now is the fixed clock used throughout the tests: 2026-03-15 at noon UTC.
var Now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

// NowFunc returns the fixed test clock as an injectable now function.
func NowFunc() time.Time { return Now }

// NewTestDB creates an in-memory SQLite database with all migrations applied.
// The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestStore creates a RecordStore over an in-memory KV, seeded with the
// given clients.
func NewTestStore(t *testing.T, clients ...domain.Client) *store.RecordStore {
	t.Helper()
	s := store.NewRecordStore(store.NewMemoryKV())
	if len(clients) > 0 {
		if err := s.Save(context.Background(), clients); err != nil {
			t.Fatalf("failed to seed test store: %v", err)
		}
	}
	return s
}
