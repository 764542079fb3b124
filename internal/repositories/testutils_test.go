package repositories_test

import (
	"testing"

	"github.com/vheikkine/franchiselab/internal/db"
)

// newTestDB creates a new in-memory database for testing purposes.
func newTestDB(t *testing.T) *db.DBs {
	t.Helper()

	dbs, err := db.NewDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		if err := dbs.Close(); err != nil {
			t.Fatal(err)
		}
	})

	return dbs
}
