// Package testutil provides shared fixtures for windowwise tests: product
// builders and a migrated in-memory catalog store.
package testutil

import (
	"context"
	"testing"

	"github.com/Veraticus/windowwise/internal/model"
	"github.com/Veraticus/windowwise/internal/storage"
)

// TestDB is a migrated in-memory store.
type TestDB struct {
	Storage *storage.SQLiteStorage
	t       *testing.T
}

// SetupTestDB creates a new in-memory catalog store seeded with products.
// It handles migrations and cleanup.
//
// Example:
//
//	db := testutil.SetupTestDB(t, testutil.SampleCatalog()...)
func SetupTestDB(t *testing.T, products ...model.Product) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	if len(products) > 0 {
		if err := store.ReplaceCatalog(ctx, products); err != nil {
			t.Fatalf("failed to seed catalog: %v", err)
		}
	}

	return &TestDB{
		Storage: store,
		t:       t,
	}
}

// MustListProducts returns the stored catalog or fails the test.
func (db *TestDB) MustListProducts() []model.Product {
	db.t.Helper()
	products, err := db.Storage.ListProducts(context.Background())
	if err != nil {
		db.t.Fatalf("failed to list products: %v", err)
	}
	return products
}
