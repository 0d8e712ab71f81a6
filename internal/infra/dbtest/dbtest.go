// Package dbtest provides a throwaway store for package tests.
package dbtest

import (
	"testing"

	"revup/internal/infra"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// New returns a migrated in-memory SQLite store closed when the test ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	db, err := infra.Open(sqlite.Open(":memory:"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = infra.Close(db) })
	return db
}
