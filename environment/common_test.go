package environment

import (
	"testing"

	"github.com/hairizuanbinnoorazman/qa-dashboard/logger"
	"github.com/hairizuanbinnoorazman/qa-dashboard/testutil"
	"gorm.io/gorm"
)

// setupTestStore creates a test database and environment store for testing.
func setupTestStore(t *testing.T) (*gorm.DB, Store) {
	db := testutil.SetupTestDB(t, &Environment{})

	log := logger.NewTestLogger()
	store := NewSQLStore(db, log)

	return db, store
}

// createTestEnvironment creates an environment with default values.
func createTestEnvironment(name, url string, status Status) *Environment {
	return &Environment{
		Name:   name,
		URL:    url,
		Status: status,
	}
}
