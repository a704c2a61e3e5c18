// filepath: internal/services/main_test.go
package services

import (
	"os"
	"studiohub/internal/config"
	"studiohub/internal/db/migrations"
	"studiohub/internal/repository"
	"studiohub/internal/storage"
	"testing"

	"github.com/pressly/goose/v3"
)

// setupTestDB creates a migrated throwaway database plus an uploads directory
// for the service-level tests.
func setupTestDB(t *testing.T) (*repository.Repository, *config.Config, func()) {
	t.Helper()
	const dbPath = "test_services.db"
	const uploadsRoot = "test_services_uploads"

	os.Remove(dbPath)
	os.RemoveAll(uploadsRoot)

	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: dbPath},
		Uploads: config.UploadsConfig{
			Root:         uploadsRoot,
			PublicPrefix: "/static/uploads",
		},
	}

	repo, err := repository.NewRepository(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		t.Fatalf("Failed to set goose dialect: %v", err)
	}
	if err := goose.Up(repo.DB, "."); err != nil {
		t.Fatalf("Failed to apply test migrations: %v", err)
	}

	if err := storage.EnsureUploadDirs(uploadsRoot); err != nil {
		t.Fatalf("Failed to create upload directories: %v", err)
	}

	cleanup := func() {
		repo.Close()
		os.Remove(dbPath)
		os.RemoveAll(uploadsRoot)
	}

	return repo, cfg, cleanup
}
