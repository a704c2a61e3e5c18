// filepath: internal/repository/repository.go
package repository

import (
	"database/sql"
	"fmt"
	"studiohub/internal/config"
	"studiohub/internal/db/migrations"
	"studiohub/internal/logging"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
	"github.com/patrickmn/go-cache"
	"github.com/pressly/goose/v3"
)

// Repository provides access to the relational store.
type Repository struct {
	DB      *sql.DB
	Cache   *cache.Cache
	Builder squirrel.StatementBuilderType // SQL Query Builder
}

// NewRepository opens the SQLite database and prepares the query builder.
func NewRepository(cfg *config.Config) (*Repository, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", cfg.Database.Path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("could not open database: %w", err)
	}

	return &Repository{
		DB:      db,
		Cache:   cache.New(5*time.Minute, 10*time.Minute),
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}, nil
}

// Close closes the underlying database connection.
func (s *Repository) Close() error {
	return s.DB.Close()
}

// EnsureSchemaBootstrapped brings the schema up to the latest migration.
// Called on every startup; goose tracks applied versions, so reruns are no-ops.
func (s *Repository) EnsureSchemaBootstrapped() error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	// The migration files are embedded, so "." is the root of the embedded FS.
	if err := goose.Up(s.DB, "."); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	logging.Log.Debug("Database schema is up to date")
	return nil
}
