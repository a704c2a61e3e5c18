// filepath: internal/repository/admin_repo.go
package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"studiohub/internal/logging"
	"studiohub/internal/models"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrAdminNotFound is returned when no admin user matches the lookup.
var ErrAdminNotFound = errors.New("admin user not found")

// ErrAdminExists is returned when trying to create a user that already exists.
var ErrAdminExists = errors.New("admin user already exists")

// GetAdminByUsername retrieves an admin account, using a cache for performance.
func (s *Repository) GetAdminByUsername(username string) (*models.AdminUser, error) {
	cacheKey := fmt.Sprintf("admin_by_name_%s", username)
	if admin, found := s.Cache.Get(cacheKey); found {
		return admin.(*models.AdminUser), nil
	}

	logging.Log.Debugf("GetAdminByUsername: CACHE MISS for '%s'. Querying DB.", username)
	row := s.DB.QueryRow("SELECT id, username, password_hash, created_at FROM admin_users WHERE username = ?", username)

	var admin models.AdminUser
	if err := row.Scan(&admin.ID, &admin.Username, &admin.PasswordHash, &admin.CreatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrAdminNotFound
		}
		return nil, err
	}

	s.Cache.Set(cacheKey, &admin, 5*time.Minute)
	return &admin, nil
}

// CreateAdmin creates a new admin account with a bcrypt-hashed password.
func (s *Repository) CreateAdmin(username, password string) (*models.AdminUser, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	res, err := s.DB.Exec("INSERT INTO admin_users (username, password_hash) VALUES (?, ?)", username, string(hash))
	if err != nil {
		if err.Error() == "UNIQUE constraint failed: admin_users.username" {
			return nil, ErrAdminExists
		}
		return nil, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	return &models.AdminUser{ID: id, Username: username, PasswordHash: string(hash)}, nil
}

// UpdateAdminPassword re-hashes and stores a new password for an account.
func (s *Repository) UpdateAdminPassword(username, password string) error {
	admin, err := s.GetAdminByUsername(username)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := s.DB.Exec("UPDATE admin_users SET password_hash = ? WHERE id = ?", string(hash), admin.ID); err != nil {
		return err
	}

	s.Cache.Delete(fmt.Sprintf("admin_by_name_%s", username))
	return nil
}
