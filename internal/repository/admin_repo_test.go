// filepath: internal/repository/admin_repo_test.go
package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateAndGetAdmin(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created, err := repo.CreateAdmin("owner", "hunter2")
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.NotEqual(t, "hunter2", created.PasswordHash, "Password must not be stored in plaintext")

	admin, err := repo.GetAdminByUsername("owner")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, admin.ID)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("hunter2")))
}

func TestGetAdminNotFound(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetAdminByUsername("ghost")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}

func TestCreateAdminDuplicate(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateAdmin("owner", "hunter2")
	assert.NoError(t, err)

	_, err = repo.CreateAdmin("owner", "other")
	assert.ErrorIs(t, err, ErrAdminExists)
}

func TestUpdateAdminPassword(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.CreateAdmin("owner", "oldpass")
	assert.NoError(t, err)

	// Warm the cache so the update has something to invalidate.
	_, err = repo.GetAdminByUsername("owner")
	assert.NoError(t, err)

	assert.NoError(t, repo.UpdateAdminPassword("owner", "newpass"))

	admin, err := repo.GetAdminByUsername("owner")
	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("newpass")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("oldpass")))
}
