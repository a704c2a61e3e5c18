// filepath: internal/services/auth/session_service.go
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"studiohub/internal/config"
	"studiohub/internal/logging"
	"studiohub/internal/repository"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords, so
// callers cannot tell the two apart.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Compile-time check to ensure sessionService implements the SessionService interface.
var _ SessionService = (*sessionService)(nil)

// sessionService implements SessionService with server-side session rows.
// Only the SHA-256 hash of a token is stored; the raw token lives in the cookie.
type sessionService struct {
	cfg  *config.Config
	repo *repository.Repository
}

// NewSessionService creates a new instance of the sessionService.
func NewSessionService(cfg *config.Config, repo *repository.Repository) SessionService {
	return &sessionService{cfg: cfg, repo: repo}
}

// hashToken securely hashes a token string (using SHA-256) for database storage.
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// Login verifies the credentials against the stored bcrypt hash and, on
// success, stores a new session and returns the raw token for the cookie.
func (s *sessionService) Login(username, password string) (string, time.Time, error) {
	admin, err := s.repo.GetAdminByUsername(username)
	if err != nil {
		logging.Log.Warnf("Login failed for '%s': %v", username, err)
		return "", time.Time{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		logging.Log.Warnf("Login failed for '%s': password mismatch", username)
		return "", time.Time{}, ErrInvalidCredentials
	}

	tokenBytes := make([]byte, 32) // 256 bits
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate session token: %w", err)
	}
	token := hex.EncodeToString(tokenBytes)

	expiry := time.Now().Add(time.Hour * time.Duration(s.cfg.Session.TTLHours))
	if err := s.repo.StoreSession(admin.ID, hashToken(token), expiry); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store session: %w", err)
	}

	logging.Log.Infof("Admin '%s' logged in", username)
	return token, expiry, nil
}

// Validate checks a session token against the stored hashes.
func (s *sessionService) Validate(token string) (int64, error) {
	if token == "" {
		return 0, repository.ErrSessionNotFound
	}
	return s.repo.LookupSession(hashToken(token))
}

// Logout revokes a session by deleting its hash from the database.
func (s *sessionService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.repo.DeleteSession(hashToken(token))
}
