// filepath: internal/repository/session_repo.go
package repository

import (
	"database/sql"
	"errors"
	"studiohub/internal/logging"
	"time"
)

// ErrSessionNotFound is returned when a session token hash is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// StoreSession persists the hash of an admin session token with its expiry.
func (s *Repository) StoreSession(adminID int64, tokenHash string, expiry time.Time) error {
	_, err := s.DB.Exec(
		"INSERT INTO admin_sessions (token_hash, admin_id, expires_at) VALUES (?, ?, ?)",
		tokenHash, adminID, expiry.UTC(),
	)
	return err
}

// LookupSession resolves a token hash to the admin id it was issued for.
// Expired sessions are rejected and removed lazily.
func (s *Repository) LookupSession(tokenHash string) (int64, error) {
	var adminID int64
	var expiresAt time.Time
	row := s.DB.QueryRow("SELECT admin_id, expires_at FROM admin_sessions WHERE token_hash = ?", tokenHash)
	if err := row.Scan(&adminID, &expiresAt); err != nil {
		if err == sql.ErrNoRows {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	if time.Now().After(expiresAt) {
		if err := s.DeleteSession(tokenHash); err != nil {
			logging.Log.Warnf("LookupSession: failed to remove expired session: %v", err)
		}
		return 0, ErrSessionNotFound
	}

	return adminID, nil
}

// DeleteSession removes a single session row (logout).
func (s *Repository) DeleteSession(tokenHash string) error {
	_, err := s.DB.Exec("DELETE FROM admin_sessions WHERE token_hash = ?", tokenHash)
	return err
}

// DeleteExpiredSessions removes all sessions past their expiry.
func (s *Repository) DeleteExpiredSessions() error {
	res, err := s.DB.Exec("DELETE FROM admin_sessions WHERE expires_at < ?", time.Now().UTC())
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		logging.Log.Debugf("Removed %d expired admin sessions", n)
	}
	return nil
}
