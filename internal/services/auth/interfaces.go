// filepath: internal/services/auth/interfaces.go
package auth

import "time"

// SessionService defines the contract for admin session handling.
type SessionService interface {
	// Login checks credentials and, on success, mints a session token.
	Login(username, password string) (token string, expiry time.Time, err error)
	// Validate resolves a session token to the admin id it belongs to.
	Validate(token string) (adminID int64, err error)
	// Logout revokes a session token.
	Logout(token string) error
}
