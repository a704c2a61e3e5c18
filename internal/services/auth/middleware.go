// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"studiohub/internal/logging"
	"time"
)

// contextKey is a private type so no other package can collide with our keys.
type contextKey string

// adminIDKey carries the authenticated admin's id through the request context.
const adminIDKey contextKey = "admin_id"

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Middleware guards admin routes using the session cookie.
type Middleware struct {
	Sessions   SessionService
	CookieName string
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(sessions SessionService, cookieName string) *Middleware {
	return &Middleware{Sessions: sessions, CookieName: cookieName}
}

// AdminID extracts the authenticated admin id from a request context.
func AdminID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(adminIDKey).(int64)
	return id, ok
}

// SessionToken reads the raw session token from the request cookie.
func (m *Middleware) SessionToken(r *http.Request) string {
	c, err := r.Cookie(m.CookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// authenticate resolves the request's cookie to an admin id.
func (m *Middleware) authenticate(r *http.Request) (int64, bool) {
	adminID, err := m.Sessions.Validate(m.SessionToken(r))
	if err != nil {
		return 0, false
	}
	return adminID, true
}

// RequireAdminPage guards HTML admin routes; anonymous requests are
// redirected to the login form.
func (m *Middleware) RequireAdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := m.authenticate(r)
		if !ok {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdminJSON guards JSON admin routes; anonymous requests get a 401.
func (m *Middleware) RequireAdminJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		adminID, ok := m.authenticate(r)
		if !ok {
			logging.Log.Warnf("Unauthorized admin request to %s", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		ctx := context.WithValue(r.Context(), adminIDKey, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetSessionCookie writes the session cookie after a successful login.
func (m *Middleware) SetSessionCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiry,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie on logout.
func (m *Middleware) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
