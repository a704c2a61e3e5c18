// filepath: internal/api/handlers/admin_handler.go
package handlers

import (
	"fmt"
	"net/http"
	"studiohub/internal/logging"
	"studiohub/internal/services"
	"studiohub/internal/services/auth"
	"studiohub/internal/web"
)

// LoginForm renders the admin login page. An already-authenticated admin is
// sent straight to the dashboard.
func (h *Handlers) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Sessions.Validate(h.Guard.SessionToken(r)); err == nil {
		http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
		return
	}
	web.Render(w, "admin_login.html", struct {
		Error string
	}{Error: loginError(r)})
}

func loginError(r *http.Request) string {
	if r.URL.Query().Get("failed") == "1" {
		return "Invalid credentials"
	}
	return ""
}

// Login checks the submitted credentials. Both unknown usernames and wrong
// passwords produce the same generic failure.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/admin?failed=1", http.StatusSeeOther)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, expiry, err := h.Sessions.Login(username, password)
	if err != nil {
		h.Auditor.Log(r.Context(), "admin.login_failed", username, "session", nil)
		http.Redirect(w, r, "/admin?failed=1", http.StatusSeeOther)
		return
	}

	h.Auditor.Log(r.Context(), "admin.login", username, "session", nil)
	h.Guard.SetSessionCookie(w, token, expiry)
	http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
}

// Dashboard renders the aggregate counts and the five most recent leads.
// The route is wrapped in RequireAdminPage.
func (h *Handlers) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Admin.DashboardStats()
	if err != nil {
		logging.Log.Errorf("Dashboard: failed to load stats: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	web.Render(w, "admin_dashboard.html", struct {
		Stats *services.DashboardStats
	}{stats})
}

// Logout revokes the session and clears the cookie.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	token := h.Guard.SessionToken(r)
	if err := h.Sessions.Logout(token); err != nil {
		logging.Log.Warnf("Logout: failed to revoke session: %v", err)
	}
	if adminID, ok := auth.AdminID(r.Context()); ok {
		h.Auditor.Log(r.Context(), "admin.logout", fmt.Sprintf("%d", adminID), "session", nil)
	}
	h.Guard.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
