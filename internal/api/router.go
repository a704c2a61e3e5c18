// filepath: internal/api/router.go
package api

import (
	"net/http"
	"studiohub/internal/api/handlers"
	"studiohub/internal/config"
	"studiohub/internal/services/auth"

	"github.com/gorilla/mux"
)

// SetupRouter configures the main router: public pages, admin routes behind
// the session guard, and the static file server for uploaded images.
func SetupRouter(h *handlers.Handlers, guard *auth.Middleware, cfg *config.Config) *mux.Router {
	r := mux.NewRouter()

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/packages", h.Packages).Methods("GET")
	r.HandleFunc("/gallery", h.Gallery).Methods("GET")
	r.HandleFunc("/contact", h.ContactForm).Methods("GET")
	r.HandleFunc("/contact", h.ContactSubmit).Methods("POST")

	// Login endpoints are public; everything else under /admin is guarded.
	r.HandleFunc("/admin", h.LoginForm).Methods("GET")
	r.HandleFunc("/admin/login", h.Login).Methods("POST")
	r.HandleFunc("/admin/logout", h.Logout).Methods("GET")

	// Guarded HTML routes redirect anonymous requests to the login form.
	pageRouter := r.PathPrefix("/admin").Subrouter()
	pageRouter.Use(guard.RequireAdminPage)
	pageRouter.HandleFunc("/dashboard", h.Dashboard).Methods("GET")

	// Guarded JSON routes answer anonymous requests with 401.
	apiRouter := r.PathPrefix("/admin/gallery").Subrouter()
	apiRouter.Use(guard.RequireAdminJSON)
	apiRouter.HandleFunc("/add", h.AddPhoto).Methods("POST")

	// Uploaded images are served straight off the uploads root.
	r.PathPrefix(cfg.Uploads.PublicPrefix + "/").Handler(
		http.StripPrefix(cfg.Uploads.PublicPrefix+"/", http.FileServer(http.Dir(cfg.Uploads.Root))))

	return r
}
