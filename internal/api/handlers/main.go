// filepath: internal/api/handlers/main.go
package handlers

import (
	"studiohub/internal/config"
	"studiohub/internal/services"
	"studiohub/internal/services/auth"
)

// Handlers holds the shared dependencies for the HTTP handlers.
type Handlers struct {
	// Depend on interfaces, not concrete structs
	Catalog   services.CatalogService
	Inquiries services.InquiryService
	Admin     services.AdminService
	GallerySvc services.GalleryService
	Sessions  auth.SessionService
	Auditor   services.Auditor

	Guard *auth.Middleware
	Cfg   *config.Config
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	catalog services.CatalogService,
	inquiries services.InquiryService,
	admin services.AdminService,
	gallery services.GalleryService,
	sessions auth.SessionService,
	auditor services.Auditor,
	guard *auth.Middleware,
	cfg *config.Config,
) *Handlers {
	return &Handlers{
		Catalog:   catalog,
		Inquiries: inquiries,
		Admin:     admin,
		GallerySvc: gallery,
		Sessions:  sessions,
		Auditor:   auditor,
		Guard:     guard,
		Cfg:       cfg,
	}
}
