// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"studiohub/internal/config"
	"studiohub/internal/services/auth"
	"studiohub/internal/services/mocks"
	"testing"
)

// testMocks bundles the mocked services behind a Handlers instance.
type testMocks struct {
	Catalog   *mocks.MockCatalogService
	Inquiries *mocks.MockInquiryService
	Admin     *mocks.MockAdminService
	Gallery   *mocks.MockGalleryService
	Sessions  *mocks.MockSessionService
	Auditor   *mocks.MockAuditor
}

func newTestHandlers(t *testing.T) (*Handlers, *testMocks) {
	t.Helper()

	m := &testMocks{
		Catalog:   new(mocks.MockCatalogService),
		Inquiries: new(mocks.MockInquiryService),
		Admin:     new(mocks.MockAdminService),
		Gallery:   new(mocks.MockGalleryService),
		Sessions:  new(mocks.MockSessionService),
		Auditor:   new(mocks.MockAuditor),
	}

	cfg := &config.Config{
		Session: config.SessionConfig{
			CookieName: "studiohub_admin",
			TTLHours:   12,
		},
		Uploads: config.UploadsConfig{
			Root:         "static/uploads",
			PublicPrefix: "/static/uploads",
		},
		MaxUploadBytes: 16 << 20,
	}

	guard := auth.NewMiddleware(m.Sessions, cfg.Session.CookieName)
	h := NewHandlers(m.Catalog, m.Inquiries, m.Admin, m.Gallery, m.Sessions, m.Auditor, guard, cfg)
	return h, m
}
