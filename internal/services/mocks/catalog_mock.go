// filepath: internal/services/mocks/catalog_mock.go
package mocks

import (
	"studiohub/internal/models"
	"studiohub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of services.CatalogService
type MockCatalogService struct {
	mock.Mock
}

// Compile-time check to ensure interface compliance
var _ services.CatalogService = (*MockCatalogService)(nil)

func (m *MockCatalogService) LandingContent() (*services.LandingContent, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LandingContent), args.Error(1)
}

func (m *MockCatalogService) Packages() ([]models.Package, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Package), args.Error(1)
}

func (m *MockCatalogService) Gallery(category string) (*services.GalleryPage, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.GalleryPage), args.Error(1)
}
