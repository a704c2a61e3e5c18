// filepath: internal/services/mocks/gallery_mock.go
package mocks

import (
	"mime/multipart"
	"studiohub/internal/models"
	"studiohub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockGalleryService is a mock implementation of services.GalleryService
type MockGalleryService struct {
	mock.Mock
}

var _ services.GalleryService = (*MockGalleryService)(nil)

func (m *MockGalleryService) AddPhoto(file multipart.File, header *multipart.FileHeader, form services.PhotoForm) (*models.GalleryPhoto, error) {
	args := m.Called(file, header, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GalleryPhoto), args.Error(1)
}
