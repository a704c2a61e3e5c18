// filepath: internal/services/mocks/inquiry_mock.go
package mocks

import (
	"studiohub/internal/models"
	"studiohub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockInquiryService is a mock implementation of services.InquiryService
type MockInquiryService struct {
	mock.Mock
}

var _ services.InquiryService = (*MockInquiryService)(nil)

func (m *MockInquiryService) SubmitInquiry(form services.InquiryForm) (*models.Inquiry, error) {
	args := m.Called(form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockInquiryService) PackagesForForm() ([]models.Package, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Package), args.Error(1)
}
