// filepath: internal/services/mocks/admin_mock.go
package mocks

import (
	"studiohub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockAdminService is a mock implementation of services.AdminService
type MockAdminService struct {
	mock.Mock
}

var _ services.AdminService = (*MockAdminService)(nil)

func (m *MockAdminService) DashboardStats() (*services.DashboardStats, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.DashboardStats), args.Error(1)
}
