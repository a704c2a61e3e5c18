// filepath: internal/services/mocks/session_mock.go
package mocks

import (
	"studiohub/internal/services/auth"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockSessionService is a mock implementation of auth.SessionService
type MockSessionService struct {
	mock.Mock
}

var _ auth.SessionService = (*MockSessionService)(nil)

func (m *MockSessionService) Login(username, password string) (string, time.Time, error) {
	args := m.Called(username, password)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func (m *MockSessionService) Validate(token string) (int64, error) {
	args := m.Called(token)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSessionService) Logout(token string) error {
	args := m.Called(token)
	return args.Error(0)
}
