// filepath: internal/services/admin_service.go
package services

import (
	"fmt"
	"studiohub/internal/models"
	"studiohub/internal/repository"
)

// recentInquiriesLimit bounds the dashboard's lead preview.
const recentInquiriesLimit = 5

var _ AdminService = (*adminService)(nil)

// adminService implements AdminService over the repository.
type adminService struct {
	Repo *repository.Repository
}

// NewAdminService creates a new AdminService.
func NewAdminService(repo *repository.Repository) *adminService {
	return &adminService{Repo: repo}
}

// DashboardStats gathers the aggregate counts and the most recent leads.
// Pure read, no mutation.
func (s *adminService) DashboardStats() (*DashboardStats, error) {
	newInquiries, err := s.Repo.CountInquiriesByStatus(models.StatusNew)
	if err != nil {
		return nil, fmt.Errorf("could not count new inquiries: %w", err)
	}
	totalPackages, err := s.Repo.CountPackages()
	if err != nil {
		return nil, fmt.Errorf("could not count packages: %w", err)
	}
	totalPhotos, err := s.Repo.CountPhotos()
	if err != nil {
		return nil, fmt.Errorf("could not count photos: %w", err)
	}
	recent, err := s.Repo.RecentInquiries(recentInquiriesLimit)
	if err != nil {
		return nil, fmt.Errorf("could not load recent inquiries: %w", err)
	}

	return &DashboardStats{
		NewInquiries:    newInquiries,
		TotalPackages:   totalPackages,
		TotalPhotos:     totalPhotos,
		RecentInquiries: recent,
	}, nil
}
