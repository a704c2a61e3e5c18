// filepath: internal/services/inquiry_service.go
package services

import (
	"database/sql"
	"fmt"
	"strings"
	"studiohub/internal/logging"
	"studiohub/internal/models"
	"studiohub/internal/repository"
	"time"
)

var _ InquiryService = (*inquiryService)(nil)

// inquiryService implements InquiryService over the repository.
type inquiryService struct {
	Repo *repository.Repository
}

// NewInquiryService creates a new InquiryService.
func NewInquiryService(repo *repository.Repository) *inquiryService {
	return &inquiryService{Repo: repo}
}

// SubmitInquiry validates and persists one contact-form lead with status "new".
// An empty event date is stored as NULL, never as an empty string.
func (s *inquiryService) SubmitInquiry(form InquiryForm) (*models.Inquiry, error) {
	name := strings.TrimSpace(form.Name)
	email := strings.TrimSpace(form.Email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", ErrValidation)
	}

	var eventDate sql.NullTime
	if d := strings.TrimSpace(form.EventDate); d != "" {
		t, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid event date %q", ErrValidation, form.EventDate)
		}
		eventDate = sql.NullTime{Time: t, Valid: true}
	}

	inq := &models.Inquiry{
		Name:              name,
		Email:             email,
		Phone:             strings.TrimSpace(form.Phone),
		PackageInterested: strings.TrimSpace(form.PackageInterested),
		EventDate:         eventDate,
		Message:           form.Message,
	}

	created, err := s.Repo.CreateInquiry(inq)
	if err != nil {
		return nil, fmt.Errorf("could not store inquiry: %w", err)
	}

	logging.Log.Infof("New inquiry %d from '%s'", created.ID, created.Email)
	return created, nil
}

// PackagesForForm supplies the package list for the contact form dropdown.
func (s *inquiryService) PackagesForForm() ([]models.Package, error) {
	return s.Repo.PackagesByPrice()
}
