// filepath: internal/services/inquiry_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmitInquiry(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()
	svc := NewInquiryService(repo)

	created, err := svc.SubmitInquiry(InquiryForm{
		Name:              "  Sarah Johnson  ",
		Email:             " sarah@example.com ",
		Phone:             "555-1234",
		PackageInterested: "Premium Package",
		EventDate:         "2026-10-17",
		Message:           "Full-day coverage please.",
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Sarah Johnson", created.Name)
	assert.Equal(t, "sarah@example.com", created.Email)
	assert.Equal(t, "new", created.Status)
	assert.True(t, created.EventDate.Valid)
	assert.Equal(t, "2026-10-17", created.EventDate.Time.Format("2006-01-02"))
}

func TestSubmitInquiryRequiresNameAndEmail(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()
	svc := NewInquiryService(repo)

	cases := []struct {
		name string
		form InquiryForm
	}{
		{"missing name", InquiryForm{Email: "a@example.com"}},
		{"missing email", InquiryForm{Name: "Sarah"}},
		{"whitespace only", InquiryForm{Name: "   ", Email: "\t"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SubmitInquiry(tc.form)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// Nothing was persisted.
	count, err := repo.CountInquiriesByStatus("new")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSubmitInquiryRejectsBadDate(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()
	svc := NewInquiryService(repo)

	_, err := svc.SubmitInquiry(InquiryForm{
		Name:      "Sarah",
		Email:     "sarah@example.com",
		EventDate: "17/10/2026",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSubmitInquiryEmptyDateStoredAsNull(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()
	svc := NewInquiryService(repo)

	created, err := svc.SubmitInquiry(InquiryForm{
		Name:  "Mike",
		Email: "mike@example.com",
	})
	assert.NoError(t, err)
	assert.False(t, created.EventDate.Valid)

	var nulls int
	err = repo.DB.QueryRow("SELECT COUNT(*) FROM inquiries WHERE event_date IS NULL").Scan(&nulls)
	assert.NoError(t, err)
	assert.Equal(t, 1, nulls)
}

func TestPackagesForForm(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()
	assert.NoError(t, repo.Seed(""))
	svc := NewInquiryService(repo)

	packages, err := svc.PackagesForForm()
	assert.NoError(t, err)
	assert.Len(t, packages, 3)
	assert.Equal(t, "Basic Package", packages[0].Name)
}
