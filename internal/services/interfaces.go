// filepath: internal/services/interfaces.go
package services

import (
	"context"
	"mime/multipart"
	"studiohub/internal/models"
)

// LandingContent bundles everything the landing page renders.
type LandingContent struct {
	FeaturedPhotos []models.GalleryPhoto
	Services       []models.Service
	Testimonials   []models.Testimonial
}

// GalleryPage is a gallery listing filtered to one category (or all).
type GalleryPage struct {
	Photos     []models.GalleryPhoto
	Categories []string
	Current    string
}

// CatalogService provides the read-only queries behind the public pages.
type CatalogService interface {
	LandingContent() (*LandingContent, error)
	Packages() ([]models.Package, error)
	Gallery(category string) (*GalleryPage, error)
}

// InquiryForm carries the raw contact-form fields.
type InquiryForm struct {
	Name              string
	Email             string
	Phone             string
	PackageInterested string
	EventDate         string // "2006-01-02" or empty
	Message           string
}

// InquiryService handles lead intake.
type InquiryService interface {
	SubmitInquiry(form InquiryForm) (*models.Inquiry, error)
	// PackagesForForm supplies the package list for the contact form's
	// selection control.
	PackagesForForm() ([]models.Package, error)
}

// DashboardStats is the admin dashboard read.
type DashboardStats struct {
	NewInquiries    int
	TotalPackages   int
	TotalPhotos     int
	RecentInquiries []models.Inquiry
}

// AdminService provides the authenticated dashboard reads.
type AdminService interface {
	DashboardStats() (*DashboardStats, error)
}

// PhotoForm carries the metadata fields of a gallery upload.
type PhotoForm struct {
	Title       string
	Category    string
	Description string
	Featured    bool
}

// GalleryService handles validated photo uploads.
type GalleryService interface {
	AddPhoto(file multipart.File, header *multipart.FileHeader, form PhotoForm) (*models.GalleryPhoto, error)
}

// Auditor records security-relevant admin actions.
type Auditor interface {
	Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{})
}
