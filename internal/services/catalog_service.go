// filepath: internal/services/catalog_service.go
package services

import (
	"fmt"
	"studiohub/internal/models"
	"studiohub/internal/repository"
)

// Bounded counts for the landing page sections.
const (
	landingFeaturedLimit     = 6
	landingServicesLimit     = 6
	landingTestimonialsLimit = 3
)

var _ CatalogService = (*catalogService)(nil)

// catalogService implements CatalogService over the repository.
type catalogService struct {
	Repo *repository.Repository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(repo *repository.Repository) *catalogService {
	return &catalogService{Repo: repo}
}

// LandingContent gathers the featured photos, services and newest
// testimonials for the landing page.
func (s *catalogService) LandingContent() (*LandingContent, error) {
	photos, err := s.Repo.FeaturedPhotos(landingFeaturedLimit)
	if err != nil {
		return nil, fmt.Errorf("could not load featured photos: %w", err)
	}
	serviceList, err := s.Repo.Services(landingServicesLimit)
	if err != nil {
		return nil, fmt.Errorf("could not load services: %w", err)
	}
	testimonials, err := s.Repo.RecentTestimonials(landingTestimonialsLimit)
	if err != nil {
		return nil, fmt.Errorf("could not load testimonials: %w", err)
	}

	return &LandingContent{
		FeaturedPhotos: photos,
		Services:       serviceList,
		Testimonials:   testimonials,
	}, nil
}

// Packages returns all packages ordered by ascending price.
func (s *catalogService) Packages() ([]models.Package, error) {
	return s.Repo.PackagesByPrice()
}

// Gallery returns the photo listing for one category plus the distinct
// category set. An empty category is treated as "all".
func (s *catalogService) Gallery(category string) (*GalleryPage, error) {
	if category == "" {
		category = "all"
	}

	photos, err := s.Repo.Photos(category)
	if err != nil {
		return nil, fmt.Errorf("could not load gallery: %w", err)
	}
	categories, err := s.Repo.PhotoCategories()
	if err != nil {
		return nil, fmt.Errorf("could not load gallery categories: %w", err)
	}

	return &GalleryPage{
		Photos:     photos,
		Categories: categories,
		Current:    category,
	}, nil
}
