// filepath: internal/services/catalog_service_test.go
package services

import (
	"database/sql"
	"studiohub/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLandingContent(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()
	assert.NoError(t, repo.Seed(""))
	svc := NewCatalogService(repo)

	_, err := repo.CreatePhoto(&models.GalleryPhoto{
		Title:    "showcase",
		ImageURL: "/static/uploads/gallery/showcase.jpg",
		Featured: true,
	})
	assert.NoError(t, err)
	_, err = repo.CreatePhoto(&models.GalleryPhoto{
		Title:    "plain",
		ImageURL: "/static/uploads/gallery/plain.jpg",
	})
	assert.NoError(t, err)

	content, err := svc.LandingContent()
	assert.NoError(t, err)
	assert.Len(t, content.FeaturedPhotos, 1, "Only featured photos appear on the landing page")
	assert.Equal(t, "showcase", content.FeaturedPhotos[0].Title)
	assert.Len(t, content.Services, 6)
	assert.Len(t, content.Testimonials, 3)
}

func TestGalleryDefaultsToAll(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()
	svc := NewCatalogService(repo)

	_, err := repo.CreatePhoto(&models.GalleryPhoto{
		Title:    "a",
		ImageURL: "/static/uploads/gallery/a.jpg",
		Category: sql.NullString{String: "wedding", Valid: true},
	})
	assert.NoError(t, err)
	_, err = repo.CreatePhoto(&models.GalleryPhoto{
		Title:    "b",
		ImageURL: "/static/uploads/gallery/b.jpg",
		Category: sql.NullString{String: "portrait", Valid: true},
	})
	assert.NoError(t, err)

	page, err := svc.Gallery("")
	assert.NoError(t, err)
	assert.Equal(t, "all", page.Current)
	assert.Len(t, page.Photos, 2)
	assert.Equal(t, []string{"portrait", "wedding"}, page.Categories)

	page, err = svc.Gallery("portrait")
	assert.NoError(t, err)
	assert.Equal(t, "portrait", page.Current)
	assert.Len(t, page.Photos, 1)
	assert.Equal(t, "b", page.Photos[0].Title)
	assert.Equal(t, []string{"portrait", "wedding"}, page.Categories, "The category list is not filtered")
}
