// filepath: internal/repository/catalog_repo.go
package repository

import (
	"database/sql"
	"studiohub/internal/models"

	"github.com/Masterminds/squirrel"
)

var photoColumns = []string{"id", "title", "category", "image_url", "thumb_url", "description", "featured", "created_at"}

// FeaturedPhotos returns up to limit gallery photos flagged for the landing
// page, newest first.
func (s *Repository) FeaturedPhotos(limit int) ([]models.GalleryPhoto, error) {
	q := s.Builder.Select(photoColumns...).
		From("gallery_photos").
		Where(squirrel.Eq{"featured": true}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit))
	return s.queryPhotos(q)
}

// Photos returns gallery photos, newest first. An empty category or "all"
// returns the full set; anything else filters to exactly that category.
func (s *Repository) Photos(category string) ([]models.GalleryPhoto, error) {
	q := s.Builder.Select(photoColumns...).
		From("gallery_photos").
		OrderBy("created_at DESC", "id DESC")
	if category != "" && category != "all" {
		q = q.Where(squirrel.Eq{"category": category})
	}
	return s.queryPhotos(q)
}

func (s *Repository) queryPhotos(q squirrel.SelectBuilder) ([]models.GalleryPhoto, error) {
	sqlQuery, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	photos := make([]models.GalleryPhoto, 0)
	for rows.Next() {
		var p models.GalleryPhoto
		if err := rows.Scan(&p.ID, &p.Title, &p.Category, &p.ImageURL, &p.ThumbURL, &p.Description, &p.Featured, &p.CreatedAt); err != nil {
			return nil, err
		}
		photos = append(photos, p)
	}
	return photos, rows.Err()
}

// PhotoCategories returns the distinct set of non-null categories present.
func (s *Repository) PhotoCategories() ([]string, error) {
	rows, err := s.DB.Query("SELECT DISTINCT category FROM gallery_photos WHERE category IS NOT NULL ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// CreatePhoto inserts a gallery row and returns it with the generated ID.
func (s *Repository) CreatePhoto(p *models.GalleryPhoto) (*models.GalleryPhoto, error) {
	res, err := s.DB.Exec(
		"INSERT INTO gallery_photos (title, category, image_url, thumb_url, description, featured) VALUES (?, ?, ?, ?, ?, ?)",
		p.Title, p.Category, p.ImageURL, p.ThumbURL, p.Description, p.Featured,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	p.ID = id
	return p, nil
}

// Services returns up to limit service descriptions in insertion order.
func (s *Repository) Services(limit int) ([]models.Service, error) {
	sqlQuery, args, err := s.Builder.Select("id", "title", "description", "icon", "created_at").
		From("services").
		OrderBy("id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := make([]models.Service, 0)
	for rows.Next() {
		var svc models.Service
		if err := rows.Scan(&svc.ID, &svc.Title, &svc.Description, &svc.Icon, &svc.CreatedAt); err != nil {
			return nil, err
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

// RecentTestimonials returns up to limit testimonials, newest first.
func (s *Repository) RecentTestimonials(limit int) ([]models.Testimonial, error) {
	sqlQuery, args, err := s.Builder.Select("id", "client_name", "content", "rating", "event_type", "created_at").
		From("testimonials").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := make([]models.Testimonial, 0)
	for rows.Next() {
		var t models.Testimonial
		if err := rows.Scan(&t.ID, &t.ClientName, &t.Content, &t.Rating, &t.EventType, &t.CreatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// PackagesByPrice returns all packages ordered by ascending price.
func (s *Repository) PackagesByPrice() ([]models.Package, error) {
	sqlQuery, args, err := s.Builder.Select("id", "name", "description", "price", "duration", "features", "image_url", "created_at").
		From("packages").
		OrderBy("price ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	packages := make([]models.Package, 0)
	for rows.Next() {
		var p models.Package
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Duration, &p.Features, &p.ImageURL, &p.CreatedAt); err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	return packages, rows.Err()
}

// CountPackages returns the total number of packages.
func (s *Repository) CountPackages() (int, error) {
	return s.countTable("packages")
}

// CountPhotos returns the total number of gallery photos.
func (s *Repository) CountPhotos() (int, error) {
	return s.countTable("gallery_photos")
}

func (s *Repository) countTable(table string) (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
	if err != nil && err != sql.ErrNoRows {
		return 0, err
	}
	return count, nil
}
