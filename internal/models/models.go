// filepath: internal/models/models.go
package models

import (
	"database/sql"
	"time"
)

// Package is a bookable service package offered on the site.
type Package struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       float64        `json:"price"`
	Duration    string         `json:"duration"`
	Features    string         `json:"features"`
	ImageURL    sql.NullString `json:"image_url"`
	CreatedAt   time.Time      `json:"created_at"`
}

// GalleryPhoto is a single gallery entry backed by an uploaded image file.
type GalleryPhoto struct {
	ID          int64          `json:"id"`
	Title       string         `json:"title"`
	Category    sql.NullString `json:"category"`
	ImageURL    string         `json:"image_url"`
	ThumbURL    sql.NullString `json:"thumb_url"`
	Description string         `json:"description"`
	Featured    bool           `json:"featured"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Service is one of the service descriptions shown on the landing page.
type Service struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	CreatedAt   time.Time `json:"created_at"`
}

// Testimonial is a client quote with a 1-5 rating.
type Testimonial struct {
	ID         int64     `json:"id"`
	ClientName string    `json:"client_name"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	EventType  string    `json:"event_type"`
	CreatedAt  time.Time `json:"created_at"`
}

// Inquiry statuses. New rows always start as StatusNew.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusClosed    = "closed"
)

// Inquiry is a contact-form lead. PackageInterested is a free-text copy of
// the package name, not a foreign key.
type Inquiry struct {
	ID                int64        `json:"id"`
	Name              string       `json:"name"`
	Email             string       `json:"email"`
	Phone             string       `json:"phone"`
	PackageInterested string       `json:"package_interested"`
	EventDate         sql.NullTime `json:"event_date"`
	Message           string       `json:"message"`
	Status            string       `json:"status"`
	CreatedAt         time.Time    `json:"created_at"`
}

// AdminUser is a back-office account. PasswordHash is a bcrypt hash.
type AdminUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
