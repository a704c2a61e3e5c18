// filepath: internal/repository/seed.go
package repository

import (
	"fmt"
	"studiohub/internal/logging"

	"golang.org/x/crypto/bcrypt"
)

// DefaultAdminUsername is the account created on first run.
const DefaultAdminUsername = "admin"

// defaultAdminPassword is used when no password was configured. Documented in
// the README; operators are expected to override it via STUDIOHUB_PASSWORD.
const defaultAdminPassword = "admin123"

type seedPackage struct {
	Name        string
	Description string
	Price       float64
	Duration    string
	Features    string
}

type seedService struct {
	Title       string
	Description string
	Icon        string
}

type seedTestimonial struct {
	ClientName string
	Content    string
	Rating     int
	EventType  string
}

var seedPackages = []seedPackage{
	{
		Name:        "Basic Package",
		Description: "Perfect for small events and portrait sessions",
		Price:       299.00,
		Duration:    "2 Hours",
		Features:    "- 50 edited photos\n- Online gallery\n- Print release\n- 1 location",
	},
	{
		Name:        "Premium Package",
		Description: "Ideal for weddings and large events",
		Price:       1299.00,
		Duration:    "Full Day",
		Features:    "- 200+ edited photos\n- Online gallery\n- USB with all photos\n- 2 photographers\n- Album included",
	},
	{
		Name:        "Deluxe Package",
		Description: "Complete coverage with video",
		Price:       2499.00,
		Duration:    "Full Day + Video",
		Features:    "- Unlimited photos\n- 4K video highlights\n- Drone footage\n- 3 photographers\n- Premium album\n- Same-day preview",
	},
}

var seedServices = []seedService{
	{"Wedding Photography", "Capturing your special day with artistic excellence", "camera"},
	{"Portrait Sessions", "Professional portraits for individuals and families", "user"},
	{"Event Coverage", "Corporate events, parties, and celebrations", "calendar"},
	{"Product Photography", "High-quality product shots for your business", "package"},
	{"Real Estate", "Showcase properties with stunning visuals", "home"},
	{"Photo Editing", "Professional retouching and enhancement", "edit"},
}

var seedTestimonials = []seedTestimonial{
	{"Sarah Johnson", "Amazing work! The photos from our wedding are absolutely stunning. Professional and creative!", 5, "Wedding"},
	{"Mike Chen", "Great experience from start to finish. Highly recommend for any event!", 5, "Corporate Event"},
	{"Emily Davis", "The portrait session was fun and the results exceeded our expectations!", 5, "Portrait"},
}

// Seed inserts the sample catalog and the default admin account on first run.
// It is idempotent: if the packages table has rows, nothing is inserted.
func (s *Repository) Seed(adminPassword string) error {
	var count int
	if err := s.DB.QueryRow("SELECT COUNT(*) FROM packages").Scan(&count); err != nil {
		return fmt.Errorf("could not check for existing seed data: %w", err)
	}
	if count > 0 {
		logging.Log.Debug("Catalog already seeded, skipping")
		return nil
	}

	if adminPassword == "" {
		adminPassword = defaultAdminPassword
		logging.Log.Warnf("No admin password configured, using the default for user '%s'", DefaultAdminUsername)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("could not hash admin password: %w", err)
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, p := range seedPackages {
		_, err := tx.Exec(
			"INSERT INTO packages (name, description, price, duration, features) VALUES (?, ?, ?, ?, ?)",
			p.Name, p.Description, p.Price, p.Duration, p.Features,
		)
		if err != nil {
			return fmt.Errorf("could not seed package '%s': %w", p.Name, err)
		}
	}

	for _, svc := range seedServices {
		_, err := tx.Exec(
			"INSERT INTO services (title, description, icon) VALUES (?, ?, ?)",
			svc.Title, svc.Description, svc.Icon,
		)
		if err != nil {
			return fmt.Errorf("could not seed service '%s': %w", svc.Title, err)
		}
	}

	for _, ts := range seedTestimonials {
		_, err := tx.Exec(
			"INSERT INTO testimonials (client_name, content, rating, event_type) VALUES (?, ?, ?, ?)",
			ts.ClientName, ts.Content, ts.Rating, ts.EventType,
		)
		if err != nil {
			return fmt.Errorf("could not seed testimonial from '%s': %w", ts.ClientName, err)
		}
	}

	_, err = tx.Exec(
		"INSERT INTO admin_users (username, password_hash) VALUES (?, ?)",
		DefaultAdminUsername, string(hash),
	)
	if err != nil {
		return fmt.Errorf("could not create default admin user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logging.Log.Infof("Seeded catalog with %d packages, %d services, %d testimonials and the '%s' account",
		len(seedPackages), len(seedServices), len(seedTestimonials), DefaultAdminUsername)
	return nil
}
