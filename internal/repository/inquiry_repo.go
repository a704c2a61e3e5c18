// filepath: internal/repository/inquiry_repo.go
package repository

import (
	"studiohub/internal/models"
)

// CreateInquiry inserts a new lead with status 'new' and returns it with the
// generated ID. An invalid EventDate is stored as NULL, never as an empty
// string.
func (s *Repository) CreateInquiry(inq *models.Inquiry) (*models.Inquiry, error) {
	res, err := s.DB.Exec(
		"INSERT INTO inquiries (name, email, phone, package_interested, event_date, message) VALUES (?, ?, ?, ?, ?, ?)",
		inq.Name, inq.Email, inq.Phone, inq.PackageInterested, inq.EventDate, inq.Message,
	)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	inq.ID = id
	inq.Status = models.StatusNew
	return inq, nil
}

// RecentInquiries returns up to limit inquiries, newest first.
func (s *Repository) RecentInquiries(limit int) ([]models.Inquiry, error) {
	sqlQuery, args, err := s.Builder.Select("id", "name", "email", "phone", "package_interested", "event_date", "message", "status", "created_at").
		From("inquiries").
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

	inquiries := make([]models.Inquiry, 0)
	for rows.Next() {
		var inq models.Inquiry
		if err := rows.Scan(&inq.ID, &inq.Name, &inq.Email, &inq.Phone, &inq.PackageInterested, &inq.EventDate, &inq.Message, &inq.Status, &inq.CreatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, inq)
	}
	return inquiries, rows.Err()
}

// CountInquiriesByStatus returns the number of inquiries with the given status.
func (s *Repository) CountInquiriesByStatus(status string) (int, error) {
	var count int
	err := s.DB.QueryRow("SELECT COUNT(*) FROM inquiries WHERE status = ?", status).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
