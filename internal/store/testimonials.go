package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const testimonialsTable = "testimonials"

// Testimonial is a client quote shown on the marketing pages once approved.
type Testimonial struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Company    string `json:"company"`
	Quote      string `json:"quote"`
	Rating     int    `json:"rating"`
	Approved   bool   `json:"approved"`
	CreatedAt  string `json:"created_at"`
}

// TestimonialInput holds the editable testimonial fields.
type TestimonialInput struct {
	ClientName string `json:"client_name" validate:"required,max=120"`
	Company    string `json:"company" validate:"max=120"`
	Quote      string `json:"quote" validate:"required,max=2000"`
	Rating     int    `json:"rating" validate:"min=1,max=5"`
	Approved   bool   `json:"approved"`
}

// CreateTestimonial inserts a testimonial and returns the stored row.
func (s *Store) CreateTestimonial(ctx context.Context, in TestimonialInput) (Testimonial, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO testimonials (id, client_name, company, quote, rating, approved)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, in.ClientName, in.Company, in.Quote, in.Rating, in.Approved)
	if err != nil {
		return Testimonial{}, fmt.Errorf("insert testimonial: %w", err)
	}
	return s.getTestimonial(ctx, id)
}

// ListTestimonials returns every testimonial, newest first.
func (s *Store) ListTestimonials(ctx context.Context) ([]Testimonial, error) {
	return s.queryTestimonials(ctx, false)
}

// ListApprovedTestimonials returns the testimonials cleared for publication.
func (s *Store) ListApprovedTestimonials(ctx context.Context) ([]Testimonial, error) {
	return s.queryTestimonials(ctx, true)
}

// UpdateTestimonial replaces the editable fields of testimonial id.
func (s *Store) UpdateTestimonial(ctx context.Context, id string, in TestimonialInput) (Testimonial, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE testimonials
		SET
			client_name = ?,
			company = ?,
			quote = ?,
			rating = ?,
			approved = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, in.ClientName, in.Company, in.Quote, in.Rating, in.Approved, id)
	if err != nil {
		return Testimonial{}, fmt.Errorf("update testimonial: %w", err)
	}
	if err := expectOneRow(result, "update testimonial"); err != nil {
		return Testimonial{}, err
	}
	return s.getTestimonial(ctx, id)
}

// DeleteTestimonial removes testimonial id.
func (s *Store) DeleteTestimonial(ctx context.Context, id string) error {
	return s.deleteByID(ctx, testimonialsTable, id)
}

func (s *Store) getTestimonial(ctx context.Context, id string) (Testimonial, error) {
	var t Testimonial
	err := s.db.QueryRowContext(ctx, `
		SELECT id, client_name, company, quote, rating, approved, created_at
		FROM testimonials
		WHERE id = ?
	`, id).Scan(&t.ID, &t.ClientName, &t.Company, &t.Quote, &t.Rating, &t.Approved, &t.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Testimonial{}, ErrNotFound
	}
	if err != nil {
		return Testimonial{}, fmt.Errorf("query testimonial: %w", err)
	}
	return t, nil
}

func (s *Store) queryTestimonials(ctx context.Context, approvedOnly bool) ([]Testimonial, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_name, company, quote, rating, approved, created_at
		FROM testimonials
		WHERE (? = FALSE OR approved = TRUE)
		ORDER BY datetime(created_at) DESC, rowid DESC
	`, approvedOnly)
	if err != nil {
		return nil, fmt.Errorf("query testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := make([]Testimonial, 0)
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(&t.ID, &t.ClientName, &t.Company, &t.Quote, &t.Rating, &t.Approved, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate testimonials: %w", err)
	}

	return testimonials, nil
}
