package store

import (
	"context"
	"fmt"
)

// Dashboard summarizes back-office content for the admin landing page.
type Dashboard struct {
	Testimonials struct {
		Total         int     `json:"total"`
		Approved      int     `json:"approved"`
		AverageRating float64 `json:"average_rating"`
	} `json:"testimonials"`
	Projects struct {
		Total          int            `json:"total"`
		ByStatus       map[string]int `json:"by_status"`
		PipelineBudget int64          `json:"pipeline_budget"`
	} `json:"projects"`
	Resources struct {
		Total     int `json:"total"`
		Published int `json:"published"`
	} `json:"resources"`
}

// Dashboard computes content counts. Pipeline budget sums projects not yet completed;
// average rating covers approved testimonials only.
func (s *Store) Dashboard(ctx context.Context) (Dashboard, error) {
	var d Dashboard

	err := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN approved THEN 1 ELSE 0 END), 0),
			COALESCE(AVG(CASE WHEN approved THEN rating END), 0.0)
		FROM testimonials
	`).Scan(&d.Testimonials.Total, &d.Testimonials.Approved, &d.Testimonials.AverageRating)
	if err != nil {
		return Dashboard{}, fmt.Errorf("query testimonial stats: %w", err)
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN published THEN 1 ELSE 0 END), 0)
		FROM resources
	`).Scan(&d.Resources.Total, &d.Resources.Published)
	if err != nil {
		return Dashboard{}, fmt.Errorf("query resource stats: %w", err)
	}

	d.Projects.ByStatus = map[string]int{
		ProjectPlanned:    0,
		ProjectInProgress: 0,
		ProjectCompleted:  0,
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT status, COUNT(*), COALESCE(SUM(budget), 0)
		FROM projects
		GROUP BY status
	`)
	if err != nil {
		return Dashboard{}, fmt.Errorf("query project stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int
			budget int64
		)
		if err := rows.Scan(&status, &count, &budget); err != nil {
			return Dashboard{}, fmt.Errorf("scan project stats: %w", err)
		}
		d.Projects.ByStatus[status] = count
		d.Projects.Total += count
		if status != ProjectCompleted {
			d.Projects.PipelineBudget += budget
		}
	}
	if err := rows.Err(); err != nil {
		return Dashboard{}, fmt.Errorf("iterate project stats: %w", err)
	}

	return d, nil
}
