package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/socialdots/site/internal/pricing"
)

const projectsTable = "projects"

// Project statuses.
const (
	ProjectPlanned    = "planned"
	ProjectInProgress = "in_progress"
	ProjectCompleted  = "completed"
)

// Project is a client engagement tracked in the back-office.
type Project struct {
	ID         string `json:"id"`
	ClientName string `json:"client_name"`
	Title      string `json:"title"`
	ServiceID  string `json:"service_id"`
	Status     string `json:"status"`
	Budget     int64  `json:"budget"`
	CreatedAt  string `json:"created_at"`
}

// ProjectInput holds the editable project fields. ServiceID must name a pricing
// catalog offering; CreateProject and UpdateProject return
// *pricing.UnknownServiceError otherwise.
type ProjectInput struct {
	ClientName string `json:"client_name" validate:"required,max=120"`
	Title      string `json:"title" validate:"required,max=200"`
	ServiceID  string `json:"service_id" validate:"required,catalog_service"`
	Status     string `json:"status" validate:"required,oneof=planned in_progress completed"`
	Budget     int64  `json:"budget" validate:"min=0"`
}

// CreateProject inserts a project and returns the stored row.
func (s *Store) CreateProject(ctx context.Context, in ProjectInput) (Project, error) {
	if err := s.checkService(in.ServiceID); err != nil {
		return Project{}, err
	}
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO projects (id, client_name, title, service_id, status, budget)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, in.ClientName, in.Title, in.ServiceID, in.Status, in.Budget)
	if err != nil {
		return Project{}, fmt.Errorf("insert project: %w", err)
	}
	return s.getProject(ctx, id)
}

func (s *Store) checkService(id string) error {
	if _, ok := s.catalog.Service(id); !ok {
		return &pricing.UnknownServiceError{ServiceID: id}
	}
	return nil
}

// ListProjects returns every project, newest first.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_name, title, service_id, status, budget, created_at
		FROM projects
		ORDER BY datetime(created_at) DESC, rowid DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("query projects: %w", err)
	}
	defer rows.Close()

	projects := make([]Project, 0)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.ClientName, &p.Title, &p.ServiceID, &p.Status, &p.Budget, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}

	return projects, nil
}

// UpdateProject replaces the editable fields of project id.
func (s *Store) UpdateProject(ctx context.Context, id string, in ProjectInput) (Project, error) {
	if err := s.checkService(in.ServiceID); err != nil {
		return Project{}, err
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE projects
		SET
			client_name = ?,
			title = ?,
			service_id = ?,
			status = ?,
			budget = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, in.ClientName, in.Title, in.ServiceID, in.Status, in.Budget, id)
	if err != nil {
		return Project{}, fmt.Errorf("update project: %w", err)
	}
	if err := expectOneRow(result, "update project"); err != nil {
		return Project{}, err
	}
	return s.getProject(ctx, id)
}

// DeleteProject removes project id.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	return s.deleteByID(ctx, projectsTable, id)
}

func (s *Store) getProject(ctx context.Context, id string) (Project, error) {
	var p Project
	err := s.db.QueryRowContext(ctx, `
		SELECT id, client_name, title, service_id, status, budget, created_at
		FROM projects
		WHERE id = ?
	`, id).Scan(&p.ID, &p.ClientName, &p.Title, &p.ServiceID, &p.Status, &p.Budget, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Project{}, ErrNotFound
	}
	if err != nil {
		return Project{}, fmt.Errorf("query project: %w", err)
	}
	return p, nil
}
