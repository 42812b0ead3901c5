package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const resourcesTable = "resources"

// Resource is an article, guide or case study linked from the Resources page.
type Resource struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Kind      string `json:"kind"`
	Published bool   `json:"published"`
	CreatedAt string `json:"created_at"`
}

// ResourceInput holds the editable resource fields.
type ResourceInput struct {
	Title     string `json:"title" validate:"required,max=200"`
	URL       string `json:"url" validate:"required,url"`
	Kind      string `json:"kind" validate:"required,oneof=article guide case_study"`
	Published bool   `json:"published"`
}

// CreateResource inserts a resource and returns the stored row.
func (s *Store) CreateResource(ctx context.Context, in ResourceInput) (Resource, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resources (id, title, url, kind, published)
		VALUES (?, ?, ?, ?, ?)
	`, id, in.Title, in.URL, in.Kind, in.Published)
	if err != nil {
		return Resource{}, fmt.Errorf("insert resource: %w", err)
	}
	return s.getResource(ctx, id)
}

// ListResources returns every resource, newest first.
func (s *Store) ListResources(ctx context.Context) ([]Resource, error) {
	return s.queryResources(ctx, false)
}

// ListPublishedResources returns the resources visible on the public site.
func (s *Store) ListPublishedResources(ctx context.Context) ([]Resource, error) {
	return s.queryResources(ctx, true)
}

// UpdateResource replaces the editable fields of resource id.
func (s *Store) UpdateResource(ctx context.Context, id string, in ResourceInput) (Resource, error) {
	result, err := s.db.ExecContext(ctx, `
		UPDATE resources
		SET
			title = ?,
			url = ?,
			kind = ?,
			published = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, in.Title, in.URL, in.Kind, in.Published, id)
	if err != nil {
		return Resource{}, fmt.Errorf("update resource: %w", err)
	}
	if err := expectOneRow(result, "update resource"); err != nil {
		return Resource{}, err
	}
	return s.getResource(ctx, id)
}

// DeleteResource removes resource id.
func (s *Store) DeleteResource(ctx context.Context, id string) error {
	return s.deleteByID(ctx, resourcesTable, id)
}

func (s *Store) getResource(ctx context.Context, id string) (Resource, error) {
	var r Resource
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, url, kind, published, created_at
		FROM resources
		WHERE id = ?
	`, id).Scan(&r.ID, &r.Title, &r.URL, &r.Kind, &r.Published, &r.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Resource{}, ErrNotFound
	}
	if err != nil {
		return Resource{}, fmt.Errorf("query resource: %w", err)
	}
	return r, nil
}

func (s *Store) queryResources(ctx context.Context, publishedOnly bool) ([]Resource, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, url, kind, published, created_at
		FROM resources
		WHERE (? = FALSE OR published = TRUE)
		ORDER BY datetime(created_at) DESC, rowid DESC
	`, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("query resources: %w", err)
	}
	defer rows.Close()

	resources := make([]Resource, 0)
	for rows.Next() {
		var r Resource
		if err := rows.Scan(&r.ID, &r.Title, &r.URL, &r.Kind, &r.Published, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan resource: %w", err)
		}
		resources = append(resources, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate resources: %w", err)
	}

	return resources, nil
}
