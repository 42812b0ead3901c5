// Package store persists the admin back-office content: testimonials, client
// projects and resources.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/socialdots/site/internal/pricing"
)

// ErrNotFound is returned when an update or delete targets a missing row.
var ErrNotFound = errors.New("record not found")

// Store wraps the site database.
type Store struct {
	db      *sql.DB
	catalog *pricing.Catalog
}

// New returns a Store backed by db. The schema must already be migrated.
// Project service ids are checked against catalog.
func New(db *sql.DB, catalog *pricing.Catalog) *Store {
	return &Store{db: db, catalog: catalog}
}

func expectOneRow(result sql.Result, what string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", what, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) deleteByID(ctx context.Context, table, id string) error {
	// table is always a package constant, never user input.
	result, err := s.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", table, err)
	}
	return expectOneRow(result, "delete from "+table)
}
