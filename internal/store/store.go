// Package store is the entity store for the catalog: one generic table per
// record kind over a shared GORM handle, with uniqueness violations and
// missing rows reported as sentinel errors.
package store

import (
	"context"
	"errors"
	"strings"

	"github.com/localnerve/nickstore/internal/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches an id lookup
	ErrNotFound = errors.New("record not found")

	// ErrUniqueViolation is returned when an insert collides with a unique index
	ErrUniqueViolation = errors.New("unique constraint violation")
)

// Store bundles the three catalog tables around one database handle.
// Inside Transaction every table is bound to the same transaction.
type Store struct {
	db         *gorm.DB
	Accounts   *Table[models.Account]
	Categories *Table[models.Category]
	Listings   *Table[models.Listing]
}

// New creates a store over an opened database
func New(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Accounts:   NewTable[models.Account](db, "accounts"),
		Categories: NewTable[models.Category](db, "categories"),
		Listings:   NewTable[models.Listing](db, "game_nicks"),
	}
}

// Transaction runs fn with a store bound to a single transaction. The
// transaction commits when fn returns nil and rolls back otherwise.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// translateError maps driver errors onto the store's sentinel errors
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isUniqueViolation(err):
		return errors.Join(ErrUniqueViolation, err)
	}
	return err
}

// isUniqueViolation reports duplicate key errors. TranslateError covers the
// drivers that implement it; the message checks cover the rest.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	// sqlite, postgres, mysql/mariadb, sqlserver
	for _, marker := range []string{
		"UNIQUE constraint failed",
		"duplicate key value",
		"Duplicate entry",
		"Cannot insert duplicate key",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
