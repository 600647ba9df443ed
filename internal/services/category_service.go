package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/localnerve/nickstore/internal/models"
	"github.com/localnerve/nickstore/internal/store"
)

// CategoryService creates, lists and deletes categories. Deletion is refused
// while any listing still carries the category's name.
type CategoryService struct {
	Store *store.Store
	Now   func() time.Time
}

// NewCategoryService creates a category service over s
func NewCategoryService(s *store.Store) *CategoryService {
	return &CategoryService{
		Store: s,
		Now:   utcNow,
	}
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// Create inserts a category named name. The existence check and the insert
// share one transaction; a concurrent insert that wins the race is caught by
// the unique index and reported the same way.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: category name is required", ErrValidation)
	}

	category := &models.Category{Name: name}
	err := s.Store.Transaction(ctx, func(tx *store.Store) error {
		exists, err := tx.Categories.Exists(ctx, "name", name)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateName
		}

		category.CreatedAt = s.Now()
		return tx.Categories.Insert(ctx, category)
	})
	if errors.Is(err, store.ErrUniqueViolation) {
		err = ErrDuplicateName
	}
	observeMutation("category", "create", err)
	if err != nil {
		return nil, err
	}

	return category, nil
}

// ListAll returns every category in creation order
func (s *CategoryService) ListAll(ctx context.Context) ([]models.Category, error) {
	return s.Store.Categories.List(ctx, store.Asc("created_at"), store.Asc("id"))
}

// ListNames returns the category names in the store's default order
func (s *CategoryService) ListNames(ctx context.Context) ([]string, error) {
	categories, err := s.Store.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}

// Delete removes the category with id. Both the existence and the reference
// checks run before anything is deleted, in the same transaction.
func (s *CategoryService) Delete(ctx context.Context, id uint64) error {
	err := s.Store.Transaction(ctx, func(tx *store.Store) error {
		category, err := tx.Categories.GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		referenced, err := tx.Listings.Exists(ctx, "category", category.Name)
		if err != nil {
			return err
		}
		if referenced {
			return fmt.Errorf("%w: cannot delete category '%s' while listings still use it", ErrReferencedByListings, category.Name)
		}

		if err := tx.Categories.Delete(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		return nil
	})
	observeMutation("category", "delete", err)
	return err
}

// EnsureSeeded inserts names, in order, when the category table is empty and
// does nothing otherwise. It returns how many categories were inserted.
func (s *CategoryService) EnsureSeeded(ctx context.Context, names []string) (int, error) {
	inserted := 0
	err := s.Store.Transaction(ctx, func(tx *store.Store) error {
		count, err := tx.Categories.Count(ctx)
		if err != nil {
			return err
		}
		if count > 0 {
			log.Printf("Found %d existing categories, skipping seed", count)
			return nil
		}

		// Spread creation times so creation order survives coarse timestamp columns
		base := s.Now()
		for i, name := range names {
			category := &models.Category{
				Name:      name,
				CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
			}
			if err := tx.Categories.Insert(ctx, category); err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			// Another process seeded first
			log.Printf("Categories seeded concurrently, skipping seed")
			return 0, nil
		}
		return 0, fmt.Errorf("failed to seed categories: %w", err)
	}

	if inserted > 0 {
		seededCategories.Add(float64(inserted))
		log.Printf("Added %d default categories", inserted)
	}
	return inserted, nil
}
