package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/localnerve/nickstore/internal/config"
	"github.com/localnerve/nickstore/internal/models"
	"github.com/localnerve/nickstore/internal/store"
)

// ListingInput carries the fields of a new listing. Empty FacebookLink and
// nil Images take their defaults.
type ListingInput struct {
	Title        string
	Category     string
	Price        float64
	Details      string
	FacebookLink string
	Images       []string
}

// ListingService creates, reads and deletes listings. The category of a new
// listing is stored as given and never checked against existing categories.
type ListingService struct {
	Store               *store.Store
	Now                 func() time.Time
	DefaultFacebookLink string
}

// NewListingService creates a listing service over s
func NewListingService(s *store.Store) *ListingService {
	return &ListingService{
		Store:               s,
		Now:                 utcNow,
		DefaultFacebookLink: config.DefaultFacebookLink,
	}
}

// Create inserts a listing built from input
func (s *ListingService) Create(ctx context.Context, input ListingInput) (*models.Listing, error) {
	if input.Category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrValidation)
	}
	if math.IsNaN(input.Price) || math.IsInf(input.Price, 0) || input.Price < 0 {
		return nil, fmt.Errorf("%w: price must be a non-negative number", ErrValidation)
	}

	listing := &models.Listing{
		Title:        input.Title,
		Category:     input.Category,
		Price:        input.Price,
		Details:      input.Details,
		FacebookLink: input.FacebookLink,
		Images:       append(models.ImageList{}, input.Images...),
		CreatedAt:    s.Now(),
	}
	if listing.FacebookLink == "" {
		listing.FacebookLink = s.DefaultFacebookLink
	}

	err := s.Store.Listings.Insert(ctx, listing)
	observeMutation("listing", "create", err)
	if err != nil {
		return nil, err
	}
	return listing, nil
}

// Get returns the listing with id
func (s *ListingService) Get(ctx context.Context, id uint64) (*models.Listing, error) {
	listing, err := s.Store.Listings.Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return listing, nil
}

// ListAll returns every listing, newest first
func (s *ListingService) ListAll(ctx context.Context) ([]models.Listing, error) {
	return s.Store.Listings.List(ctx, store.Desc("created_at"), store.Desc("id"))
}

// ListByCategory returns the listings whose category equals name, newest
// first. No match is an empty result, not an error.
func (s *ListingService) ListByCategory(ctx context.Context, name string) ([]models.Listing, error) {
	return s.Store.Listings.FindWhere(ctx, "category", name, store.Desc("created_at"), store.Desc("id"))
}

// Delete removes the listing with id
func (s *ListingService) Delete(ctx context.Context, id uint64) error {
	err := s.Store.Listings.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		err = ErrNotFound
	}
	observeMutation("listing", "delete", err)
	return err
}
