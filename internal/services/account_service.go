package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/localnerve/nickstore/internal/models"
	"github.com/localnerve/nickstore/internal/store"
)

// AccountService registers operators and checks their credentials.
// Passwords are stored and compared as given.
type AccountService struct {
	Store *store.Store
}

// NewAccountService creates an account service over s
func NewAccountService(s *store.Store) *AccountService {
	return &AccountService{Store: s}
}

// Login returns the account whose username and password both equal the
// arguments exactly. Every mismatch, whichever field caused it, is
// ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, username, password string) (*models.Account, error) {
	account, err := s.login(ctx, username, password)
	observeAuth("login", err)
	return account, err
}

func (s *AccountService) login(ctx context.Context, username, password string) (*models.Account, error) {
	account, err := s.Store.Accounts.FindFirst(ctx, map[string]interface{}{
		"username": username,
		"password": password,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	// Compare in Go as well so case-insensitive collations cannot widen the match
	if account.Username != username || account.Password != password {
		return nil, ErrInvalidCredentials
	}
	return account, nil
}

// Register creates an account. It does not log the new account in.
func (s *AccountService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		err := fmt.Errorf("%w: username and password are required", ErrValidation)
		observeAuth("register", err)
		return err
	}

	err := s.Store.Transaction(ctx, func(tx *store.Store) error {
		exists, err := tx.Accounts.Exists(ctx, "username", username)
		if err != nil {
			return err
		}
		if exists {
			return ErrDuplicateUsername
		}
		return tx.Accounts.Insert(ctx, &models.Account{
			Username: username,
			Password: password,
		})
	})
	if errors.Is(err, store.ErrUniqueViolation) {
		err = ErrDuplicateUsername
	}
	observeAuth("register", err)
	return err
}
