package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/tablemarket-server/internal/logger"
	"github.com/dtroode/tablemarket-server/internal/model"
)

// Users implements account registration, credential checks and maintenance.
type Users struct {
	store  model.UserStore
	cost   int
	logger *logger.Logger
}

// NewUsers creates a Users service. A cost outside bcrypt's range falls back to bcrypt.DefaultCost.
func NewUsers(store model.UserStore, cost int, logger *logger.Logger) *Users {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Users{store: store, cost: cost, logger: logger}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create registers a new account. The email is stored lower-cased and the
// password only as a bcrypt hash.
func (s *Users) Create(ctx context.Context, username, email, password string) (model.User, error) {
	email = normalizeEmail(email)

	s.logger.Debug("Users service: creating user",
		"username", username,
		"email", email)

	_, err := s.store.GetByEmail(ctx, email)
	switch {
	case err == nil:
		s.logger.Info("Users service: email already registered",
			"email", email)
		return model.User{}, fmt.Errorf("user with email %s: %w", email, model.ErrAlreadyExists)
	case !errors.Is(err, model.ErrNotFound):
		s.logger.Error("Users service: failed to look up email",
			"email", email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	hash, err := s.hash(password)
	if err != nil {
		return model.User{}, err
	}

	user, err := s.store.Create(ctx, model.User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: hash,
	})
	if err != nil {
		if errors.Is(err, model.ErrAlreadyExists) {
			s.logger.Info("Users service: username or email taken",
				"username", username,
				"email", email)
			return model.User{}, fmt.Errorf("user %s: %w", username, model.ErrAlreadyExists)
		}
		s.logger.Error("Users service: failed to create user",
			"username", username,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Users service: user created",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// Verify returns the account matching email when password is correct.
func (s *Users) Verify(ctx context.Context, email, password string) (model.User, error) {
	email = normalizeEmail(email)

	user, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Debug("Users service: no account for email",
				"email", email)
			return model.User{}, fmt.Errorf("no account with email %s: %w", email, model.ErrNotFound)
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Info("Users service: password mismatch",
			"user_id", user.ID)
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

// GetByID loads an account by ID.
func (s *Users) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return user, nil
}

// Update applies a partial update and returns the refreshed account.
// A new email is lower-cased and a new password is hashed before storing.
func (s *Users) Update(ctx context.Context, id uuid.UUID, update model.UserUpdate) (model.User, error) {
	if update.Email != nil {
		email := normalizeEmail(*update.Email)
		update.Email = &email
	}

	if update.Password != nil {
		hash, err := s.hash(*update.Password)
		if err != nil {
			return model.User{}, err
		}
		update.Password = &hash
	}

	user, err := s.store.Update(ctx, id, update)
	if err != nil {
		s.logger.Error("Users service: failed to update user",
			"user_id", id,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to update user %s: %w", id, err)
	}

	s.logger.Info("Users service: user updated",
		"user_id", id)

	return user, nil
}

// Delete removes an account.
func (s *Users) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			s.logger.Error("Users service: failed to delete user",
				"user_id", id,
				"error", err.Error())
		}
		return fmt.Errorf("failed to delete user %s: %w", id, err)
	}

	s.logger.Info("Users service: user deleted",
		"user_id", id)

	return nil
}

func (s *Users) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
