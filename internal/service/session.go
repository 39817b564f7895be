package service

import (
	"context"
	"fmt"

	"github.com/dtroode/tablemarket-server/internal/logger"
	"github.com/dtroode/tablemarket-server/internal/model"
)

// Sessions is the glue a web layer uses to log users in and load them back
// from a session token. It works on any model.Authenticatable record.
type Sessions struct {
	users  *Users
	tokens model.TokenManager
	logger *logger.Logger
}

func NewSessions(users *Users, tokens model.TokenManager, logger *logger.Logger) *Sessions {
	return &Sessions{users: users, tokens: tokens, logger: logger}
}

// Login verifies credentials and issues a session token.
func (s *Sessions) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := s.users.Verify(ctx, email, password)
	if err != nil {
		return model.User{}, "", err
	}

	token, err := s.Issue(user)
	if err != nil {
		return model.User{}, "", err
	}

	return user, token, nil
}

// Issue creates a session token for an already authenticated record.
func (s *Sessions) Issue(subject model.Authenticatable) (string, error) {
	token, err := s.tokens.GenerateAccessToken(subject.GetID())
	if err != nil {
		s.logger.Error("Sessions service: failed to issue token",
			"user_id", subject.GetID(),
			"error", err.Error())
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}
	return token, nil
}

// Resolve loads the user a session token was issued for.
func (s *Sessions) Resolve(ctx context.Context, token string) (model.User, error) {
	userID, err := s.tokens.ParseAccessToken(token)
	if err != nil {
		s.logger.Debug("Sessions service: rejected token",
			"error", err.Error())
		return model.User{}, fmt.Errorf("invalid session token: %w", model.ErrInvalidCredentials)
	}

	return s.users.GetByID(ctx, userID)
}
