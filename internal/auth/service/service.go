// Package service provides business logic for registration and login.
package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/fablite/fablite/internal/auth/model"
	"github.com/fablite/fablite/internal/auth/token"
	userModel "github.com/fablite/fablite/internal/user/model"
	userRepository "github.com/fablite/fablite/internal/user/repository"
)

// Service defines the interface for authentication operations.
type Service interface {
	// Register creates a new user account. It does not log the user in.
	Register(ctx context.Context, req *model.RegisterRequest) (*userModel.User, error)

	// Login verifies credentials and issues an access token.
	Login(ctx context.Context, req *model.LoginRequest) (string, error)

	// Whoami resolves an authenticated user id to its account.
	Whoami(ctx context.Context, userID uint) (*userModel.User, error)
}

type service struct {
	users  userRepository.Repository
	tokens *token.Manager
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(users userRepository.Repository, tokens *token.Manager, logger *zap.SugaredLogger) Service {
	return &service{users: users, tokens: tokens, logger: logger}
}

// Register hashes the password and persists a new user. The unique email
// index resolves the race between concurrent registrations; the duplicate
// error surfaces as ErrEmailTaken regardless of ordering.
func (s *service) Register(ctx context.Context, req *model.RegisterRequest) (*userModel.User, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = userModel.RoleUser
	}

	user := &userModel.User{
		Email:    req.Email,
		Password: string(digest),
		Role:     role,
		Name:     req.Name,
		Surname:  req.Surname,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Infow("user registered", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies the password against the stored digest and issues a token
// bound to the user id. Unknown email and wrong password yield the same error.
func (s *service) Login(ctx context.Context, req *model.LoginRequest) (string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, userModel.ErrUserNotFound) {
			return "", model.ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", model.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.Issue(user.ID)
	if err != nil {
		s.logger.Errorw("failed to issue token", "user_id", user.ID, "error", err)
		return "", err
	}

	s.logger.Infow("user logged in", "user_id", user.ID)
	return accessToken, nil
}

// Whoami resolves an authenticated user id to its account.
func (s *service) Whoami(ctx context.Context, userID uint) (*userModel.User, error) {
	return s.users.GetByID(ctx, userID)
}
