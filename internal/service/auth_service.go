package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"microblog/internal/models"
	"microblog/internal/repository"
)

type AuthService interface {
	Signup(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, authorization string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenService
	hasher   PasswordHasher
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenService, hasher PasswordHasher) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
		hasher:   hasher,
	}
}

func (s *authService) Signup(ctx context.Context, email, password string) (string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, email)
	if err == nil && existingUser != nil {
		return "", ErrConflict
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := &models.User{Email: email, PasswordHash: hash}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		// lost a race with a concurrent signup for the same email
		if errors.Is(err, repository.ErrDuplicate) {
			return "", ErrConflict
		}
		return "", err
	}

	return s.tokens.Issue(user.Email)
}

// Login answers ErrUnauthorized for both an unknown email and a wrong
// password.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.hasher.VerifyDummy(password)
			return "", ErrUnauthorized
		}
		return "", err
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return "", ErrUnauthorized
	}

	return s.tokens.Issue(user.Email)
}

// Authenticate resolves an Authorization header value of the form
// "Bearer <token>" to a stored user.
func (s *authService) Authenticate(ctx context.Context, authorization string) (*models.User, error) {
	scheme, tokenString, found := strings.Cut(authorization, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
		return nil, fmt.Errorf("%w: missing bearer token", ErrUnauthorized)
	}

	email, err := s.tokens.Validate(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user", ErrUnauthorized)
		}
		return nil, err
	}

	return user, nil
}
