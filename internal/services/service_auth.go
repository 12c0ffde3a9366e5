package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Amitgupta170804/BlogEase/dto"
	"github.com/Amitgupta170804/BlogEase/internal/auth"
	"github.com/Amitgupta170804/BlogEase/internal/models"
	"github.com/Amitgupta170804/BlogEase/internal/repository"
)

type AuthService struct {
	users  UserStore
	signer *auth.Signer
	cost   int
	now    func() time.Time
}

func NewAuthService(users UserStore, signer *auth.Signer) *AuthService {
	return &AuthService{
		users:  users,
		signer: signer,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

// WithBcryptCost overrides the hashing cost. Tests use bcrypt.MinCost.
func (s *AuthService) WithBcryptCost(cost int) *AuthService {
	s.cost = cost
	return s
}

// Register creates the account and returns a session token for it.
// The email is checked before the username.
func (s *AuthService) Register(ctx context.Context, req dto.RegisterRequest) (string, error) {
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("lookup email: %w", err)
	}

	if _, err := s.users.FindByUsername(ctx, req.Username); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("lookup username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	now := s.now().UTC()
	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// lost a race with a concurrent registration
			return "", ErrEmailTaken
		}
		return "", fmt.Errorf("insert user: %w", err)
	}

	return s.signer.Sign(user.ID)
}

// Login never tells an unknown email apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (string, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.signer.Sign(user.ID)
}
