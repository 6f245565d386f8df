package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/kpa-platform/form-service/internal/repository"
)

// ErrInvalidCredentials is returned when the phone number or password is
// wrong. Callers must not reveal which.
var ErrInvalidCredentials = errors.New("invalid phone number or password")

// LoginResult carries the outcome of a successful login.
type LoginResult struct {
	Token     string
	UserID    string
	ExpiresAt time.Time
}

// AuthService defines authentication operations.
type AuthService interface {
	Login(ctx context.Context, phoneNumber, password string) (*LoginResult, error)
}

type authService struct {
	userRepo     repository.UserRepository
	tokenService TokenService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, tokenService TokenService) AuthService {
	return &authService{
		userRepo:     userRepo,
		tokenService: tokenService,
	}
}

// Login exchanges credentials for a fresh bearer token. A credential miss
// returns ErrInvalidCredentials; any storage or signing fault is returned
// as-is for the handler to map to an internal failure.
func (s *authService) Login(ctx context.Context, phoneNumber, password string) (*LoginResult, error) {
	user, err := s.userRepo.FindByCredentials(ctx, phoneNumber, HashPassword(password))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	token, expiresAt, err := s.tokenService.Issue(user.ID, user.PhoneNumber)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		Token:     token,
		UserID:    user.ID.String(),
		ExpiresAt: expiresAt,
	}, nil
}

// HashPassword computes the hex-encoded SHA-256 digest of a password.
// Credentials are looked up by digest equality, so the digest must be
// deterministic and unsalted.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
