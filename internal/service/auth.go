package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taskdeck/taskdeck-go/internal/crypto"
	"github.com/taskdeck/taskdeck-go/internal/model"
	"github.com/taskdeck/taskdeck-go/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidFullName    = errors.New("full name must be between 3 and 50 characters")
	ErrInvalidEmail       = errors.New("a valid email is required")
	ErrPasswordTooShort   = errors.New("password must be at least 6 characters")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrEmailTaken         = errors.New("email already taken")
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// maxEmailLength is the RFC 5321 ceiling; it also keeps input inside the
// email column instead of failing at the database.
const maxEmailLength = 254

// UserStore is the persistence surface the auth flows need.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// AuthService handles signup, login and current-user lookups.
type AuthService struct {
	store      UserStore
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService.
func NewAuthService(store UserStore, secret string, ttl time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		store:      store,
		jwtSecret:  secret,
		tokenTTL:   ttl,
		bcryptCost: bcryptCost,
	}
}

// NormalizeEmail lowercases and trims an email address. All storage and
// lookups go through the normalized form, which is what makes uniqueness
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup validates the request, creates the user with a hashed password and
// returns a fresh token.
func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) (model.AuthResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	if n := utf8.RuneCountInString(fullName); n < 3 || n > 50 {
		return model.AuthResponse{}, ErrInvalidFullName
	}

	email := NormalizeEmail(req.Email)
	if len(email) > maxEmailLength || !emailPattern.MatchString(email) {
		return model.AuthResponse{}, ErrInvalidEmail
	}

	if len(req.Password) < 6 {
		return model.AuthResponse{}, ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return model.AuthResponse{}, ErrPasswordMismatch
	}

	hash, err := crypto.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return model.AuthResponse{}, err
	}

	user := &model.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return model.AuthResponse{}, ErrEmailTaken
		}
		return model.AuthResponse{}, err
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Success: true, Token: token, User: user.ToResponse()}, nil
}

// Login authenticates a user and returns a fresh token. An unknown email and
// a wrong password produce the same error, so responses cannot be used to
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	user, err := s.store.GetByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	token, err := crypto.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenTTL)
	if err != nil {
		return model.AuthResponse{}, err
	}

	return model.AuthResponse{Success: true, Token: token, User: user.ToResponse()}, nil
}

// CurrentUser resolves the user behind a verified token.
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (model.UserResponse, error) {
	user, err := s.store.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.UserResponse{}, ErrInvalidCredentials
		}
		return model.UserResponse{}, err
	}

	return user.ToResponse(), nil
}
