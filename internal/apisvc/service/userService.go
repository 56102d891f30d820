package service

import (
	"context"
	"strings"

	"github.com/avvvet/arena-services/internal/apisvc/models"

	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetProfile(ctx context.Context, id int64) (*models.Profile, error)
	UpdateUser(ctx context.Context, id int64, username, email *string) (*models.User, error)
	ListProfiles(ctx context.Context) ([]*models.Profile, error)
	SetAdmin(ctx context.Context, id int64, isAdmin bool) (bool, error)
}

// UserService struct represents the user service layer
type UserService struct {
	userStore UserStore
}

// NewUserService creates a new UserService instance
func NewUserService(userStore UserStore) *UserService {
	return &UserService{
		userStore: userStore,
	}
}

// Signup hashes the password and creates the user with its wallet.
func (s *UserService) Signup(ctx context.Context, username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.userStore.CreateUser(ctx, models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	})
}

// Login verifies the credentials and returns the user's profile. Any
// mismatch, unknown email included, reads as ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.userStore.GetProfile(ctx, user.UserId)
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*models.Profile, error) {
	return s.userStore.GetProfile(ctx, userID)
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, username, email *string) (*models.User, error) {
	return s.userStore.UpdateUser(ctx, userID, username, email)
}

func (s *UserService) ListUsers(ctx context.Context) ([]*models.Profile, error) {
	return s.userStore.ListProfiles(ctx)
}

// MakeAdmin sets the admin flag, reports whether the user existed.
func (s *UserService) MakeAdmin(ctx context.Context, userID int64) (bool, error) {
	return s.userStore.SetAdmin(ctx, userID, true)
}

// RemoveAdmin clears the admin flag, reports whether the user existed.
func (s *UserService) RemoveAdmin(ctx context.Context, userID int64) (bool, error) {
	return s.userStore.SetAdmin(ctx, userID, false)
}
