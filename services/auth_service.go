package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
)

// tenantCodePrefix prefixes every generated tenant code.
const tenantCodePrefix = "BZU"

// RegisterRequest carries a new owner registration.
type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	FullName       string `json:"full_name" binding:"required"`
	RestaurantName string `json:"restaurant_name" binding:"required"`
	Phone          string `json:"phone" binding:"required"`
	Address        string `json:"address" binding:"required"`
}

type AuthService struct {
	users repository.UserRepo
}

func NewAuthService(users repository.UserRepo) *AuthService {
	return &AuthService{users: users}
}

// GenerateTenantCode generates a tenant code: 3-letter prefix + 6 digits.
// It is assigned once at registration and immutable afterwards.
func GenerateTenantCode() string {
	return fmt.Sprintf("%s%06d", tenantCodePrefix, rand.Intn(1000000))
}

// Register creates a new owner account with a hashed password and a fresh
// tenant code.
func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	existing, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.New(http.StatusBadRequest,
			"Email already registered. Please use a different email address.", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		UserID:         GenerateTenantCode(),
		Email:          req.Email,
		Password:       string(hashed),
		FullName:       req.FullName,
		RestaurantName: req.RestaurantName,
		Phone:          req.Phone,
		Address:        req.Address,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return s.users.Insert(ctx, user)
}

// Authenticate verifies email and password, returning the user on success.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}
