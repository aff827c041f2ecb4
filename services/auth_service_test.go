package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
)

type fakeUserRepo struct {
	users []models.User
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID.Hex() == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Email == email {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = primitive.NewObjectID()
	f.users = append(f.users, *user)
	return user, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error) {
	for i := range f.users {
		if f.users[i].ID.Hex() != id {
			continue
		}
		for field, value := range updates {
			switch field {
			case "full_name":
				f.users[i].FullName = value.(string)
			case "restaurant_name":
				f.users[i].RestaurantName = value.(string)
			case "phone":
				f.users[i].Phone = value.(string)
			case "address":
				f.users[i].Address = value.(string)
			case "profile_image":
				f.users[i].ProfileImage = value.(string)
			}
		}
		user := f.users[i]
		return &user, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) EnsureIndexes(ctx context.Context) error { return nil }

func validRegisterRequest() *RegisterRequest {
	return &RegisterRequest{
		Email:          "owner@example.com",
		Password:       "sup3rsecret",
		FullName:       "Asha Patel",
		RestaurantName: "Spice Garden",
		Phone:          "+911234567890",
		Address:        "12 MG Road, Pune",
	}
}

func TestGenerateTenantCode_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^BZU\d{6}$`)
	for i := 0; i < 50; i++ {
		assert.Regexp(t, pattern, GenerateTenantCode())
	}
}

func TestRegister_AssignsCodeAndHashesPassword(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)

	user, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^BZU\d{6}$`), user.UserID)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "sup3rsecret", user.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("sup3rsecret")))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), validRegisterRequest())
	var appErr *apperrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.Code)
}

func TestAuthenticate(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := NewAuthService(repo)

	registered, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "owner@example.com", "sup3rsecret")
		require.NoError(t, err)
		assert.Equal(t, registered.UserID, user.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "owner@example.com", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody@example.com", "sup3rsecret")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}
