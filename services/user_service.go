package services

import (
	"context"
	"mime/multipart"

	"go.uber.org/zap"

	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
	"github.com/dhruvahir777/billoza-backend/storage"
)

// UpdateProfileRequest is a partial profile patch. Email, password and tenant
// code are not mutable through this operation.
type UpdateProfileRequest struct {
	FullName       *string `json:"full_name"`
	RestaurantName *string `json:"restaurant_name"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
}

type UserService struct {
	users   repository.UserRepo
	storage storage.Storage
}

func NewUserService(users repository.UserRepo, store storage.Storage) *UserService {
	return &UserService{
		users:   users,
		storage: store,
	}
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, req *UpdateProfileRequest) (*models.User, error) {
	updates := map[string]interface{}{}
	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.RestaurantName != nil {
		updates["restaurant_name"] = *req.RestaurantName
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	return s.users.Update(ctx, id, updates)
}

// UpdateProfileImage replaces the user's stored profile image.
func (s *UserService) UpdateProfileImage(ctx context.Context, id string, file *multipart.FileHeader) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.ProfileImage != "" {
		if err := s.storage.Delete(ctx, user.ProfileImage); err != nil {
			zap.L().Warn("Failed to delete old profile image", zap.String("ref", user.ProfileImage), zap.Error(err))
		}
	}

	ref, err := s.storage.Save(ctx, file, "profile")
	if err != nil {
		return nil, err
	}

	return s.users.Update(ctx, id, map[string]interface{}{"profile_image": ref})
}
