package services

import (
	"context"
	"mime/multipart"
	"time"

	"go.uber.org/zap"

	"github.com/dhruvahir777/billoza-backend/cache"
	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
	"github.com/dhruvahir777/billoza-backend/storage"
)

// CreateMenuItemRequest carries a new menu item.
type CreateMenuItemRequest struct {
	Name         string              `json:"name" binding:"required"`
	Price        float64             `json:"price" binding:"required,gt=0"`
	Description  string              `json:"description" binding:"required"`
	Category     models.FoodCategory `json:"category" binding:"required"`
	IsVegetarian bool                `json:"is_vegetarian"`
	IsAvailable  *bool               `json:"is_available"`
}

// UpdateMenuItemRequest is a partial patch; only set fields change.
type UpdateMenuItemRequest struct {
	Name         *string              `json:"name"`
	Price        *float64             `json:"price"`
	Description  *string              `json:"description"`
	Category     *models.FoodCategory `json:"category"`
	IsVegetarian *bool                `json:"is_vegetarian"`
	IsAvailable  *bool                `json:"is_available"`
}

type MenuService struct {
	menu    repository.MenuRepo
	storage storage.Storage
	cache   *cache.MenuCache
}

func NewMenuService(menu repository.MenuRepo, store storage.Storage, menuCache *cache.MenuCache) *MenuService {
	return &MenuService{
		menu:    menu,
		storage: store,
		cache:   menuCache,
	}
}

// ListMenuItems returns the tenant's full catalog.
func (s *MenuService) ListMenuItems(ctx context.Context, userID string) ([]models.MenuItem, error) {
	if items, ok := s.cache.GetList(ctx, userID); ok {
		return items, nil
	}

	items, err := s.menu.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.SetListAsync(userID, items)
	return items, nil
}

func (s *MenuService) GetMenuItem(ctx context.Context, userID, itemID string) (*models.MenuItem, error) {
	return s.menu.FindByID(ctx, userID, itemID)
}

func (s *MenuService) CreateMenuItem(ctx context.Context, userID string, req *CreateMenuItemRequest) (*models.MenuItem, error) {
	if !req.Category.IsValid() {
		return nil, apperrors.NewValidation("Invalid food category", string(req.Category))
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}

	now := time.Now().UTC()
	item := &models.MenuItem{
		UserID:       userID,
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		Category:     req.Category,
		IsVegetarian: req.IsVegetarian,
		IsAvailable:  available,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.menu.Insert(ctx, item)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, userID)
	return created, nil
}

func (s *MenuService) UpdateMenuItem(ctx context.Context, userID, itemID string, req *UpdateMenuItemRequest) (*models.MenuItem, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, apperrors.NewValidation("Price must be positive", "price")
		}
		updates["price"] = *req.Price
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		if !req.Category.IsValid() {
			return nil, apperrors.NewValidation("Invalid food category", string(*req.Category))
		}
		updates["category"] = *req.Category
	}
	if req.IsVegetarian != nil {
		updates["is_vegetarian"] = *req.IsVegetarian
	}
	if req.IsAvailable != nil {
		updates["is_available"] = *req.IsAvailable
	}

	updated, err := s.menu.Update(ctx, userID, itemID, updates)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, userID)
	return updated, nil
}

// DeleteMenuItem removes the item and its stored image. Line items frozen
// into past orders are unaffected.
func (s *MenuService) DeleteMenuItem(ctx context.Context, userID, itemID string) (bool, error) {
	item, err := s.menu.FindByID(ctx, userID, itemID)
	if err != nil {
		return false, err
	}

	if item.Image != "" {
		if err := s.storage.Delete(ctx, item.Image); err != nil {
			zap.L().Warn("Failed to delete menu item image", zap.String("ref", item.Image), zap.Error(err))
		}
	}

	deleted, err := s.menu.Delete(ctx, userID, itemID)
	if err != nil {
		return false, err
	}
	s.cache.Invalidate(ctx, userID)
	return deleted > 0, nil
}

// UpdateMenuItemImage replaces the item's stored image.
func (s *MenuService) UpdateMenuItemImage(ctx context.Context, userID, itemID string, file *multipart.FileHeader) (*models.MenuItem, error) {
	item, err := s.menu.FindByID(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	if item.Image != "" {
		if err := s.storage.Delete(ctx, item.Image); err != nil {
			zap.L().Warn("Failed to delete old menu item image", zap.String("ref", item.Image), zap.Error(err))
		}
	}

	ref, err := s.storage.Save(ctx, file, "menu")
	if err != nil {
		return nil, err
	}

	updated, err := s.menu.Update(ctx, userID, itemID, map[string]interface{}{"image": ref})
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, userID)
	return updated, nil
}
