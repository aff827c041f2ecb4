package controllers

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
	"github.com/dhruvahir777/billoza-backend/services"
)

// Service interfaces consumed by the controllers; satisfied by the concrete
// services and by fakes in tests.

type AuthManager interface {
	Register(ctx context.Context, req *services.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

type UserManager interface {
	GetProfile(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, req *services.UpdateProfileRequest) (*models.User, error)
	UpdateProfileImage(ctx context.Context, id string, file *multipart.FileHeader) (*models.User, error)
}

type MenuManager interface {
	ListMenuItems(ctx context.Context, userID string) ([]models.MenuItem, error)
	GetMenuItem(ctx context.Context, userID, itemID string) (*models.MenuItem, error)
	CreateMenuItem(ctx context.Context, userID string, req *services.CreateMenuItemRequest) (*models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, userID, itemID string, req *services.UpdateMenuItemRequest) (*models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, userID, itemID string) (bool, error)
	UpdateMenuItemImage(ctx context.Context, userID, itemID string, file *multipart.FileHeader) (*models.MenuItem, error)
}

type OrderManager interface {
	CreateOrder(ctx context.Context, userID string, req *services.CreateOrderRequest) (*models.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error)
	ListOrders(ctx context.Context, userID string, filters repository.OrderFilters) ([]models.Order, error)
	UpdateOrder(ctx context.Context, userID, orderID string, req *services.UpdateOrderRequest) (*models.Order, error)
	DeleteOrder(ctx context.Context, userID, orderID string) (bool, error)
}

type ReportGenerator interface {
	GenerateSalesReport(ctx context.Context, userID string, timeFrame models.TimeFrame, startDate, endDate time.Time) (*models.SalesReport, error)
	GenerateRevenueReport(ctx context.Context, userID string, timeFrame models.TimeFrame, startDate, endDate time.Time) (*models.RevenueReport, error)
}
