package repository

import (
	"context"
	"time"

	"github.com/dhruvahir777/billoza-backend/models"
)

// ErrNotFound is returned by repositories when no tenant-scoped document
// matched. A wrong-tenant lookup is indistinguishable from a missing one.
var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "document not found" }

// OrderFilters narrows an order listing. Date bounds are inclusive of the
// full calendar day.
type OrderFilters struct {
	Status   models.OrderStatus
	DateFrom *time.Time
	DateTo   *time.Time
}

// UserRepo defines the persistence operations for users. Interfaces use plain
// Go types so services can be tested against in-memory fakes.
type UserRepo interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*models.User, error)
	EnsureIndexes(ctx context.Context) error
}

// MenuRepo defines the persistence operations for menu items. Every filter is
// scoped to the owning tenant's code.
type MenuRepo interface {
	FindAll(ctx context.Context, userID string) ([]models.MenuItem, error)
	FindByID(ctx context.Context, userID, itemID string) (*models.MenuItem, error)
	Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error)
	Update(ctx context.Context, userID, itemID string, updates map[string]interface{}) (*models.MenuItem, error)
	Delete(ctx context.Context, userID, itemID string) (int64, error)
}

// OrderRepo defines the persistence operations for orders.
type OrderRepo interface {
	Find(ctx context.Context, userID string, filters OrderFilters) ([]models.Order, error)
	FindByDateRange(ctx context.Context, userID string, from, to time.Time) ([]models.Order, error)
	FindByID(ctx context.Context, userID, orderID string) (*models.Order, error)
	Insert(ctx context.Context, order *models.Order) (*models.Order, error)
	Update(ctx context.Context, userID, orderID string, updates map[string]interface{}) (*models.Order, error)
	Delete(ctx context.Context, userID, orderID string) (int64, error)
	EnsureIndexes(ctx context.Context) error
}
