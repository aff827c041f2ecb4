package services

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
)

type fakeMenuRepo struct {
	items []models.MenuItem
}

func (f *fakeMenuRepo) FindAll(ctx context.Context, userID string) ([]models.MenuItem, error) {
	matched := []models.MenuItem{}
	for _, item := range f.items {
		if item.UserID == userID {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

func (f *fakeMenuRepo) FindByID(ctx context.Context, userID, itemID string) (*models.MenuItem, error) {
	for i := range f.items {
		if f.items[i].ID.Hex() == itemID && f.items[i].UserID == userID {
			item := f.items[i]
			return &item, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMenuRepo) Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	item.ID = primitive.NewObjectID()
	f.items = append(f.items, *item)
	return item, nil
}

func (f *fakeMenuRepo) Update(ctx context.Context, userID, itemID string, updates map[string]interface{}) (*models.MenuItem, error) {
	for i := range f.items {
		if f.items[i].ID.Hex() != itemID || f.items[i].UserID != userID {
			continue
		}
		for field, value := range updates {
			switch field {
			case "name":
				f.items[i].Name = value.(string)
			case "price":
				f.items[i].Price = value.(float64)
			case "description":
				f.items[i].Description = value.(string)
			case "category":
				f.items[i].Category = value.(models.FoodCategory)
			case "is_vegetarian":
				f.items[i].IsVegetarian = value.(bool)
			case "is_available":
				f.items[i].IsAvailable = value.(bool)
			case "image":
				f.items[i].Image = value.(string)
			}
		}
		item := f.items[i]
		return &item, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeMenuRepo) Delete(ctx context.Context, userID, itemID string) (int64, error) {
	for i := range f.items {
		if f.items[i].ID.Hex() == itemID && f.items[i].UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeStorage struct {
	saved   []string
	deleted []string
}

func (f *fakeStorage) Save(ctx context.Context, file *multipart.FileHeader, folder string) (string, error) {
	ref := folder + "/" + file.Filename
	f.saved = append(f.saved, ref)
	return ref, nil
}

func (f *fakeStorage) Delete(ctx context.Context, ref string) error {
	f.deleted = append(f.deleted, ref)
	return nil
}

func newTestMenuService(repo *fakeMenuRepo, store *fakeStorage) *MenuService {
	return NewMenuService(repo, store, nil)
}

func TestCreateMenuItem_RoundTrip(t *testing.T) {
	svc := newTestMenuService(&fakeMenuRepo{}, &fakeStorage{})

	created, err := svc.CreateMenuItem(context.Background(), "BZU111111", &CreateMenuItemRequest{
		Name:         "Paneer Tikka",
		Price:        8.50,
		Description:  "Char-grilled cottage cheese",
		Category:     models.CategoryAppetizer,
		IsVegetarian: true,
	})
	require.NoError(t, err)
	assert.True(t, created.IsAvailable) // defaults to available

	got, err := svc.GetMenuItem(context.Background(), "BZU111111", created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Price, got.Price)
	assert.Equal(t, created.Category, got.Category)
	assert.True(t, got.IsVegetarian)
}

func TestCreateMenuItem_InvalidCategory(t *testing.T) {
	svc := newTestMenuService(&fakeMenuRepo{}, &fakeStorage{})

	_, err := svc.CreateMenuItem(context.Background(), "BZU111111", &CreateMenuItemRequest{
		Name:        "Mystery Dish",
		Price:       5.00,
		Description: "?",
		Category:    "molecular",
	})
	assert.Error(t, err)
}

func TestMenuTenantIsolation(t *testing.T) {
	repo := &fakeMenuRepo{}
	svc := newTestMenuService(repo, &fakeStorage{})

	created, err := svc.CreateMenuItem(context.Background(), "BZU111111", &CreateMenuItemRequest{
		Name:        "Dal Makhani",
		Price:       6.00,
		Description: "Slow-cooked lentils",
		Category:    models.CategoryMain,
	})
	require.NoError(t, err)

	_, err = svc.GetMenuItem(context.Background(), "BZU222222", created.ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	items, err := svc.ListMenuItems(context.Background(), "BZU222222")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestUpdateMenuItem_PartialPatch(t *testing.T) {
	svc := newTestMenuService(&fakeMenuRepo{}, &fakeStorage{})

	created, err := svc.CreateMenuItem(context.Background(), "BZU111111", &CreateMenuItemRequest{
		Name:        "Masala Chai",
		Price:       1.50,
		Description: "Spiced tea",
		Category:    models.CategoryBeverage,
	})
	require.NoError(t, err)

	price := 2.00
	updated, err := svc.UpdateMenuItem(context.Background(), "BZU111111", created.ID.Hex(), &UpdateMenuItemRequest{
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.00, updated.Price)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Category, updated.Category)

	bad := -1.0
	_, err = svc.UpdateMenuItem(context.Background(), "BZU111111", created.ID.Hex(), &UpdateMenuItemRequest{
		Price: &bad,
	})
	assert.Error(t, err)
}

func TestDeleteMenuItem_RemovesStoredImage(t *testing.T) {
	repo := &fakeMenuRepo{}
	store := &fakeStorage{}
	svc := newTestMenuService(repo, store)

	created, err := svc.CreateMenuItem(context.Background(), "BZU111111", &CreateMenuItemRequest{
		Name:        "Gulab Jamun",
		Price:       3.00,
		Description: "Syrup-soaked dumplings",
		Category:    models.CategoryDessert,
	})
	require.NoError(t, err)

	_, err = repo.Update(context.Background(), "BZU111111", created.ID.Hex(),
		map[string]interface{}{"image": "menu/abc.jpg"})
	require.NoError(t, err)

	deleted, err := svc.DeleteMenuItem(context.Background(), "BZU111111", created.ID.Hex())
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"menu/abc.jpg"}, store.deleted)

	_, err = svc.GetMenuItem(context.Background(), "BZU111111", created.ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
