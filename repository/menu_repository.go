package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dhruvahir777/billoza-backend/models"
)

type MenuRepository struct {
	collection *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{
		collection: db.Collection("menu_items"),
	}
}

func (r *MenuRepository) FindAll(ctx context.Context, userID string) ([]models.MenuItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, userID, itemID string) (*models.MenuItem, error) {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrNotFound
	}

	var item models.MenuItem
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID, "user_id": userID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item *models.MenuItem) (*models.MenuItem, error) {
	result, err := r.collection.InsertOne(ctx, item)
	if err != nil {
		return nil, err
	}
	item.ID = result.InsertedID.(primitive.ObjectID)
	return item, nil
}

func (r *MenuRepository) Update(ctx context.Context, userID, itemID string, updates map[string]interface{}) (*models.MenuItem, error) {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, ErrNotFound
	}

	updates["updated_at"] = time.Now().UTC()
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": objectID, "user_id": userID},
		bson.M{"$set": bson.M(updates)},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(ctx, userID, itemID)
}

func (r *MenuRepository) Delete(ctx context.Context, userID, itemID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return 0, ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}
