package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dhruvahir777/billoza-backend/models"
)

type OrderRepository struct {
	collection *mongo.Collection
}

func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{
		collection: db.Collection("orders"),
	}
}

// startOfDay and endOfDay give inclusive full-calendar-day bounds in UTC.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, time.UTC)
}

// Find returns a tenant's orders matching all supplied filters, sorted by
// creation time descending.
func (r *OrderRepository) Find(ctx context.Context, userID string, filters OrderFilters) ([]models.Order, error) {
	query := bson.M{"user_id": userID}

	if filters.Status != "" {
		query["status"] = filters.Status
	}
	createdAt := bson.M{}
	if filters.DateFrom != nil {
		createdAt["$gte"] = startOfDay(*filters.DateFrom)
	}
	if filters.DateTo != nil {
		createdAt["$lte"] = endOfDay(*filters.DateTo)
	}
	if len(createdAt) > 0 {
		query["created_at"] = createdAt
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// FindByDateRange returns a tenant's orders created within the inclusive
// full-day window [from, to].
func (r *OrderRepository) FindByDateRange(ctx context.Context, userID string, from, to time.Time) ([]models.Order, error) {
	query := bson.M{
		"user_id": userID,
		"created_at": bson.M{
			"$gte": startOfDay(from),
			"$lte": endOfDay(to),
		},
	}

	cursor, err := r.collection.Find(ctx, query)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepository) FindByID(ctx context.Context, userID, orderID string) (*models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, ErrNotFound
	}

	var order models.Order
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID, "user_id": userID}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) (*models.Order, error) {
	result, err := r.collection.InsertOne(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = result.InsertedID.(primitive.ObjectID)
	return order, nil
}

// Update applies a partial $set scoped to the tenant. Last write wins; there
// is no concurrency token.
func (r *OrderRepository) Update(ctx context.Context, userID, orderID string, updates map[string]interface{}) (*models.Order, error) {
	objectID, err := primitive.ObjectIDFromHex(orderID)
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
	return r.FindByID(ctx, userID, orderID)
}

func (r *OrderRepository) Delete(ctx context.Context, userID, orderID string) (int64, error) {
	objectID, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return 0, ErrNotFound
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID, "user_id": userID})
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

// EnsureIndexes declares the order indexes. The unique order_number index is
// the only uniqueness enforcement for generated order numbers.
func (r *OrderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "order_number", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
	})
	return err
}
