package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a registered restaurant owner. UserID is the human-facing tenant
// code (BZU + 6 digits) used in request paths; ID is the store-assigned id.
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID         string             `json:"user_id" bson:"user_id"`
	Email          string             `json:"email" bson:"email"`
	Password       string             `json:"-" bson:"password"`
	FullName       string             `json:"full_name" bson:"full_name"`
	RestaurantName string             `json:"restaurant_name" bson:"restaurant_name"`
	Phone          string             `json:"phone" bson:"phone"`
	Address        string             `json:"address" bson:"address"`
	ProfileImage   string             `json:"profile_image,omitempty" bson:"profile_image,omitempty"`
	IsActive       bool               `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at" bson:"updated_at"`
}
