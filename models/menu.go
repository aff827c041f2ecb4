package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FoodCategory classifies a menu item.
type FoodCategory string

const (
	CategoryAppetizer FoodCategory = "appetizer"
	CategoryMain      FoodCategory = "main"
	CategoryDessert   FoodCategory = "dessert"
	CategoryBeverage  FoodCategory = "beverage"
	CategorySide      FoodCategory = "side"
	CategoryDrink     FoodCategory = "drink"
)

func (c FoodCategory) IsValid() bool {
	switch c {
	case CategoryAppetizer, CategoryMain, CategoryDessert, CategoryBeverage, CategorySide, CategoryDrink:
		return true
	}
	return false
}

// MenuItem belongs to exactly one tenant (UserID). Deleting an item removes
// its stored image but never touches line items frozen into past orders.
type MenuItem struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID       string             `json:"user_id" bson:"user_id"`
	Name         string             `json:"name" bson:"name"`
	Price        float64            `json:"price" bson:"price"`
	Description  string             `json:"description" bson:"description"`
	Category     FoodCategory       `json:"category" bson:"category"`
	Image        string             `json:"image,omitempty" bson:"image,omitempty"`
	IsVegetarian bool               `json:"is_vegetarian" bson:"is_vegetarian"`
	IsAvailable  bool               `json:"is_available" bson:"is_available"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}
