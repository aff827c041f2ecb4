package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderStatus is the kitchen lifecycle of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
	StatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks settlement of an order.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// PaymentMethod is how the customer pays.
type PaymentMethod string

const (
	MethodCash   PaymentMethod = "cash"
	MethodCard   PaymentMethod = "card"
	MethodUPI    PaymentMethod = "upi"
	MethodWallet PaymentMethod = "wallet"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodWallet:
		return true
	}
	return false
}

// LineItem is an immutable snapshot of a menu item frozen into an order at
// creation time. Subtotal is always Price * Quantity.
type LineItem struct {
	MenuItemID string  `json:"menu_item_id" bson:"menu_item_id"`
	Name       string  `json:"name" bson:"name"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	Price      float64 `json:"price" bson:"price"`
	Subtotal   float64 `json:"subtotal" bson:"subtotal"`
}

// Order belongs to exactly one tenant (UserID). Financial fields are computed
// once at creation; Total == Subtotal + Tax - Discount.
type Order struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID        string             `json:"user_id" bson:"user_id"`
	OrderNumber   string             `json:"order_number" bson:"order_number"`
	CustomerName  string             `json:"customer_name,omitempty" bson:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	TableNumber   string             `json:"table_number,omitempty" bson:"table_number,omitempty"`
	Items         []LineItem         `json:"items" bson:"items"`
	Subtotal      float64            `json:"subtotal" bson:"subtotal"`
	Tax           float64            `json:"tax" bson:"tax"`
	Discount      float64            `json:"discount" bson:"discount"`
	Total         float64            `json:"total" bson:"total"`
	Status        OrderStatus        `json:"status" bson:"status"`
	PaymentStatus PaymentStatus      `json:"payment_status" bson:"payment_status"`
	PaymentMethod PaymentMethod      `json:"payment_method" bson:"payment_method"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// ItemsSold sums line-item quantities across the order.
func (o *Order) ItemsSold() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}
	return n
}
