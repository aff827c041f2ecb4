package services

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
)

// TaxRate is the fixed tax applied to every order's subtotal.
const TaxRate = 0.10

// LineItemRequest is one requested order line.
type LineItemRequest struct {
	MenuItemID string  `json:"menu_item_id" binding:"required"`
	Name       string  `json:"name" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required"`
	Price      float64 `json:"price" binding:"required"`
}

// CreateOrderRequest carries a new order.
type CreateOrderRequest struct {
	Items         []LineItemRequest    `json:"items" binding:"required"`
	CustomerName  string               `json:"customer_name"`
	CustomerPhone string               `json:"customer_phone"`
	TableNumber   string               `json:"table_number"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	Notes         string               `json:"notes"`
}

// UpdateOrderRequest is a partial patch; only set fields change. Financial
// fields are not reachable through updates.
type UpdateOrderRequest struct {
	TableNumber   *string               `json:"table_number"`
	Status        *models.OrderStatus   `json:"status"`
	PaymentStatus *models.PaymentStatus `json:"payment_status"`
	PaymentMethod *models.PaymentMethod `json:"payment_method"`
	Notes         *string               `json:"notes"`
}

type OrderService struct {
	orders repository.OrderRepo
}

func NewOrderService(orders repository.OrderRepo) *OrderService {
	return &OrderService{orders: orders}
}

// roundCurrency rounds to 2 decimal places.
func roundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// generateOrderNumber builds {UTC date as YYYYMMDD}-{4-digit suffix}.
// Uniqueness is best-effort; the unique order_number index is the backstop.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("%s-%04d", now.UTC().Format("20060102"), rand.Intn(10000))
}

// CreateOrder computes the order financials, assigns identifiers and persists
// the order. Total == Subtotal + Tax - Discount holds for every created order.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, req *CreateOrderRequest) (*models.Order, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewValidation("Order must have at least one item", nil)
	}

	items := make([]models.LineItem, 0, len(req.Items))
	subtotal := 0.0
	for i, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, apperrors.NewValidation("Quantity must be positive",
				fmt.Sprintf("items[%d].quantity", i))
		}
		if item.Price <= 0 {
			return nil, apperrors.NewValidation("Price must be positive",
				fmt.Sprintf("items[%d].price", i))
		}

		lineSubtotal := item.Price * float64(item.Quantity)
		items = append(items, models.LineItem{
			MenuItemID: item.MenuItemID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Subtotal:   lineSubtotal,
		})
		subtotal += lineSubtotal
	}

	tax := roundCurrency(subtotal * TaxRate)
	discount := 0.0
	total := subtotal + tax - discount

	paymentMethod := req.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = models.MethodCash
	}
	if !paymentMethod.IsValid() {
		return nil, apperrors.NewValidation("Invalid payment method", string(paymentMethod))
	}

	now := time.Now().UTC()
	order := &models.Order{
		UserID:        userID,
		OrderNumber:   generateOrderNumber(now),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		TableNumber:   req.TableNumber,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           tax,
		Discount:      discount,
		Total:         total,
		Status:        models.StatusPending,
		PaymentStatus: models.PaymentPending,
		PaymentMethod: paymentMethod,
		Notes:         req.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return s.orders.Insert(ctx, order)
}

// GetOrder fetches an order scoped to the tenant. An order owned by a
// different tenant is indistinguishable from a missing one.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	return s.orders.FindByID(ctx, userID, orderID)
}

// ListOrders returns the tenant's orders matching all supplied filters,
// sorted by creation time descending.
func (s *OrderService) ListOrders(ctx context.Context, userID string, filters repository.OrderFilters) ([]models.Order, error) {
	if filters.Status != "" && !filters.Status.IsValid() {
		return nil, apperrors.NewValidation("Invalid order status", string(filters.Status))
	}
	return s.orders.Find(ctx, userID, filters)
}

// UpdateOrder applies a partial patch to an order. Only the supplied fields
// change; updated_at is refreshed by the repository.
func (s *OrderService) UpdateOrder(ctx context.Context, userID, orderID string, req *UpdateOrderRequest) (*models.Order, error) {
	updates := map[string]interface{}{}
	if req.TableNumber != nil {
		updates["table_number"] = *req.TableNumber
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, apperrors.NewValidation("Invalid order status", string(*req.Status))
		}
		updates["status"] = *req.Status
	}
	if req.PaymentStatus != nil {
		if !req.PaymentStatus.IsValid() {
			return nil, apperrors.NewValidation("Invalid payment status", string(*req.PaymentStatus))
		}
		updates["payment_status"] = *req.PaymentStatus
	}
	if req.PaymentMethod != nil {
		if !req.PaymentMethod.IsValid() {
			return nil, apperrors.NewValidation("Invalid payment method", string(*req.PaymentMethod))
		}
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}

	return s.orders.Update(ctx, userID, orderID, updates)
}

// DeleteOrder hard-deletes an order scoped to the tenant, reporting whether a
// document was removed.
func (s *OrderService) DeleteOrder(ctx context.Context, userID, orderID string) (bool, error) {
	deleted, err := s.orders.Delete(ctx, userID, orderID)
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}
