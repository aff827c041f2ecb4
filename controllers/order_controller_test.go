package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
	"github.com/dhruvahir777/billoza-backend/services"
)

type stubOrderManager struct {
	order     *models.Order
	orders    []models.Order
	err       error
	deleted   bool
	gotFilter repository.OrderFilters
}

func (s *stubOrderManager) CreateOrder(ctx context.Context, userID string, req *services.CreateOrderRequest) (*models.Order, error) {
	return s.order, s.err
}

func (s *stubOrderManager) GetOrder(ctx context.Context, userID, orderID string) (*models.Order, error) {
	return s.order, s.err
}

func (s *stubOrderManager) ListOrders(ctx context.Context, userID string, filters repository.OrderFilters) ([]models.Order, error) {
	s.gotFilter = filters
	return s.orders, s.err
}

func (s *stubOrderManager) UpdateOrder(ctx context.Context, userID, orderID string, req *services.UpdateOrderRequest) (*models.Order, error) {
	return s.order, s.err
}

func (s *stubOrderManager) DeleteOrder(ctx context.Context, userID, orderID string) (bool, error) {
	return s.deleted, s.err
}

func orderTestRouter(mgr OrderManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	oc := NewOrderController(mgr)
	router := gin.New()
	group := router.Group("/users/:user_id/orders")
	group.POST("", oc.CreateOrder)
	group.GET("", oc.ListOrders)
	group.GET("/:order_id", oc.GetOrder)
	group.PUT("/:order_id", oc.UpdateOrder)
	group.DELETE("/:order_id", oc.DeleteOrder)
	return router
}

func sampleOrder() *models.Order {
	return &models.Order{
		ID:          primitive.NewObjectID(),
		UserID:      "BZU123456",
		OrderNumber: "20240102-0042",
		Items:       []models.LineItem{{MenuItemID: "m1", Name: "Chai", Quantity: 1, Price: 1.50, Subtotal: 1.50}},
		Subtotal:    1.50,
		Tax:         0.15,
		Total:       1.65,
		Status:      models.StatusPending,
	}
}

func TestCreateOrderHandler_Created(t *testing.T) {
	router := orderTestRouter(&stubOrderManager{order: sampleOrder()})

	body := `{"items":[{"menu_item_id":"m1","name":"Chai","quantity":1,"price":1.5}]}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/BZU123456/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "20240102-0042")
}

func TestCreateOrderHandler_MissingItems(t *testing.T) {
	router := orderTestRouter(&stubOrderManager{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/users/BZU123456/orders", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Items")
}

func TestGetOrderHandler_NotFound(t *testing.T) {
	router := orderTestRouter(&stubOrderManager{err: repository.ErrNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/BZU123456/orders/"+primitive.NewObjectID().Hex(), nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Order not found")
}

func TestListOrdersHandler_ParsesFilters(t *testing.T) {
	mgr := &stubOrderManager{orders: []models.Order{*sampleOrder()}}
	router := orderTestRouter(mgr)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/users/BZU123456/orders?status=pending&start_date=2024-01-01&end_date=2024-01-31", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, models.StatusPending, mgr.gotFilter.Status)
	if assert.NotNil(t, mgr.gotFilter.DateFrom) {
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *mgr.gotFilter.DateFrom)
	}
	if assert.NotNil(t, mgr.gotFilter.DateTo) {
		assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), *mgr.gotFilter.DateTo)
	}
}

func TestListOrdersHandler_BadDate(t *testing.T) {
	router := orderTestRouter(&stubOrderManager{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/BZU123456/orders?start_date=01-01-2024", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteOrderHandler(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		router := orderTestRouter(&stubOrderManager{deleted: true})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/users/BZU123456/orders/"+primitive.NewObjectID().Hex(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("missing", func(t *testing.T) {
		router := orderTestRouter(&stubOrderManager{deleted: false})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/users/BZU123456/orders/"+primitive.NewObjectID().Hex(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
