package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/dhruvahir777/billoza-backend/errors"
	"github.com/dhruvahir777/billoza-backend/models"
	"github.com/dhruvahir777/billoza-backend/repository"
	"github.com/dhruvahir777/billoza-backend/services"
)

type OrderController struct {
	orders OrderManager
}

func NewOrderController(orders OrderManager) *OrderController {
	return &OrderController{orders: orders}
}

// CreateOrder handles order creation for the tenant in the path.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := oc.orders.CreateOrder(c.Request.Context(), c.Param("user_id"), &req)
	if err != nil {
		respondServiceError(c, err, "Order")
		return
	}
	c.JSON(http.StatusCreated, order)
}

// ListOrders returns the tenant's orders, optionally filtered by status and
// an inclusive date window.
func (oc *OrderController) ListOrders(c *gin.Context) {
	filters := repository.OrderFilters{
		Status: models.OrderStatus(c.Query("status")),
	}

	dateFrom, err := parseDateQuery(c, "start_date")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	dateTo, err := parseDateQuery(c, "end_date")
	if err != nil {
		apperrors.Respond(c, err)
		return
	}
	filters.DateFrom = dateFrom
	filters.DateTo = dateTo

	orders, err := oc.orders.ListOrders(c.Request.Context(), c.Param("user_id"), filters)
	if err != nil {
		respondServiceError(c, err, "Order")
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (oc *OrderController) GetOrder(c *gin.Context) {
	order, err := oc.orders.GetOrder(c.Request.Context(), c.Param("user_id"), c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err, "Order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var req services.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	order, err := oc.orders.UpdateOrder(c.Request.Context(), c.Param("user_id"), c.Param("order_id"), &req)
	if err != nil {
		respondServiceError(c, err, "Order")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) DeleteOrder(c *gin.Context) {
	deleted, err := oc.orders.DeleteOrder(c.Request.Context(), c.Param("user_id"), c.Param("order_id"))
	if err != nil {
		respondServiceError(c, err, "Order")
		return
	}
	if !deleted {
		apperrors.Respond(c, apperrors.NotFound("Order"))
		return
	}
	c.Status(http.StatusNoContent)
}
