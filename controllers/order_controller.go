package controllers

import (
	"context"
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderServiceAPI defines the order operations the controller needs.
// There is deliberately no update or delete: orders are append-only.
type OrderServiceAPI interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, req services.OrderCreateRequest) (*models.Order, error)
}

type OrderController struct {
	service OrderServiceAPI
}

func NewOrderController(s OrderServiceAPI) *OrderController {
	return &OrderController{service: s}
}

func (ctrl *OrderController) GetOrders(c *gin.Context) {
	orders, err := ctrl.service.ListOrders(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (ctrl *OrderController) CreateOrder(c *gin.Context) {
	var req services.OrderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	order, err := ctrl.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		zap.L().Error("Failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"orderId": order.ID,
		"message": "Order created successfully",
	})
}
