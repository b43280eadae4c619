package services

import (
	"context"
	"strconv"
	"time"

	"storefront-service/models"
	"storefront-service/repository"

	"go.uber.org/zap"
)

// OrderCreateRequest is the checkout payload built by the storefront
// from its in-memory cart. Line items embed product snapshots.
type OrderCreateRequest struct {
	Products  []models.OrderItem `json:"products" validate:"required,min=1"`
	Total     int64              `json:"total" validate:"gte=0"`
	User      models.OrderUser   `json:"user"`
	Timestamp time.Time          `json:"timestamp"`
}

type OrderService struct {
	store *repository.Store
}

func NewOrderService(store *repository.Store) *OrderService {
	return &OrderService{store: store}
}

func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.store.Orders()
}

// CreateOrder appends a new order. Status is always forced to pending;
// nothing in the API ever moves an order past that.
func (s *OrderService) CreateOrder(ctx context.Context, req OrderCreateRequest) (*models.Order, error) {
	orders, err := s.store.Orders()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	order := models.Order{
		ID:        "ORDER-" + strconv.FormatInt(time.Now().UnixMilli(), 10),
		Products:  req.Products,
		Total:     req.Total,
		User:      req.User,
		Status:    models.OrderStatusPending,
		Timestamp: req.Timestamp,
		CreatedAt: now,
		UpdatedAt: now,
	}

	orders = append(orders, order)
	if err := s.store.SaveOrders(orders); err != nil {
		return nil, err
	}

	zap.L().Info("New order created", zap.String("order_id", order.ID), zap.Int64("total", order.Total))
	return &order, nil
}
