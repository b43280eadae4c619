package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"storefront-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOrder(t *testing.T) {
	store := newSeededStore(t)
	svc := NewOrderService(store)
	ctx := context.Background()

	order, err := svc.CreateOrder(ctx, OrderCreateRequest{
		Products: []models.OrderItem{{
			Product:  models.Product{ID: 3, Name: "AirPods Pro", Price: 24990},
			Quantity: 1,
		}},
		Total:     24990,
		User:      models.OrderUser{ID: 123456789, FirstName: "Тестовый", Username: "test_user"},
		Timestamp: time.Now().UTC(),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.ID, "ORDER-"), "order id starts with ORDER-")
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.True(t, order.CreatedAt.Equal(order.UpdatedAt))

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Equal(t, models.OrderStatusPending, orders[0].Status)
}

func TestCreateOrderForcesPendingStatus(t *testing.T) {
	store := newSeededStore(t)
	svc := NewOrderService(store)

	// The request shape has no status field at all; whatever the client
	// sends, the stored order is pending.
	order, err := svc.CreateOrder(context.Background(), OrderCreateRequest{
		Products: []models.OrderItem{{Product: models.Product{ID: 1}, Quantity: 2}},
		Total:    199980,
		User:     models.OrderUser{ID: 42},
	})
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
}

func TestOrdersAreAppendOnly(t *testing.T) {
	store := newSeededStore(t)
	svc := NewOrderService(store)
	ctx := context.Background()

	first, err := svc.CreateOrder(ctx, OrderCreateRequest{
		Products: []models.OrderItem{{Product: models.Product{ID: 1}, Quantity: 1}},
		Total:    99990,
		User:     models.OrderUser{ID: 1},
	})
	require.NoError(t, err)

	second, err := svc.CreateOrder(ctx, OrderCreateRequest{
		Products: []models.OrderItem{{Product: models.Product{ID: 2}, Quantity: 1}},
		Total:    129990,
		User:     models.OrderUser{ID: 2},
	})
	require.NoError(t, err)

	orders, err := svc.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, first.ID, orders[0].ID, "orders keep insertion order")
	assert.Equal(t, second.ID, orders[1].ID)
}
