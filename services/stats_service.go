package services

import (
	"context"

	"storefront-service/models"
	"storefront-service/repository"
)

// StatsService computes the admin dashboard aggregate. Nothing is
// cached; every call rescans the collections.
type StatsService struct {
	store *repository.Store
}

func NewStatsService(store *repository.Store) *StatsService {
	return &StatsService{store: store}
}

func (s *StatsService) Stats(ctx context.Context) (*models.Stats, error) {
	products, err := s.store.Products()
	if err != nil {
		return nil, err
	}
	orders, err := s.store.Orders()
	if err != nil {
		return nil, err
	}
	// Users are counted from order snapshots, so the users collection
	// itself is not consulted.

	var revenue int64
	buyers := make(map[int64]bool)
	for _, o := range orders {
		revenue += o.Total
		buyers[o.User.ID] = true
	}

	return &models.Stats{
		TotalProducts: len(products),
		TotalOrders:   len(orders),
		TotalRevenue:  revenue,
		TotalUsers:    len(buyers),
	}, nil
}
