package services

import (
	"context"
	"time"

	"storefront-service/models"
	"storefront-service/repository"
)

// ProductCreateRequest carries the admin form fields for a new product.
type ProductCreateRequest struct {
	Name        string `json:"name" validate:"required"`
	Price       int64  `json:"price" validate:"gte=0"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category" validate:"required"`
	InStock     *bool  `json:"inStock"`
}

// ProductUpdateRequest is a partial update: nil fields keep the stored
// value, mirroring a shallow merge over the existing record.
type ProductUpdateRequest struct {
	Name        *string `json:"name"`
	Price       *int64  `json:"price" validate:"omitempty,gte=0"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	InStock     *bool   `json:"inStock"`
}

type ProductService struct {
	store *repository.Store
}

func NewProductService(store *repository.Store) *ProductService {
	return &ProductService{store: store}
}

func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.Products()
}

// CreateProduct assigns a millisecond-clock id, bumping it while it
// collides with an existing product so ids stay unique even for
// creations landing in the same millisecond.
func (s *ProductService) CreateProduct(ctx context.Context, req ProductCreateRequest) (*models.Product, error) {
	products, err := s.store.Products()
	if err != nil {
		return nil, err
	}

	taken := make(map[int64]bool, len(products))
	for _, p := range products {
		taken[p.ID] = true
	}
	id := time.Now().UnixMilli()
	for taken[id] {
		id++
	}

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	now := time.Now().UTC()
	product := models.Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Image:       req.Image,
		Category:    req.Category,
		InStock:     inStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	products = append(products, product)
	if err := s.store.SaveProducts(products); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, req ProductUpdateRequest) (*models.Product, error) {
	products, err := s.store.Products()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, p := range products {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	p := &products[idx]
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.InStock != nil {
		p.InStock = *req.InStock
	}
	p.UpdatedAt = time.Now().UTC()

	if err := s.store.SaveProducts(products); err != nil {
		return nil, err
	}
	updated := *p
	return &updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	products, err := s.store.Products()
	if err != nil {
		return err
	}

	remaining := products[:0:0]
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(products) {
		return ErrNotFound
	}
	return s.store.SaveProducts(remaining)
}
