package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"storefront-service/models"
	"storefront-service/repository"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CategoryCreateRequest carries the admin form fields for a new category.
// The id is derived from the name, never supplied by the client.
type CategoryCreateRequest struct {
	Name string `json:"name" validate:"required"`
	Icon string `json:"icon"`
}

// CategoryUpdateRequest is a partial update; the id itself is immutable.
type CategoryUpdateRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

type CategoryService struct {
	store *repository.Store
}

func NewCategoryService(store *repository.Store) *CategoryService {
	return &CategoryService{store: store}
}

// Slug lowercases a display name and collapses whitespace runs into
// single hyphens. Collisions are not checked.
func Slug(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.store.Categories()
}

func (s *CategoryService) CreateCategory(ctx context.Context, req CategoryCreateRequest) (*models.Category, error) {
	categories, err := s.store.Categories()
	if err != nil {
		return nil, err
	}

	category := models.Category{
		ID:        Slug(req.Name),
		Name:      req.Name,
		Icon:      req.Icon,
		CreatedAt: time.Now().UTC(),
	}

	categories = append(categories, category)
	if err := s.store.SaveCategories(categories); err != nil {
		return nil, err
	}
	return &category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req CategoryUpdateRequest) (*models.Category, error) {
	categories, err := s.store.Categories()
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range categories {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, ErrNotFound
	}

	c := &categories[idx]
	if req.Name != nil {
		c.Name = *req.Name
	}
	if req.Icon != nil {
		c.Icon = *req.Icon
	}

	if err := s.store.SaveCategories(categories); err != nil {
		return nil, err
	}
	updated := *c
	return &updated, nil
}

// DeleteCategory removes a category by id. Dependent products are not
// checked here; the admin client guards against orphaning before it
// calls the API.
func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	categories, err := s.store.Categories()
	if err != nil {
		return err
	}

	remaining := categories[:0:0]
	for _, c := range categories {
		if c.ID != id {
			remaining = append(remaining, c)
		}
	}
	if len(remaining) == len(categories) {
		return ErrNotFound
	}
	return s.store.SaveCategories(remaining)
}
