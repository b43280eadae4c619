package controllers

import (
	"context"
	"errors"
	"net/http"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CategoryServiceAPI defines the category operations the controller needs.
type CategoryServiceAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req services.CategoryCreateRequest) (*models.Category, error)
	UpdateCategory(ctx context.Context, id string, req services.CategoryUpdateRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryController struct {
	service CategoryServiceAPI
}

func NewCategoryController(s CategoryServiceAPI) *CategoryController {
	return &CategoryController{service: s}
}

func (ctrl *CategoryController) GetCategories(c *gin.Context) {
	categories, err := ctrl.service.ListCategories(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (ctrl *CategoryController) CreateCategory(c *gin.Context) {
	var req services.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	category, err := ctrl.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		zap.L().Error("Failed to create category", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

func (ctrl *CategoryController) UpdateCategory(c *gin.Context) {
	id := c.Param("id")

	var req services.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	category, err := ctrl.service.UpdateCategory(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		zap.L().Error("Failed to update category", zap.Error(err), zap.String("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

func (ctrl *CategoryController) DeleteCategory(c *gin.Context) {
	id := c.Param("id")

	if err := ctrl.service.DeleteCategory(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		zap.L().Error("Failed to delete category", zap.Error(err), zap.String("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
