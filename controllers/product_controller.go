package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"storefront-service/models"
	"storefront-service/services"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var validate = validator.New()

// ProductServiceAPI defines the product operations the controller needs.
type ProductServiceAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req services.ProductCreateRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int64, req services.ProductUpdateRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type ProductController struct {
	service ProductServiceAPI
}

func NewProductController(s ProductServiceAPI) *ProductController {
	return &ProductController{service: s}
}

func (ctrl *ProductController) GetProducts(c *gin.Context) {
	products, err := ctrl.service.ListProducts(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to list products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

func (ctrl *ProductController) CreateProduct(c *gin.Context) {
	var req services.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	product, err := ctrl.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		zap.L().Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (ctrl *ProductController) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		// A non-numeric id can never match a stored product.
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	var req services.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	product, err := ctrl.service.UpdateProduct(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		zap.L().Error("Failed to update product", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

func (ctrl *ProductController) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if err := ctrl.service.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		zap.L().Error("Failed to delete product", zap.Error(err), zap.Int64("id", id))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
