package controllers

import (
	"context"
	"net/http"

	"storefront-service/services"

	"github.com/gin-gonic/gin"
)

// AuthServiceAPI defines the identity operation the controller needs.
type AuthServiceAPI interface {
	Authenticate(ctx context.Context, req services.AuthRequest) services.AuthResult
}

type AuthController struct {
	service AuthServiceAPI
}

func NewAuthController(s AuthServiceAPI) *AuthController {
	return &AuthController{service: s}
}

// Authenticate upserts the visitor and reports admin status. A store
// failure still answers 200 with success:false so the storefront keeps
// working without admin privileges.
func (ctrl *AuthController) Authenticate(c *gin.Context) {
	var req services.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": err.Error()})
		return
	}

	result := ctrl.service.Authenticate(c.Request.Context(), req)
	c.JSON(http.StatusOK, result)
}
