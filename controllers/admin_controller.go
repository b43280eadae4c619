package controllers

import (
	"context"
	"net/http"
	"time"

	"storefront-service/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StatsServiceAPI defines the aggregate the admin dashboard reads.
type StatsServiceAPI interface {
	Stats(ctx context.Context) (*models.Stats, error)
}

type AdminController struct {
	service StatsServiceAPI
	version string
}

func NewAdminController(s StatsServiceAPI, version string) *AdminController {
	return &AdminController{service: s, version: version}
}

func (ctrl *AdminController) GetStats(c *gin.Context) {
	stats, err := ctrl.service.Stats(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (ctrl *AdminController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   ctrl.version,
	})
}
