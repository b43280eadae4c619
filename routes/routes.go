package routes

import (
	"path/filepath"

	"storefront-service/controllers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the API under /api and the static front-end
// pages. Any route nothing else claims falls back to the storefront
// entry document, single-page-app style.
func RegisterRoutes(
	r *gin.Engine,
	staticDir string,
	product *controllers.ProductController,
	category *controllers.CategoryController,
	order *controllers.OrderController,
	auth *controllers.AuthController,
	admin *controllers.AdminController,
) {
	api := r.Group("/api")
	{
		api.POST("/auth", auth.Authenticate)

		api.GET("/products", product.GetProducts)
		api.POST("/products", product.CreateProduct)
		api.PUT("/products/:id", product.UpdateProduct)
		api.DELETE("/products/:id", product.DeleteProduct)

		api.GET("/categories", category.GetCategories)
		api.POST("/categories", category.CreateCategory)
		api.PUT("/categories/:id", category.UpdateCategory)
		api.DELETE("/categories/:id", category.DeleteCategory)

		api.GET("/orders", order.GetOrders)
		api.POST("/orders", order.CreateOrder)

		api.GET("/admin/stats", admin.GetStats)
		api.GET("/health", admin.Health)
	}

	index := filepath.Join(staticDir, "index.html")
	r.GET("/", func(c *gin.Context) { c.File(index) })
	r.GET("/admin", func(c *gin.Context) { c.File(filepath.Join(staticDir, "admin.html")) })
	r.StaticFile("/style.css", filepath.Join(staticDir, "style.css"))
	r.StaticFile("/script.js", filepath.Join(staticDir, "script.js"))
	r.StaticFile("/admin.js", filepath.Join(staticDir, "admin.js"))

	r.NoRoute(func(c *gin.Context) { c.File(index) })
}
