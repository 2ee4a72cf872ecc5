package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	brandControllers "github.com/perfumeaz/perfume-api/controllers/brand"
	categoryControllers "github.com/perfumeaz/perfume-api/controllers/category"
	orderControllers "github.com/perfumeaz/perfume-api/controllers/order"
	perfumeControllers "github.com/perfumeaz/perfume-api/controllers/perfume"
	userControllers "github.com/perfumeaz/perfume-api/controllers/user"
	"github.com/perfumeaz/perfume-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a JWT
// carrying the admin role.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin)
	{
		// ──────────────── Users ────────────────
		adminGroup.GET("/users", userControllers.GetAllUsers(db))

		// ──────────────── Orders ────────────────
		adminGroup.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		adminGroup.PUT("/orders/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		adminGroup.GET("/orders/top-customers", orderControllers.TopCustomersHandler(db))

		// ──────────────── Catalog ────────────────
		adminGroup.POST("/perfumes", perfumeControllers.CreatePerfume(db))
		adminGroup.PUT("/perfumes/:id", perfumeControllers.UpdatePerfume(db))
		adminGroup.PUT("/perfumes/:id/stock", perfumeControllers.UpdateStock(db))
		adminGroup.DELETE("/perfumes/:id", perfumeControllers.DeletePerfume(db))
		adminGroup.GET("/perfumes/export", perfumeControllers.ExportPerfumesToExcel(db))

		adminGroup.POST("/brands", brandControllers.CreateBrand(db))
		adminGroup.PUT("/brands/:id", brandControllers.UpdateBrand(db))
		adminGroup.DELETE("/brands/:id", brandControllers.DeleteBrand(db))

		adminGroup.POST("/categories", categoryControllers.CreateCategory(db))
		adminGroup.PUT("/categories/:id", categoryControllers.UpdateCategory(db))
		adminGroup.DELETE("/categories/:id", categoryControllers.DeleteCategory(db))
	}
}
