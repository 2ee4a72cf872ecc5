package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/perfumeaz/perfume-api/controllers/order"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public catalog reads
	SetupCatalogRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Admin routes (JWT + role)
	SetupAdminRoutes(r, db)

	// websocket endpoint for real-time order updates
	r.GET("/ws/orders", orderControllers.OrderWebSocketHandler)
}
