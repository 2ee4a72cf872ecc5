package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/perfumeaz/perfume-api/controllers/cart"
	favoriteControllers "github.com/perfumeaz/perfume-api/controllers/favorite"
	orderControllers "github.com/perfumeaz/perfume-api/controllers/order"
	userControllers "github.com/perfumeaz/perfume-api/controllers/user"
	"github.com/perfumeaz/perfume-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))
		userGroup.PUT("/password", userControllers.UpdatePassword(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCartHandler(db))
			cartGroup.POST("/", cartControllers.AddItemHandler(db))
			cartGroup.PUT("/:perfume_id", cartControllers.UpdateItemHandler(db))
			cartGroup.DELETE("/:perfume_id", cartControllers.RemoveItemHandler(db))
			cartGroup.DELETE("/", cartControllers.ClearCartHandler(db))
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.CheckoutHandler(db))
		userGroup.GET("/orders", orderControllers.GetUserOrdersHandler(db))
		userGroup.GET("/orders/:id", orderControllers.GetOrderHandler(db))
		userGroup.POST("/orders/:id/cancel", orderControllers.CancelOrderHandler(db))

		// ──────────────── Favorites ────────────────
		favGroup := userGroup.Group("/favorites")
		{
			favGroup.GET("/", favoriteControllers.GetFavoritesHandler(db))
			favGroup.POST("/:perfume_id", favoriteControllers.AddFavoriteHandler(db))
			favGroup.DELETE("/:perfume_id", favoriteControllers.RemoveFavoriteHandler(db))
			favGroup.GET("/:perfume_id/status", favoriteControllers.IsFavoriteHandler(db))
		}
	}
}
