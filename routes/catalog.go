package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	brandControllers "github.com/perfumeaz/perfume-api/controllers/brand"
	categoryControllers "github.com/perfumeaz/perfume-api/controllers/category"
	favoriteControllers "github.com/perfumeaz/perfume-api/controllers/favorite"
	perfumeControllers "github.com/perfumeaz/perfume-api/controllers/perfume"
)

// SetupCatalogRoutes registers the public catalog read endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	perfumes := r.Group("/perfumes")
	{
		perfumes.GET("/", perfumeControllers.GetPerfumes(db))
		perfumes.GET("/featured", perfumeControllers.GetFeaturedPerfumes(db))
		perfumes.GET("/bestsellers", perfumeControllers.GetBestsellerPerfumes(db))
		perfumes.GET("/most-favorited", favoriteControllers.MostFavoritedHandler(db))
		perfumes.GET("/:id", perfumeControllers.GetPerfumeByID(db))
		perfumes.GET("/:id/similar", perfumeControllers.GetSimilarPerfumes(db))
	}

	brands := r.Group("/brands")
	{
		brands.GET("/", brandControllers.GetAllBrands(db))
		brands.GET("/:id", brandControllers.GetBrandByID(db))
	}

	categories := r.Group("/categories")
	{
		categories.GET("/", categoryControllers.GetAllCategories(db))
		categories.GET("/:id", categoryControllers.GetCategoryByID(db))
	}
}
