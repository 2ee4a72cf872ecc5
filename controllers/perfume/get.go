package perfumeControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/models"
	"github.com/perfumeaz/perfume-api/utils"
)

// GET /perfumes/:id
func GetPerfumeByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume id"})
			return
		}
		var perfume models.Perfume
		if err := db.Preload("Brand").Preload("Category").First(&perfume, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Perfume not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfume"})
			return
		}
		c.JSON(http.StatusOK, perfume)
	}
}

// GET /perfumes/featured
func GetFeaturedPerfumes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var perfumes []models.Perfume
		if err := db.Preload("Brand").Where("featured = ?", true).Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch featured perfumes"})
			return
		}
		c.JSON(http.StatusOK, perfumes)
	}
}

// GET /perfumes/bestsellers
func GetBestsellerPerfumes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var perfumes []models.Perfume
		if err := db.Preload("Brand").Where("bestseller = ?", true).Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bestsellers"})
			return
		}
		c.JSON(http.StatusOK, perfumes)
	}
}

// GET /perfumes/:id/similar — same brand or category, excluding itself.
func GetSimilarPerfumes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume id"})
			return
		}
		var perfume models.Perfume
		if err := db.First(&perfume, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Perfume not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfume"})
			return
		}

		var similar []models.Perfume
		if err := db.Preload("Brand").
			Where("(brand_id = ? OR category_id = ?) AND id <> ?", perfume.BrandID, perfume.CategoryID, perfume.ID).
			Limit(10).
			Find(&similar).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch similar perfumes"})
			return
		}
		c.JSON(http.StatusOK, similar)
	}
}
