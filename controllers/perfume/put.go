package perfumeControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/errs"
	"github.com/perfumeaz/perfume-api/models"
	"github.com/perfumeaz/perfume-api/utils"
)

type StockUpdateInput struct {
	StockQuantity *int `json:"stock_quantity" binding:"required,gte=0"`
}

// PUT /admin/perfumes/:id
func UpdatePerfume(db *gorm.DB) gin.HandlerFunc {
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

		var input PerfumeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != perfume.Name {
			var count int64
			if err := db.Model(&models.Perfume{}).Where("name = ? AND id <> ?", input.Name, id).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate perfume"})
				return
			}
			if count > 0 {
				e := errs.AlreadyExists("perfume already exists with name: %s", input.Name)
				c.JSON(errs.Status(e), gin.H{"error": e.Error()})
				return
			}
		}

		if err := validateRefs(db, input); err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}

		perfume.Name = input.Name
		perfume.Description = input.Description
		perfume.Price = input.Price
		perfume.DiscountPercent = input.DiscountPercent
		perfume.ImageURL = input.ImageURL
		perfume.StockQuantity = input.StockQuantity
		perfume.Featured = input.Featured
		perfume.Bestseller = input.Bestseller
		perfume.Gender = models.Gender(input.Gender)
		perfume.FragranceFamily = models.FragranceFamily(input.FragranceFamily)
		perfume.BrandID = input.BrandID
		perfume.CategoryID = input.CategoryID

		if err := db.Save(&perfume).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update perfume"})
			return
		}
		c.JSON(http.StatusOK, perfume)
	}
}

// PUT /admin/perfumes/:id/stock
func UpdateStock(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume id"})
			return
		}
		var input StockUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

		if err := db.Model(&perfume).Update("stock_quantity", *input.StockQuantity).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update stock"})
			return
		}
		c.JSON(http.StatusOK, perfume)
	}
}
