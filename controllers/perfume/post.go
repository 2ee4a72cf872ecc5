package perfumeControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/errs"
	"github.com/perfumeaz/perfume-api/models"
)

type PerfumeInput struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	DiscountPercent float64 `json:"discount_percent" binding:"gte=0,lte=100"`
	ImageURL        string  `json:"image_url"`
	StockQuantity   int     `json:"stock_quantity" binding:"gte=0"`
	Featured        bool    `json:"featured"`
	Bestseller      bool    `json:"bestseller"`
	Gender          string  `json:"gender"`
	FragranceFamily string  `json:"fragrance_family"`
	BrandID         uint    `json:"brand_id" binding:"required"`
	CategoryID      uint    `json:"category_id" binding:"required"`
}

func validateRefs(db *gorm.DB, input PerfumeInput) error {
	var brand models.Brand
	if err := db.First(&brand, "id = ?", input.BrandID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("brand %d not found", input.BrandID)
		}
		return err
	}
	var category models.Category
	if err := db.First(&category, "id = ?", input.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("category %d not found", input.CategoryID)
		}
		return err
	}
	return nil
}

// POST /admin/perfumes
func CreatePerfume(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input PerfumeInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var count int64
		if err := db.Model(&models.Perfume{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate perfume"})
			return
		}
		if count > 0 {
			err := errs.AlreadyExists("perfume already exists with name: %s", input.Name)
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}

		if err := validateRefs(db, input); err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}

		perfume := models.Perfume{
			Name:            input.Name,
			Description:     input.Description,
			Price:           input.Price,
			DiscountPercent: input.DiscountPercent,
			ImageURL:        input.ImageURL,
			StockQuantity:   input.StockQuantity,
			Featured:        input.Featured,
			Bestseller:      input.Bestseller,
			Gender:          models.Gender(input.Gender),
			FragranceFamily: models.FragranceFamily(input.FragranceFamily),
			BrandID:         input.BrandID,
			CategoryID:      input.CategoryID,
		}
		if err := db.Create(&perfume).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create perfume"})
			return
		}
		c.JSON(http.StatusCreated, perfume)
	}
}
