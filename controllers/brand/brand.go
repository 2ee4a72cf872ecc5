package brandControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/errs"
	"github.com/perfumeaz/perfume-api/models"
	"github.com/perfumeaz/perfume-api/utils"
)

type BrandInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	LogoURL     string `json:"logo_url"`
}

// GET /brands
func GetAllBrands(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var brands []models.Brand
		if err := db.Order("name ASC").Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		c.JSON(http.StatusOK, brands)
	}
}

// GET /brands/:id
func GetBrandByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand id"})
			return
		}
		var brand models.Brand
		if err := db.First(&brand, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brand"})
			return
		}
		c.JSON(http.StatusOK, brand)
	}
}

// POST /admin/brands
func CreateBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input BrandInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var count int64
		if err := db.Model(&models.Brand{}).Where("name = ?", input.Name).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate brand"})
			return
		}
		if count > 0 {
			e := errs.AlreadyExists("brand already exists with name: %s", input.Name)
			c.JSON(errs.Status(e), gin.H{"error": e.Error()})
			return
		}

		brand := models.Brand{Name: input.Name, Description: input.Description, LogoURL: input.LogoURL}
		if err := db.Create(&brand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create brand"})
			return
		}
		c.JSON(http.StatusCreated, brand)
	}
}

// PUT /admin/brands/:id
func UpdateBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand id"})
			return
		}
		var brand models.Brand
		if err := db.First(&brand, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brand"})
			return
		}

		var input BrandInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if input.Name != brand.Name {
			var count int64
			if err := db.Model(&models.Brand{}).Where("name = ? AND id <> ?", input.Name, id).Count(&count).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate brand"})
				return
			}
			if count > 0 {
				e := errs.AlreadyExists("brand already exists with name: %s", input.Name)
				c.JSON(errs.Status(e), gin.H{"error": e.Error()})
				return
			}
		}

		brand.Name = input.Name
		brand.Description = input.Description
		brand.LogoURL = input.LogoURL
		if err := db.Save(&brand).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update brand"})
			return
		}
		c.JSON(http.StatusOK, brand)
	}
}

// DELETE /admin/brands/:id — refuses while perfumes still reference it.
func DeleteBrand(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand id"})
			return
		}

		var count int64
		if err := db.Model(&models.Perfume{}).Where("brand_id = ?", id).Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check brand usage"})
			return
		}
		if count > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Brand still has perfumes attached"})
			return
		}

		result := db.Delete(&models.Brand{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete brand"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Brand deleted"})
	}
}
