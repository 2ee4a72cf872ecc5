package perfumeControllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/models"
	"github.com/perfumeaz/perfume-api/utils"
)

// Whitelisted sort fields; anything else falls back to created_at.
var sortFields = map[string]bool{
	"created_at": true,
	"price":      true,
	"name":       true,
}

// GET /perfumes
//
// Filtered, paginated catalog search: text match, brand, category,
// price range, gender, fragrance family and flags.
func GetPerfumes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sortBy := c.DefaultQuery("sort_by", "created_at")
		if !sortFields[sortBy] {
			sortBy = "created_at"
		}
		sortOrder := strings.ToLower(c.DefaultQuery("order", "desc"))
		if sortOrder != "asc" && sortOrder != "desc" {
			sortOrder = "desc"
		}

		query := db.Model(&models.Perfume{}).Preload("Brand").Preload("Category")

		if search := c.Query("search"); search != "" {
			likePattern := "%" + strings.ToLower(search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", likePattern, likePattern)
		}
		if brandID := c.Query("brand_id"); brandID != "" {
			id, err := strconv.ParseUint(brandID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid brand_id"})
				return
			}
			query = query.Where("brand_id = ?", uint(id))
		}
		if categoryID := c.Query("category_id"); categoryID != "" {
			id, err := strconv.ParseUint(categoryID, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			query = query.Where("category_id = ?", uint(id))
		}
		if minPrice := c.Query("min_price"); minPrice != "" {
			mp, err := strconv.ParseFloat(minPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPrice := c.Query("max_price"); maxPrice != "" {
			mp, err := strconv.ParseFloat(maxPrice, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}
		if gender := c.Query("gender"); gender != "" {
			query = query.Where("gender = ?", strings.ToLower(gender))
		}
		if family := c.Query("fragrance_family"); family != "" {
			query = query.Where("fragrance_family = ?", strings.ToLower(family))
		}
		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}
		if c.Query("bestseller") == "true" {
			query = query.Where("bestseller = ?", true)
		}

		page, size := utils.PageParams(c)

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count perfumes"})
			return
		}

		var perfumes []models.Perfume
		if err := query.
			Order(fmt.Sprintf("%s %s", sortBy, sortOrder)).
			Offset(page * size).
			Limit(size).
			Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfumes"})
			return
		}

		c.JSON(http.StatusOK, utils.NewPageResponse(perfumes, page, size, total))
	}
}
