package favoriteControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/errs"
	"github.com/perfumeaz/perfume-api/middleware"
	"github.com/perfumeaz/perfume-api/models"
	"github.com/perfumeaz/perfume-api/utils"
)

// AddFavorite bookmarks a perfume for the user. Favoriting the same
// perfume twice is a no-op.
func AddFavorite(db *gorm.DB, userID, perfumeID uint) error {
	var perfume models.Perfume
	if err := db.First(&perfume, "id = ?", perfumeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NotFound("perfume %d not found", perfumeID)
		}
		return err
	}

	exists, err := IsFavorite(db, userID, perfumeID)
	if err != nil || exists {
		return err
	}

	return db.Create(&models.Favorite{
		UserID:    userID,
		PerfumeID: perfumeID,
		CreatedAt: time.Now(),
	}).Error
}

// RemoveFavorite is idempotent; removing an absent favorite succeeds.
func RemoveFavorite(db *gorm.DB, userID, perfumeID uint) error {
	return db.Where("user_id = ? AND perfume_id = ?", userID, perfumeID).
		Delete(&models.Favorite{}).Error
}

func IsFavorite(db *gorm.DB, userID, perfumeID uint) (bool, error) {
	var count int64
	err := db.Model(&models.Favorite{}).
		Where("user_id = ? AND perfume_id = ?", userID, perfumeID).
		Count(&count).Error
	return count > 0, err
}

// GetFavorites returns the user's favorited perfumes, newest first.
func GetFavorites(db *gorm.DB, userID uint) ([]models.Perfume, error) {
	var favorites []models.Favorite
	if err := db.Preload("Perfume.Brand").Preload("Perfume.Category").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favorites).Error; err != nil {
		return nil, err
	}

	perfumes := make([]models.Perfume, 0, len(favorites))
	for _, f := range favorites {
		perfumes = append(perfumes, f.Perfume)
	}
	return perfumes, nil
}

// MostFavorited ranks perfumes by descending favorite count.
func MostFavorited(db *gorm.DB, limit int) ([]models.Perfume, error) {
	var ranked []struct {
		PerfumeID uint
	}
	if err := db.Model(&models.Favorite{}).
		Select("perfume_id, COUNT(*) as favorite_count").
		Group("perfume_id").
		Order("favorite_count DESC").
		Limit(limit).
		Scan(&ranked).Error; err != nil {
		return nil, err
	}

	perfumes := make([]models.Perfume, 0, len(ranked))
	for _, r := range ranked {
		var perfume models.Perfume
		if err := db.Preload("Brand").Preload("Category").First(&perfume, "id = ?", r.PerfumeID).Error; err != nil {
			continue
		}
		perfumes = append(perfumes, perfume)
	}
	return perfumes, nil
}

// -------- Handlers --------

// GET /user/favorites
func GetFavoritesHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		perfumes, err := GetFavorites(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}
		c.JSON(http.StatusOK, perfumes)
	}
}

// POST /user/favorites/:perfume_id
func AddFavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		perfumeID, err := utils.ParseUintParam(c, "perfume_id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume_id"})
			return
		}
		if err := AddFavorite(db, userID, perfumeID); err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Added to favorites"})
	}
}

// DELETE /user/favorites/:perfume_id
func RemoveFavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		perfumeID, err := utils.ParseUintParam(c, "perfume_id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume_id"})
			return
		}
		if err := RemoveFavorite(db, userID, perfumeID); err != nil {
			c.JSON(errs.Status(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
	}
}

// GET /user/favorites/:perfume_id/status
func IsFavoriteHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.CurrentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		perfumeID, err := utils.ParseUintParam(c, "perfume_id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume_id"})
			return
		}
		fav, err := IsFavorite(db, userID, perfumeID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check favorite"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"is_favorite": fav})
	}
}

// GET /perfumes/most-favorited
func MostFavoritedHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		perfumes, err := MostFavorited(db, 10)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch most favorited"})
			return
		}
		c.JSON(http.StatusOK, perfumes)
	}
}
