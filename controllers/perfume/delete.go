package perfumeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/models"
	"github.com/perfumeaz/perfume-api/utils"
)

// DELETE /admin/perfumes/:id
func DeletePerfume(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseUintParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid perfume id"})
			return
		}

		result := db.Delete(&models.Perfume{}, "id = ?", id)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete perfume"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Perfume not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Perfume deleted"})
	}
}
