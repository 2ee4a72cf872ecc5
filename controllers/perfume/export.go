package perfumeControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/models"
)

// GET /admin/perfumes/export — catalog spreadsheet download.
func ExportPerfumesToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var perfumes []models.Perfume
		if err := db.Preload("Brand").Preload("Category").Find(&perfumes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch perfumes"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Perfumes")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Brand", "Category", "Price", "DiscountPercent",
			"DiscountedPrice", "Stock", "Gender", "FragranceFamily",
			"Featured", "Bestseller", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range perfumes {
			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(p.Brand.Name)
			row.AddCell().SetValue(p.Category.Name)
			row.AddCell().SetValue(p.Price)
			row.AddCell().SetValue(p.DiscountPercent)
			row.AddCell().SetValue(p.DiscountedPrice())
			row.AddCell().SetValue(p.StockQuantity)
			row.AddCell().SetValue(string(p.Gender))
			row.AddCell().SetValue(string(p.FragranceFamily))
			row.AddCell().SetValue(p.Featured)
			row.AddCell().SetValue(p.Bestseller)
			row.AddCell().SetValue(p.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=perfumes.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		}
	}
}
