package brandControllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Brand{}, &models.Category{}, &models.Perfume{}))
	return db
}

func newRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/brands", GetAllBrands(db))
	r.GET("/brands/:id", GetBrandByID(db))
	r.POST("/brands", CreateBrand(db))
	r.PUT("/brands/:id", UpdateBrand(db))
	r.DELETE("/brands/:id", DeleteBrand(db))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBrandDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	w := do(r, "POST", "/brands", `{"name":"Aqua di Baku"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, "POST", "/brands", `{"name":"Aqua di Baku"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Brand{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateBrandNameCollision(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	first := models.Brand{Name: "Aqua di Baku"}
	require.NoError(t, db.Create(&first).Error)
	second := models.Brand{Name: "Sheki Scents"}
	require.NoError(t, db.Create(&second).Error)

	w := do(r, "PUT", fmt.Sprintf("/brands/%d", second.ID), `{"name":"Aqua di Baku"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Re-saving under its own name is fine
	w = do(r, "PUT", fmt.Sprintf("/brands/%d", second.ID), `{"name":"Sheki Scents","description":"updated"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteBrand(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	brand := models.Brand{Name: "Aqua di Baku"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Name: "Eau de Parfum"}
	require.NoError(t, db.Create(&category).Error)
	perfume := models.Perfume{Name: "Noted Oud", Price: 10, StockQuantity: 5, BrandID: brand.ID, CategoryID: category.ID}
	require.NoError(t, db.Create(&perfume).Error)

	// Blocked while a perfume still references the brand
	w := do(r, "DELETE", fmt.Sprintf("/brands/%d", brand.ID), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, db.Delete(&perfume).Error)
	w = do(r, "DELETE", fmt.Sprintf("/brands/%d", brand.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, "DELETE", "/brands/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBrand(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	require.NoError(t, db.Create(&models.Brand{Name: "Aqua di Baku"}).Error)

	w := do(r, "GET", "/brands", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, "GET", "/brands/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, "GET", "/brands/notanumber", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
