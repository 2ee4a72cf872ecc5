package categoryControllers

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
	r.GET("/categories", GetAllCategories(db))
	r.GET("/categories/:id", GetCategoryByID(db))
	r.POST("/categories", CreateCategory(db))
	r.PUT("/categories/:id", UpdateCategory(db))
	r.DELETE("/categories/:id", DeleteCategory(db))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	w := do(r, "POST", "/categories", `{"name":"Eau de Parfum"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(r, "POST", "/categories", `{"name":"Eau de Parfum"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Category{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUpdateCategoryNameCollision(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	first := models.Category{Name: "Eau de Parfum"}
	require.NoError(t, db.Create(&first).Error)
	second := models.Category{Name: "Eau de Toilette"}
	require.NoError(t, db.Create(&second).Error)

	w := do(r, "PUT", fmt.Sprintf("/categories/%d", second.ID), `{"name":"Eau de Parfum"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDeleteCategory(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	brand := models.Brand{Name: "Aqua di Baku"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Name: "Eau de Parfum"}
	require.NoError(t, db.Create(&category).Error)
	perfume := models.Perfume{Name: "Noted Oud", Price: 10, StockQuantity: 5, BrandID: brand.ID, CategoryID: category.ID}
	require.NoError(t, db.Create(&perfume).Error)

	// Blocked while a perfume still references the category
	w := do(r, "DELETE", fmt.Sprintf("/categories/%d", category.ID), "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	require.NoError(t, db.Delete(&perfume).Error)
	w = do(r, "DELETE", fmt.Sprintf("/categories/%d", category.ID), "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, "DELETE", "/categories/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetCategory(t *testing.T) {
	db := setupTestDB(t)
	r := newRouter(db)

	require.NoError(t, db.Create(&models.Category{Name: "Eau de Parfum"}).Error)

	w := do(r, "GET", "/categories", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, "GET", "/categories/9999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
