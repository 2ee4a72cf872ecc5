package cartControllers

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/errs"
	"github.com/perfumeaz/perfume-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Brand{}, &models.Category{}, &models.Perfume{},
		&models.Cart{}, &models.CartItem{},
	))
	return db
}

func seedPerfume(t *testing.T, db *gorm.DB, name string, stock int) models.Perfume {
	t.Helper()
	brand := models.Brand{Name: name + " brand"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Name: name + " category"}
	require.NoError(t, db.Create(&category).Error)
	perfume := models.Perfume{
		Name: name, Price: 50, StockQuantity: stock,
		BrandID: brand.ID, CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&perfume).Error)
	return perfume
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test", Email: email, Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestGetOrCreateCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@example.com")

	cart, err := GetOrCreateCart(db, user.ID)
	require.NoError(t, err)
	require.NotZero(t, cart.ID)

	again, err := GetOrCreateCart(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, cart.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&models.Cart{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddToCartMergesLines(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@example.com")
	perfume := seedPerfume(t, db, "Noted Oud", 10)

	_, err := AddToCart(db, user.ID, perfume.ID, 2)
	require.NoError(t, err)
	item, err := AddToCart(db, user.ID, perfume.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, item.Quantity)

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("perfume_id = ?", perfume.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddToCartStockChecks(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@example.com")
	perfume := seedPerfume(t, db, "Noted Oud", 4)

	_, err := AddToCart(db, user.ID, perfume.ID, 5)
	require.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = AddToCart(db, user.ID, perfume.ID, 3)
	require.NoError(t, err)

	// Combined quantity would exceed stock
	_, err = AddToCart(db, user.ID, perfume.ID, 2)
	require.ErrorIs(t, err, errs.ErrInvalidRequest)

	var item models.CartItem
	require.NoError(t, db.Where("perfume_id = ?", perfume.ID).First(&item).Error)
	assert.Equal(t, 3, item.Quantity)
}

func TestAddToCartUnknownPerfume(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@example.com")

	_, err := AddToCart(db, user.ID, 9999, 1)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestUpdateCartItem(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@example.com")
	perfume := seedPerfume(t, db, "Noted Oud", 10)

	_, err := UpdateCartItem(db, user.ID, perfume.ID, 2)
	require.ErrorIs(t, err, errs.ErrNotFound)

	_, err = AddToCart(db, user.ID, perfume.ID, 2)
	require.NoError(t, err)

	item, err := UpdateCartItem(db, user.ID, perfume.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, item.Quantity)

	_, err = UpdateCartItem(db, user.ID, perfume.ID, 11)
	require.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@example.com")
	perfume := seedPerfume(t, db, "Noted Oud", 10)

	// Removing an absent line is not an error
	require.NoError(t, RemoveFromCart(db, user.ID, perfume.ID))

	_, err := AddToCart(db, user.ID, perfume.ID, 2)
	require.NoError(t, err)
	require.NoError(t, RemoveFromCart(db, user.ID, perfume.ID))
	require.NoError(t, RemoveFromCart(db, user.ID, perfume.ID))

	var count int64
	require.NoError(t, db.Model(&models.CartItem{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestClearCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "a@example.com")
	perfumeA := seedPerfume(t, db, "Noted Oud", 10)
	perfumeB := seedPerfume(t, db, "Caspian Breeze", 10)

	_, err := AddToCart(db, user.ID, perfumeA.ID, 1)
	require.NoError(t, err)
	_, err = AddToCart(db, user.ID, perfumeB.ID, 2)
	require.NoError(t, err)

	require.NoError(t, ClearCart(db, user.ID))

	cart, err := GetOrCreateCart(db, user.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
