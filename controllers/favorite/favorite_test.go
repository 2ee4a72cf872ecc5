package favoriteControllers

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
		&models.Favorite{},
	))
	return db
}

func seed(t *testing.T, db *gorm.DB) (models.User, []models.Perfume) {
	t.Helper()
	brand := models.Brand{Name: "Aqua di Baku"}
	require.NoError(t, db.Create(&brand).Error)
	category := models.Category{Name: "Eau de Parfum"}
	require.NoError(t, db.Create(&category).Error)

	user := models.User{Name: "Leyla", Email: "leyla@example.com", Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&user).Error)

	perfumes := make([]models.Perfume, 3)
	for i := range perfumes {
		perfumes[i] = models.Perfume{
			Name: fmt.Sprintf("Perfume %d", i), Price: 30,
			StockQuantity: 10, BrandID: brand.ID, CategoryID: category.ID,
		}
		require.NoError(t, db.Create(&perfumes[i]).Error)
	}
	return user, perfumes
}

func TestAddFavoriteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user, perfumes := seed(t, db)

	require.NoError(t, AddFavorite(db, user.ID, perfumes[0].ID))
	require.NoError(t, AddFavorite(db, user.ID, perfumes[0].ID))

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).
		Where("user_id = ? AND perfume_id = ?", user.ID, perfumes[0].ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	fav, err := IsFavorite(db, user.ID, perfumes[0].ID)
	require.NoError(t, err)
	assert.True(t, fav)
}

func TestAddFavoriteUnknownPerfume(t *testing.T) {
	db := setupTestDB(t)
	user, _ := seed(t, db)

	err := AddFavorite(db, user.ID, 9999)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRemoveFavoriteIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	user, perfumes := seed(t, db)

	require.NoError(t, RemoveFavorite(db, user.ID, perfumes[0].ID))

	require.NoError(t, AddFavorite(db, user.ID, perfumes[0].ID))
	require.NoError(t, RemoveFavorite(db, user.ID, perfumes[0].ID))
	require.NoError(t, RemoveFavorite(db, user.ID, perfumes[0].ID))

	fav, err := IsFavorite(db, user.ID, perfumes[0].ID)
	require.NoError(t, err)
	assert.False(t, fav)
}

func TestGetFavorites(t *testing.T) {
	db := setupTestDB(t)
	user, perfumes := seed(t, db)

	require.NoError(t, AddFavorite(db, user.ID, perfumes[0].ID))
	require.NoError(t, AddFavorite(db, user.ID, perfumes[2].ID))

	favs, err := GetFavorites(db, user.ID)
	require.NoError(t, err)
	require.Len(t, favs, 2)
	for _, p := range favs {
		assert.Equal(t, "Aqua di Baku", p.Brand.Name)
	}
}

func TestMostFavoritedRanking(t *testing.T) {
	db := setupTestDB(t)
	user, perfumes := seed(t, db)

	other := models.User{Name: "Rauf", Email: "rauf@example.com", Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&other).Error)
	third := models.User{Name: "Nigar", Email: "nigar@example.com", Password: "x", Role: models.RoleUser}
	require.NoError(t, db.Create(&third).Error)

	// perfume[1] gets 3 favorites, perfume[0] gets 2, perfume[2] none
	for _, uid := range []uint{user.ID, other.ID, third.ID} {
		require.NoError(t, AddFavorite(db, uid, perfumes[1].ID))
	}
	require.NoError(t, AddFavorite(db, user.ID, perfumes[0].ID))
	require.NoError(t, AddFavorite(db, other.ID, perfumes[0].ID))

	ranked, err := MostFavorited(db, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, perfumes[1].ID, ranked[0].ID)
	assert.Equal(t, perfumes[0].ID, ranked[1].ID)
}
