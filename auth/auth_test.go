package auth

import (
	"fmt"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/errs"
	"github.com/perfumeaz/perfume-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Cart{}, &models.CartItem{}))
	return db
}

func TestRegisterCreatesUserWithCart(t *testing.T) {
	db := setupTestDB(t)

	resp, err := register(db, RegisterRequest{
		Name:     "Leyla",
		Email:    "leyla@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleUser, resp.User.Role)

	// password must be stored hashed, never in the clear
	assert.NotEqual(t, "secret123", resp.User.Password)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(resp.User.Password), []byte("secret123")))

	var cart models.Cart
	require.NoError(t, db.Where("user_id = ?", resp.User.ID).First(&cart).Error)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)

	req := RegisterRequest{Name: "Leyla", Email: "leyla@example.com", Password: "secret123"}
	_, err := register(db, req)
	require.NoError(t, err)

	_, err = register(db, req)
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)

	_, err := register(db, RegisterRequest{Name: "Leyla", Email: "leyla@example.com", Password: "secret123"})
	require.NoError(t, err)

	resp, err := login(db, LoginRequest{Email: "leyla@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	_, err = login(db, LoginRequest{Email: "leyla@example.com", Password: "wrong"})
	require.ErrorIs(t, err, errs.ErrInvalidRequest)

	_, err = login(db, LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.ErrorIs(t, err, errs.ErrInvalidRequest)
}

func TestIssueJWTClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	user := models.User{ID: 42, Email: "leyla@example.com", Role: models.RoleAdmin}
	signed := issueJWT(user)
	require.NotEmpty(t, signed)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "admin", claims["role"])
}
