package auth

import (
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/perfumeaz/perfume-api/models"
)

// issueJWT generates a signed bearer token for a user.
func issueJWT(user models.User) string {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		log.Printf("❌ Failed to sign JWT: %v", err)
		return ""
	}
	return signed
}
