package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/models"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

const stateCookie = "oauth_state"

func oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("OAUTH_REDIRECT_URL"),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

// GET /auth/google/login
func GoogleLoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := uuid.NewString()
		c.SetCookie(stateCookie, state, 300, "/", "", false, true)
		c.Redirect(http.StatusTemporaryRedirect, oauthConfig().AuthCodeURL(state))
	}
}

// GET /auth/google/callback
//
// Exchanges the authorization code, fetches the Google profile,
// find-or-creates the user and redirects to the frontend with a JWT.
func GoogleCallbackHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		state, err := c.Cookie(stateCookie)
		if err != nil || state == "" || c.Query("state") != state {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
			return
		}

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
			return
		}

		config := oauthConfig()
		token, err := config.Exchange(c.Request.Context(), code)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to exchange authorization code"})
			return
		}

		resp, err := config.Client(c.Request.Context(), token).Get(googleUserInfoURL)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch Google profile"})
			return
		}
		defer resp.Body.Close()

		var profile struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil || profile.Email == "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": "Invalid Google profile"})
			return
		}

		user, err := findOrCreateGoogleUser(db, profile.Email, profile.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
			return
		}

		c.Redirect(http.StatusTemporaryRedirect,
			os.Getenv("FRONTEND_URL")+"/oauth2/redirect?token="+issueJWT(*user))
	}
}

func findOrCreateGoogleUser(db *gorm.DB, email, name string) (*models.User, error) {
	var user models.User
	err := db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return &user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Google users never log in with this password; it only keeps the
	// column non-empty.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user = models.User{
		Name:         name,
		Email:        email,
		Password:     string(hash),
		Role:         models.RoleUser,
		IsGoogleUser: true,
		Cart:         models.Cart{},
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
