package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/perfumeaz/perfume-api/auth"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.RegisterHandler(db))
		authGroup.POST("/login", auth.LoginHandler(db))

		// Google OAuth2 code flow
		authGroup.GET("/google/login", auth.GoogleLoginHandler())
		authGroup.GET("/google/callback", auth.GoogleCallbackHandler(db))
	}
}
