package routes

import (
	userControllers "github.com/Muthurasu-6319/nrk-aura-shop/controllers/user"
	"github.com/Muthurasu-6319/nrk-aura-shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers the public register/login endpoints and the
// JWT-protected profile update.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", userControllers.Register(db))
		authGroup.POST("/login", userControllers.Login(db))
	}

	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.POST("/update-profile", userControllers.UpdateProfile(db))
	}
}

// SetupAdminRoutes registers the "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.PUT("/users/:id/status", userControllers.UpdateUserStatus(db))
		adminGroup.DELETE("/users/:id", userControllers.DeleteUser(db))
	}
}
