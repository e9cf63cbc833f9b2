package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Order workflow + payment gateway
	SetupOrderRoutes(r, db)
	SetupPaymentRoutes(r)

	// Catalog, reviews, wishlist
	SetupCatalogRoutes(r, db)

	// Content management + contact form
	SetupContentRoutes(r, db)

	// Stylist chat
	SetupStylistRoutes(r, db)

	// Admin user management (API-key protected)
	SetupAdminRoutes(r, db)
}
