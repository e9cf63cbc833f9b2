package routes

import (
	productControllers "github.com/Muthurasu-6319/nrk-aura-shop/controllers/product"
	reviewControllers "github.com/Muthurasu-6319/nrk-aura-shop/controllers/review"
	wishlistControllers "github.com/Muthurasu-6319/nrk-aura-shop/controllers/wishlist"
	"github.com/Muthurasu-6319/nrk-aura-shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productControllers.GetProducts(db))
		products.POST("", middleware.ValidateAPIKey, productControllers.CreateProduct(db))
		products.PUT("/:id", middleware.ValidateAPIKey, productControllers.UpdateProduct(db))
		products.DELETE("/:id", middleware.ValidateAPIKey, productControllers.DeleteProduct(db))
	}

	reviews := r.Group("/reviews")
	{
		reviews.GET("", reviewControllers.GetReviews(db))
		reviews.POST("", reviewControllers.AddReview(db))
		reviews.DELETE("/:id", reviewControllers.DeleteReview(db))
	}

	wishlist := r.Group("/wishlist")
	{
		wishlist.GET("/:userID", wishlistControllers.GetWishlist(db))
		wishlist.POST("", wishlistControllers.AddToWishlist(db))
		wishlist.DELETE("/:userID/:productID", wishlistControllers.RemoveFromWishlist(db))
	}
}
