package wishlistControllers

import (
	"errors"
	"net/http"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AddWishlistRequest struct {
	UserID    string `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

// GET /wishlist/:userID — the saved products themselves, joined against
// the live catalog.
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.
			Joins("JOIN wishlist_items ON wishlist_items.product_id = products.id").
			Where("wishlist_items.user_id = ?", c.Param("userID")).
			Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /wishlist — a duplicate add is a no-op, not an error; a missing
// product is rejected before any row is written.
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddWishlistRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var product models.Product
		if err := db.Select("id").First(&product, "id = ?", req.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}

		item := models.WishlistItem{UserID: req.UserID, ProductID: req.ProductID}
		if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Insert Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /wishlist/:userID/:productID
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.
			Where("user_id = ? AND product_id = ?", c.Param("userID"), c.Param("productID")).
			Delete(&models.WishlistItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
