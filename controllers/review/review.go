package reviewControllers

import (
	"net/http"
	"time"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddReviewRequest struct {
	ID        string `json:"id"`
	ProductID string `json:"productId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
	UserName  string `json:"userName" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

// GET /reviews
func GetReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reviews []models.Review
		if err := db.Order("date DESC").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}
		c.JSON(http.StatusOK, reviews)
	}
}

// POST /reviews
func AddReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		id := req.ID
		if id == "" {
			id = uuid.NewString()
		}
		date := time.Now()
		if req.Date != "" {
			if t, err := time.Parse("2006-01-02", req.Date); err == nil {
				date = t
			}
		}

		review := models.Review{
			ID:        id,
			ProductID: req.ProductID,
			UserID:    req.UserID,
			UserName:  req.UserName,
			Rating:    req.Rating,
			Comment:   req.Comment,
			Date:      date,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Insert Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /reviews/:id
func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := db.Where("id = ?", c.Param("id")).Delete(&models.Review{})
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete Failed"})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
