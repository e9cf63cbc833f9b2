package productControllers

import (
	"net/http"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ProductRequest struct {
	ID           string  `json:"id"`
	Name         string  `json:"name" binding:"required"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Image        string  `json:"image"`
	ShippingCost float64 `json:"shippingCost"`
	IsVisible    *bool   `json:"isVisible"`
}

func (r ProductRequest) toModel(id string) models.Product {
	visible := true
	if r.IsVisible != nil {
		visible = *r.IsVisible
	}
	return models.Product{
		ID:           id,
		Name:         r.Name,
		Price:        r.Price,
		Category:     r.Category,
		Description:  r.Description,
		Image:        r.Image,
		ShippingCost: r.ShippingCost,
		IsVisible:    visible,
	}
}

// GET /products
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// POST /products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
			return
		}
		product := req.toModel(req.ID)
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Insert Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// PUT /products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		product := req.toModel(c.Param("id"))
		if err := db.Model(&models.Product{}).Where("id = ?", product.ID).
			Select("Name", "Price", "Category", "Description", "Image", "ShippingCost", "IsVisible").
			Updates(product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /products/:id
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("id = ?", c.Param("id")).Delete(&models.Product{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
