package contentControllers

import (
	"errors"
	"net/http"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// The about/home/site-settings tables each hold a single row (id = 1)
// edited from the admin dashboard; writes are upserts.

func GetAboutContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var content models.AboutContent
		if err := db.First(&content, "id = ?", 1).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

func SaveAboutContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var content models.AboutContent
		if err := c.ShouldBindJSON(&content); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		content.ID = 1
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&content).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func GetHomeContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var content models.HomeContent
		if err := db.First(&content, "id = ?", 1).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}
		c.JSON(http.StatusOK, content)
	}
}

func SaveHomeContent(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var content models.HomeContent
		if err := c.ShouldBindJSON(&content); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		content.ID = 1
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&content).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func GetSiteSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.SiteSettings
		if err := db.First(&settings, "id = ?", 1).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusOK, nil)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}

func SaveSiteSettings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var settings models.SiteSettings
		if err := c.ShouldBindJSON(&settings); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		settings.ID = 1
		if err := db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&settings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// -------- Gallery --------

func GetGallery(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.GalleryItem
		if err := db.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func CreateGalleryItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.GalleryItem
		if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Insert Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func UpdateGalleryItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.GalleryItem
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ID = c.Param("id")
		if err := db.Model(&models.GalleryItem{}).Where("id = ?", item.ID).
			Select("Title", "Image", "Description").Updates(item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func DeleteGalleryItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("id = ?", c.Param("id")).Delete(&models.GalleryItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete Failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// -------- Testimonials --------

func GetTestimonials(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var items []models.Testimonial
		if err := db.Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fetch failed"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func CreateTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Testimonial
		if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Insert failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func UpdateTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.Testimonial
		if err := c.ShouldBindJSON(&item); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		item.ID = c.Param("id")
		if err := db.Model(&models.Testimonial{}).Where("id = ?", item.ID).
			Select("Name", "Title", "Content", "Image").Updates(item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func DeleteTestimonial(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("id = ?", c.Param("id")).Delete(&models.Testimonial{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
