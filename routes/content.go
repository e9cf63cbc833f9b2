package routes

import (
	contentControllers "github.com/Muthurasu-6319/nrk-aura-shop/controllers/content"
	"github.com/Muthurasu-6319/nrk-aura-shop/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupContentRoutes(r *gin.Engine, db *gorm.DB) {
	content := r.Group("/content")
	{
		content.GET("/about", contentControllers.GetAboutContent(db))
		content.POST("/about", middleware.ValidateAPIKey, contentControllers.SaveAboutContent(db))
		content.GET("/home", contentControllers.GetHomeContent(db))
		content.POST("/home", middleware.ValidateAPIKey, contentControllers.SaveHomeContent(db))
		content.GET("/site-settings", contentControllers.GetSiteSettings(db))
		content.POST("/site-settings", middleware.ValidateAPIKey, contentControllers.SaveSiteSettings(db))
	}

	gallery := r.Group("/gallery")
	{
		gallery.GET("", contentControllers.GetGallery(db))
		gallery.POST("", middleware.ValidateAPIKey, contentControllers.CreateGalleryItem(db))
		gallery.PUT("/:id", middleware.ValidateAPIKey, contentControllers.UpdateGalleryItem(db))
		gallery.DELETE("/:id", middleware.ValidateAPIKey, contentControllers.DeleteGalleryItem(db))
	}

	testimonials := r.Group("/testimonials")
	{
		testimonials.GET("", contentControllers.GetTestimonials(db))
		testimonials.POST("", middleware.ValidateAPIKey, contentControllers.CreateTestimonial(db))
		testimonials.PUT("/:id", middleware.ValidateAPIKey, contentControllers.UpdateTestimonial(db))
		testimonials.DELETE("/:id", middleware.ValidateAPIKey, contentControllers.DeleteTestimonial(db))
	}

	r.POST("/contact-form", contentControllers.ContactForm)
}
