package routes

import (
	stylistControllers "github.com/Muthurasu-6319/nrk-aura-shop/controllers/stylist"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupStylistRoutes(r *gin.Engine, db *gorm.DB) {
	stylist := r.Group("/stylist")
	{
		stylist.POST("/advice", stylistControllers.StyleAdviceHandler(db))
		stylist.POST("/describe", stylistControllers.DescribeProductHandler)
	}
}
