package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/Muthurasu-6319/nrk-aura-shop/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.WishlistItem{},
		&models.GalleryItem{},
		&models.Testimonial{},
		&models.AboutContent{},
		&models.HomeContent{},
		&models.SiteSettings{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	frontendURL := os.Getenv("FRONTEND_URL")
	allowOrigins := []string{"*"}
	if frontendURL != "" {
		allowOrigins = []string{frontendURL}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: frontendURL != "",
		MaxAge:           12 * time.Hour,
	}))

	// Health checks
	r.GET("/hello", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Backend is working! 🎉", "time": time.Now().Format(time.RFC3339)})
	})
	r.GET("/db-check", func(c *gin.Context) {
		var val int
		if err := db.Raw("SELECT 1").Scan(&val).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "Database Failed 🔴", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "Database Connected 🟢"})
	})

	// Setup routes
	routes.SetupRoutes(r, db)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(mysql.Open(withFoundRows(databaseURL)), &gorm.Config{})
		if err != nil {
			log.Fatalf("❌ DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, password, host, port, dbname,
	)

	db, err := gorm.Open(mysql.Open(withFoundRows(dsn)), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ Failed to connect DB: %v", err)
	}
	return db
}

// withFoundRows makes the MySQL driver report rows matched instead of rows
// changed. Without it an UPDATE that re-sets the current value returns
// RowsAffected == 0 and an existing order would be reported as not found.
func withFoundRows(dsn string) string {
	if strings.Contains(dsn, "clientFoundRows") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&clientFoundRows=true"
	}
	return dsn + "?clientFoundRows=true"
}
