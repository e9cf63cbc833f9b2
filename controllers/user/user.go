package userControllers

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func issueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func userProfile(u models.User) gin.H {
	return gin.H{
		"id":      u.ID,
		"name":    u.Name,
		"email":   u.Email,
		"role":    u.Role,
		"status":  u.Status,
		"phone":   u.Phone,
		"address": u.Address,
		"city":    u.City,
		"state":   u.State,
		"zip":     u.Zip,
	}
}

// POST /auth/register
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var existing models.User
		if err := db.First(&existing, "email = ?", req.Email).Error; err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}

		user := models.User{
			ID:       strconv.FormatInt(time.Now().UnixMilli(), 10),
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     "user",
			Status:   "active",
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}

		c.JSON(http.StatusOK, userProfile(user))
	}
}

// POST /auth/login. Credential comparison is a plain equality check against
// the stored value, carried over from the legacy system.
func Login(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.First(&user, "email = ? AND password = ?", req.Email, req.Password).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "DB Error"})
			return
		}

		if user.Status == "inactive" {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is Inactive. Contact Admin."})
			return
		}

		token, err := issueToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
			return
		}

		profile := userProfile(user)
		profile["token"] = token
		c.JSON(http.StatusOK, profile)
	}
}

// POST /user/update-profile (JWT-protected)
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		updates := map[string]interface{}{
			"name":     req.Name,
			"email":    req.Email,
			"password": req.Password,
			"phone":    req.Phone,
			"address":  req.Address,
			"city":     req.City,
			"state":    req.State,
			"zip":      req.Zip,
		}
		if err := db.Model(&models.User{}).Where("id = ?", req.ID).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "name", "email", "role", "status", "created_at").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fetch failed"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

// PUT /admin/users/:id/status — activate or deactivate an account.
func UpdateUserStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateUserStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.User{}).Where("id = ?", c.Param("id")).
			Update("status", req.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Update failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// DELETE /admin/users/:id
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Where("id = ?", c.Param("id")).Delete(&models.User{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Delete failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
