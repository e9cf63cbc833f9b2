package wishlistControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Muthurasu-6319/nrk-aura-shop/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTest(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.WishlistItem{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/wishlist/:userID", GetWishlist(db))
	r.POST("/wishlist", AddToWishlist(db))
	r.DELETE("/wishlist/:userID/:productID", RemoveFromWishlist(db))
	return db, r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToWishlistUnknownProduct(t *testing.T) {
	db, r := setupTest(t)

	w := doJSON(t, r, "POST", "/wishlist", gin.H{"userId": "u1", "productId": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	assert.Zero(t, count, "a failed add must not create a wishlist row")
}

func TestAddToWishlistIsIdempotent(t *testing.T) {
	db, r := setupTest(t)
	require.NoError(t, db.Create(&models.Product{ID: "prod-1", Name: "Aurelia Bangle", Price: 3000}).Error)

	w := doJSON(t, r, "POST", "/wishlist", gin.H{"userId": "u1", "productId": "prod-1"})
	assert.Equal(t, http.StatusOK, w.Code)

	// Duplicate add is a no-op, not an error.
	w = doJSON(t, r, "POST", "/wishlist", gin.H{"userId": "u1", "productId": "prod-1"})
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetAndRemoveWishlist(t *testing.T) {
	db, r := setupTest(t)
	require.NoError(t, db.Create(&models.Product{ID: "prod-1", Name: "Aurelia Bangle", Price: 3000, IsVisible: true}).Error)
	require.NoError(t, db.Create(&models.WishlistItem{UserID: "u1", ProductID: "prod-1"}).Error)

	req := httptest.NewRequest("GET", "/wishlist/u1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "prod-1", products[0].ID)

	req = httptest.NewRequest("DELETE", "/wishlist/u1/prod-1", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var count int64
	db.Model(&models.WishlistItem{}).Count(&count)
	assert.Zero(t, count)
}
