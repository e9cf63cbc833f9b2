package userControllers

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
	require.NoError(t, db.AutoMigrate(&models.User{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", Register(db))
	r.POST("/auth/login", Login(db))
	return db, r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-jwt-secret")
	_, r := setupTest(t)

	w := postJSON(t, r, "/auth/register", gin.H{
		"name":     "Asha Nair",
		"email":    "asha@example.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Duplicate email is rejected.
	w = postJSON(t, r, "/auth/register", gin.H{
		"name":     "Asha Again",
		"email":    "asha@example.com",
		"password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(t, r, "/auth/login", gin.H{
		"email":    "asha@example.com",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Asha Nair", resp["name"])
	assert.NotEmpty(t, resp["token"])
	assert.NotContains(t, resp, "password")
}

func TestLoginBadCredentials(t *testing.T) {
	_, r := setupTest(t)

	w := postJSON(t, r, "/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginInactiveAccount(t *testing.T) {
	db, r := setupTest(t)
	require.NoError(t, db.Create(&models.User{
		ID:       "u1",
		Name:     "Dormant",
		Email:    "dormant@example.com",
		Password: "pw",
		Role:     "user",
		Status:   "inactive",
	}).Error)

	w := postJSON(t, r, "/auth/login", gin.H{
		"email":    "dormant@example.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
