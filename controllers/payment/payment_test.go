package paymentControllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/orders/verify-payment", VerifyPaymentHandler)
	return r
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

func TestVerifyPaymentHandler(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	r := setupRouter()

	mac := hmac.New(sha256.New, []byte("test_secret"))
	mac.Write([]byte("order_1|pay_1"))
	sig := hex.EncodeToString(mac.Sum(nil))

	w := postJSON(t, r, "/orders/verify-payment", gin.H{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  sig,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}

func TestVerifyPaymentHandlerInvalidSignature(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_SECRET", "test_secret")
	r := setupRouter()

	w := postJSON(t, r, "/orders/verify-payment", gin.H{
		"razorpay_order_id":   "order_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_signature":  "deadbeef",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Invalid Signature", resp["error"])
}

func TestVerifyPaymentHandlerMissingFields(t *testing.T) {
	r := setupRouter()

	w := postJSON(t, r, "/orders/verify-payment", gin.H{
		"razorpay_order_id": "order_1",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
