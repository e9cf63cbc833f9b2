package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signFor(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature(t *testing.T) {
	secret := "test_secret_key"
	orderID := "order_N8fMCWRhMD1ZRm"
	paymentID := "pay_N8fN3qaFyRrLqQ"

	sig := signFor(orderID, paymentID, secret)

	assert.True(t, VerifySignature(orderID, paymentID, sig, secret))
	assert.False(t, VerifySignature(orderID, paymentID, sig, "other_secret"))
	assert.False(t, VerifySignature("order_other", paymentID, sig, secret))
	assert.False(t, VerifySignature(orderID, paymentID, "", secret))
}

func TestVerifySignatureSingleCharacterMutation(t *testing.T) {
	secret := "test_secret_key"
	sig := signFor("order_1", "pay_1", secret)

	for i := range sig {
		mutated := []byte(sig)
		if mutated[i] == 'a' {
			mutated[i] = 'b'
		} else {
			mutated[i] = 'a'
		}
		assert.False(t, VerifySignature("order_1", "pay_1", string(mutated), secret),
			"mutation at index %d must not verify", i)
	}
}

func TestCreatePaymentOrderConvertsToMinorUnits(t *testing.T) {
	var received map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "rzp_test_secret", pass)

		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":       "order_N8fMCWRhMD1ZRm",
			"amount":   received["amount"],
			"currency": received["currency"],
			"receipt":  received["receipt"],
			"status":   "created",
		})
	}))
	defer srv.Close()

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")
	t.Setenv("RAZORPAY_API_URL", srv.URL)

	order, err := CreatePaymentOrder(10300, "")
	require.NoError(t, err)

	assert.Equal(t, float64(1030000), received["amount"]) // 10300 Rupees -> paise
	assert.Equal(t, "INR", received["currency"])
	assert.Equal(t, "order_N8fMCWRhMD1ZRm", order.ID)
	assert.Equal(t, 1030000, order.Amount)
	assert.Equal(t, "INR", order.Currency)
}

func TestCreatePaymentOrderUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"Authentication failed"}}`))
	}))
	defer srv.Close()

	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "bad_secret")
	t.Setenv("RAZORPAY_API_URL", srv.URL)

	_, err := CreatePaymentOrder(500, "INR")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Authentication failed")
}

func TestCreatePaymentOrderRejectsNonPositiveAmount(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")

	_, err := CreatePaymentOrder(0, "INR")
	assert.Error(t, err)

	_, err = CreatePaymentOrder(-100, "INR")
	assert.Error(t, err)
}

func TestCreatePaymentOrderMissingConfig(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := CreatePaymentOrder(100, "INR")
	assert.Error(t, err)
}
