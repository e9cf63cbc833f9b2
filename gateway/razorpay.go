package gateway

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultAPIURL = "https://api.razorpay.com/v1/orders"

// PaymentOrder is the subset of the Razorpay order object the storefront
// needs to open the hosted checkout.
type PaymentOrder struct {
	ID       string `json:"id"`
	Amount   int    `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// getRazorpayConfig reads gateway credentials from the environment.
func getRazorpayConfig() (keyID, keySecret, apiURL string, err error) {
	keyID = os.Getenv("RAZORPAY_KEY_ID")
	keySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	apiURL = os.Getenv("RAZORPAY_API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	if keyID == "" || keySecret == "" {
		return "", "", "", fmt.Errorf("razorpay configuration missing")
	}
	return keyID, keySecret, apiURL, nil
}

// CreatePaymentOrder creates a payment session for an already-tax-inclusive
// amount in whole Rupees. Razorpay expects paise, so the amount is converted
// with a ×100 multiplication. Any upstream rejection is returned as an error;
// this step must never silently continue.
func CreatePaymentOrder(amount int, currency string) (*PaymentOrder, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d", amount)
	}
	if currency == "" {
		currency = "INR"
	}

	keyID, keySecret, apiURL, err := getRazorpayConfig()
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{
		"amount":   amount * 100, // convert to paise
		"currency": currency,
		"receipt":  fmt.Sprintf("receipt_%d", time.Now().UnixMilli()),
	}

	jsonData, _ := json.Marshal(payload)

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(keyID, keySecret)

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach razorpay: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		var apiErr razorpayError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Description != "" {
			return nil, fmt.Errorf("razorpay error (%d): %s", resp.StatusCode, apiErr.Error.Description)
		}
		return nil, fmt.Errorf("razorpay API error (%d): %s", resp.StatusCode, string(body))
	}

	var order PaymentOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to parse razorpay response: %v", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay returned empty order id")
	}
	return &order, nil
}

// VerifySignature recomputes the HMAC-SHA256 of "<orderID>|<paymentID>" with
// the shared secret and compares it against the signature the client reports.
// This is the sole authority for "payment succeeded".
func VerifySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
