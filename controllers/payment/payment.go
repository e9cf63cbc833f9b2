package paymentControllers

import (
	"log"
	"net/http"
	"os"

	"github.com/Muthurasu-6319/nrk-aura-shop/gateway"
	"github.com/gin-gonic/gin"
)

type CreatePaymentOrderRequest struct {
	Amount   int    `json:"amount" binding:"required,gt=0"` // tax-inclusive, whole Rupees
	Currency string `json:"currency"`
}

type VerifyPaymentRequest struct {
	GatewayOrderID   string `json:"razorpay_order_id" binding:"required"`
	GatewayPaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature        string `json:"razorpay_signature" binding:"required"`
}

// CreatePaymentOrderHandler opens a hosted payment session for the cart
// total. A gateway failure aborts the checkout; nothing is persisted.
func CreatePaymentOrderHandler(c *gin.Context) {
	var req CreatePaymentOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := gateway.CreatePaymentOrder(req.Amount, req.Currency)
	if err != nil {
		log.Printf("❌ Razorpay Order Error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment initiation failed"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// VerifyPaymentHandler is the sole authority for "payment succeeded". A
// mismatch is a client-attributable 400, not a server fault; no order is
// persisted and the cart stays intact.
func VerifyPaymentHandler(c *gin.Context) {
	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	secret := os.Getenv("RAZORPAY_KEY_SECRET")
	if gateway.VerifySignature(req.GatewayOrderID, req.GatewayPaymentID, req.Signature, secret) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment Verified"})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid Signature"})
}
