package routes

import (
	paymentControllers "github.com/Muthurasu-6319/nrk-aura-shop/controllers/payment"
	"github.com/gin-gonic/gin"
)

func SetupPaymentRoutes(r *gin.Engine) {
	payment := r.Group("/orders")
	{
		// Create a gateway payment session for the cart total
		payment.POST("/payment-intent", paymentControllers.CreatePaymentOrderHandler)

		// Verify the gateway signature after client-side payment
		payment.POST("/verify-payment", paymentControllers.VerifyPaymentHandler)
	}
}
