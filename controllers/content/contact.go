package contentControllers

import (
	"fmt"
	"net/http"

	"github.com/Muthurasu-6319/nrk-aura-shop/mailer"
	"github.com/gin-gonic/gin"
)

type ContactFormRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// ContactForm forwards the message to the concierge inbox and confirms
// receipt to the sender.
func ContactForm(c *gin.Context) {
	var req ContactFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminHTML := fmt.Sprintf(`
		<h2>New Contact Form Message Received 📧</h2>
		<p>You have received a new message from the contact form.</p>
		<hr/>
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Subject:</strong> %s</p>
		<h3>Message:</h3>
		<p style="border: 1px solid #ccc; padding: 15px; background-color: #f9f9f9; white-space: pre-wrap;">%s</p>`,
		req.Name, req.Email, req.Subject, req.Message)

	confirmationHTML := fmt.Sprintf(`
		<h2>Thank You for Contacting NRK Aura!</h2>
		<p>Dear %s,</p>
		<p>We have successfully received your message regarding: <strong>%s</strong>.</p>
		<p>Our concierge will review your inquiry and aim to respond within 24 hours.</p>`,
		req.Name, req.Subject)

	go func() {
		mailer.Send(mailer.AdminAddress(), fmt.Sprintf("[Contact Form] %s from %s", req.Subject, req.Name), adminHTML)
		mailer.Send(req.Email, "Confirmation: Your Message to NRK Aura", confirmationHTML)
	}()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Message sent successfully"})
}
