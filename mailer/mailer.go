package mailer

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// Send delivers one HTML email. Failures are logged and swallowed so a
// broken mail relay can never fail an already-placed order.
func Send(to, subject, htmlBody string) {
	user := os.Getenv("EMAIL_USER")
	pass := os.Getenv("EMAIL_PASS")
	if user == "" || pass == "" {
		log.Println("📧 Email skipped: EMAIL_USER / EMAIL_PASS not configured")
		return
	}

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil && p > 0 {
		port = p
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(user, "NRK Aura"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(host, port, user, pass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("❌ Email sending failed (to %s): %v", to, err)
		return
	}
	log.Printf("📧 Email sent successfully to %s", to)
}

// AdminAddress is where order and contact-form alerts go. Falls back to the
// sending account when ADMIN_EMAIL is unset.
func AdminAddress() string {
	if addr := os.Getenv("ADMIN_EMAIL"); addr != "" {
		return addr
	}
	return os.Getenv("EMAIL_USER")
}
