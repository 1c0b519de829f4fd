package utils

import (
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

const senderName = "Maison du Pain"

// SendEmail delivers a transactional mail (order confirmation, pickup
// reminder) through the configured SMTP relay. The environment is loaded
// once at boot by db.Init.
func SendEmail(to, subject, body string) error {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", os.Getenv("EMAIL_USER"), senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		os.Getenv("SMTP_HOST"),
		port,
		os.Getenv("EMAIL_USER"),
		os.Getenv("EMAIL_PASS"),
	)

	return d.DialAndSend(m)
}
