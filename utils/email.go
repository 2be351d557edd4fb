package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// Notifier delivers out-of-band notifications. The host environment
// (SMTP here, browser notifications in the original client) is hidden
// behind this interface so handlers never touch transport details.
type Notifier interface {
	Notify(to, subject, body string) error
}

type EmailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func GetEmailConfig() *EmailConfig {
	return &EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     os.Getenv("SMTP_PORT"),
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

// EmailNotifier sends notifications over SMTP using the environment
// configuration. It satisfies Notifier.
type EmailNotifier struct{}

func (EmailNotifier) Notify(to, subject, htmlBody string) error {
	return SendEmail(to, subject, htmlBody)
}

func SendEmail(to, subject, htmlBody string) error {
	config := GetEmailConfig()
	if config.Host == "" || config.Port == "" || config.From == "" {
		return fmt.Errorf("SMTP not configured")
	}

	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n",
		config.From, to, subject)
	msg := []byte(headers + htmlBody)

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	addr := config.Host + ":" + config.Port
	return smtp.SendMail(addr, auth, config.From, []string{to}, msg)
}

func SendWelcomeEmail(email, name string) {
	go func() {
		subject := "Welcome to Chitoro!"
		body := fmt.Sprintf(`<h2>Welcome to Chitoro, %s!</h2>
<p>Thank you for creating your account. You can now:</p>
<ul>
<li>Browse businesses across Zimbabwe with live opening hours</li>
<li>Add and maintain listings for your own business</li>
<li>Find the branches nearest to you</li>
</ul>
<p>The Chitoro Team</p>`, strings.Split(name, " ")[0])
		if err := SendEmail(email, subject, body); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}()
}
