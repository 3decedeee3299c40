// services/mailer.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/gomail.v2"
)

const mailAttempts = 3

// Mailer sends email as a background task. Send returns immediately; the
// caller may await the channel or drop it. Delivery failures are retried with
// backoff and logged, never surfaced to HTTP callers.
type Mailer interface {
	Send(to, subject, body string) <-chan error
}

// SMTPMailer delivers mail over SMTP
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

var _ Mailer = (*SMTPMailer)(nil)

// NewSMTPMailerFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASS and
// SMTP_FROM from the environment
func NewSMTPMailerFromEnv() *SMTPMailer {
	port := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &port)
	}

	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}

	return &SMTPMailer{
		host:     os.Getenv("SMTP_HOST"),
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASS"),
		from:     from,
	}
}

// Send queues the message on a fresh goroutine and returns its result channel
func (m *SMTPMailer) Send(to, subject, body string) <-chan error {
	result := make(chan error, 1)

	go func() {
		var err error
		backoff := 2 * time.Second
		for attempt := 1; attempt <= mailAttempts; attempt++ {
			if err = m.sendOnce(to, subject, body); err == nil {
				result <- nil
				return
			}
			log.Printf("Failed to send email to %s (attempt %d/%d): %v", to, attempt, mailAttempts, err)
			if attempt < mailAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		result <- err
	}()

	return result
}

func (m *SMTPMailer) sendOnce(to, subject, body string) error {
	if m.host == "" {
		return fmt.Errorf("SMTP is not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return d.DialAndSend(msg)
}

// CredentialsEmailBody is the out-of-band message carrying generated login
// credentials for a new account
func CredentialsEmailBody(fullName, email, password string) string {
	return fmt.Sprintf("Dear %s,\n\nYour faculty portal account has been created.\n\nEmail: %s\nTemporary password: %s\n\nPlease log in and change your password, then complete your profile.\n\nBest regards,\nFaculty Portal Team", fullName, email, password)
}

// PasswordResetEmailBody carries the time-limited reset link
func PasswordResetEmailBody(fullName, resetLink string) string {
	return fmt.Sprintf("Dear %s,\n\nA password reset was requested for your account. Use the link below within 15 minutes:\n\n%s\n\nIf you did not request this, ignore this message.\n\nBest regards,\nFaculty Portal Team", fullName, resetLink)
}

// CircularEmailBody is the digest sent to all staff when a circular is
// published
func CircularEmailBody(fullName, heading, body string) string {
	return fmt.Sprintf("Dear %s,\n\nA new circular has been published:\n\n%s\n\n%s\n\nBest regards,\nFaculty Portal Team", fullName, heading, body)
}
