package main

import (
	"crypto/tls"
	"errors"
	"fmt"
	"log"

	"github.com/wneessen/go-mail"
)

var errSMTPNotConfigured = errors.New("SMTP credentials not configured")

// contactSender delivers contact form submissions.
type contactSender interface {
	SendContact(name, email, message string) error
}

type smtpMailer struct {
	host     string
	port     int
	user     string
	password string
	to       string
}

func newSMTPMailer(cfg Config) *smtpMailer {
	return &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPass,
		to:       cfg.ToEmail,
	}
}

func contactBody(name, email, message string) string {
	return fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, name, email, message)
}

func (m *smtpMailer) SendContact(name, email, message string) error {
	if m.user == "" || m.password == "" {
		return errSMTPNotConfigured
	}

	msg := mail.NewMsg()
	if err := msg.From(m.user); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	if err := msg.ReplyTo(email); err != nil {
		return fmt.Errorf("set reply-to %q: %w", email, err)
	}
	msg.Subject(fmt.Sprintf("Portfolio Contact: %s", name))
	msg.SetBodyString(mail.TypeTextPlain, contactBody(name, email, message))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{ServerName: m.host}),
	)
	if err != nil {
		return fmt.Errorf("create SMTP client (host=%s port=%d): %w", m.host, m.port, err)
	}

	if err := client.DialAndSend(msg); err != nil {
		log.Printf("Error sending email: %v", err)
		return fmt.Errorf("send contact email (host=%s port=%d): %w", m.host, m.port, err)
	}

	log.Printf("Email sent successfully from %s (%s)", name, email)
	return nil
}
