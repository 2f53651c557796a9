package auth

import (
	"errors"
	"fmt"

	"icoltex-hub/core/config"

	"gopkg.in/gomail.v2"
)

// ErrMailNotConfigured is returned when a code must be sent but no SMTP
// credentials are present.
var ErrMailNotConfigured = errors.New("smtp not configured: missing MAIL_USER or MAIL_PASSWORD")

// Mailer delivers one-time codes to an email address.
type Mailer interface {
	SendOTP(to, code, purpose string) error
}

// SMTPMailer sends codes over SMTP.
type SMTPMailer struct {
	cfg config.MailConfig
}

// NewSMTPMailer creates a mailer for the configured SMTP server.
func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendOTP delivers a one-time code. The message is plain text: the codes are
// short-lived and the body carries nothing sensitive beyond the code itself.
func (m *SMTPMailer) SendOTP(to, code, purpose string) error {
	if !m.cfg.Configured() {
		return ErrMailNotConfigured
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.User
	}

	subject := "Tu código de acceso"
	if purpose == "register" {
		subject = "Tu código de registro"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", fmt.Sprintf(
		"Tu código de verificación es: %s\n\nEste código expira pronto. Si no lo solicitaste, ignora este mensaje.\n", code))

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending otp mail: %w", err)
	}
	return nil
}
