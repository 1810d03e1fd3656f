package mailing

import (
	"ShareBite-Backend/internal/utils"
	"fmt"
	"strconv"

	"gopkg.in/gomail.v2"
)

type (
	MailConfig struct {
		AppURL       string
		SMTPHost     string
		SMTPPort     string
		SMTPSender   string
		SMTPEmail    string
		SMTPPassword string
	}

	Mailer interface {
		SendMail(toEmail string, subject string, body string) error
	}

	smtpMailer struct {
		config MailConfig
	}

	noopMailer struct{}
)

func LoadMailConfig(config *utils.Config) MailConfig {
	return MailConfig{
		AppURL:       config.AppURL,
		SMTPHost:     config.SMTPHost,
		SMTPPort:     config.SMTPPort,
		SMTPSender:   config.SMTPSenderName,
		SMTPEmail:    config.SMTPAuthEmail,
		SMTPPassword: config.SMTPAuthPassword,
	}
}

// NewMailer returns an SMTP mailer, or a mailer that drops every message when
// SMTP is not configured.
func NewMailer(config *utils.Config) Mailer {
	if !config.MailingEnabled() {
		return noopMailer{}
	}
	return &smtpMailer{config: LoadMailConfig(config)}
}

func (m *smtpMailer) SendMail(toEmail string, subject string, body string) error {
	mailer := gomail.NewMessage()
	if m.config.SMTPSender != "" {
		mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	} else {
		mailer.SetHeader("From", m.config.SMTPEmail)
	}
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)

	port, err := strconv.Atoi(m.config.SMTPPort)
	if err != nil {
		return fmt.Errorf("smtp port %q: %w", m.config.SMTPPort, err)
	}
	dialer := gomail.NewDialer(
		m.config.SMTPHost,
		port,
		m.config.SMTPEmail,
		m.config.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

func (noopMailer) SendMail(toEmail string, subject string, body string) error {
	return nil
}
