// Package mail sends transactional account emails over SMTP.
package mail

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/dtroode/accounts-server/internal/config"
	"github.com/dtroode/accounts-server/internal/logger"
	"github.com/dtroode/accounts-server/internal/model"
)

//go:embed templates/*.html
var templateFS embed.FS

var _ model.Mailer = (*SMTPMailer)(nil)

// sendFunc matches smtp.SendMail; injectable for tests.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer delivers emails through a plain SMTP relay. Verification and
// password-reset links are built from the configured application base URL.
type SMTPMailer struct {
	cfg       config.SMTP
	baseURL   string
	templates *template.Template
	logger    *logger.Logger
	send      sendFunc
}

// NewSMTPMailer creates a mailer from SMTP configuration. It parses the
// embedded templates once; rendering failures after construction indicate a
// template/data mismatch, not a missing file.
func NewSMTPMailer(cfg config.SMTP, baseURL string, logger *logger.Logger) (*SMTPMailer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &SMTPMailer{
		cfg:       cfg,
		baseURL:   baseURL,
		templates: templates,
		logger:    logger.With("component", "mailer"),
		send:      smtp.SendMail,
	}, nil
}

type templateData struct {
	Name string
	Link string
}

// SendVerificationEmail sends the account verification link to a new user.
func (m *SMTPMailer) SendVerificationEmail(ctx context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/v1/api/auth/verify?token=%s", m.baseURL, token)
	return m.sendTemplate(ctx, to, "Verify your email address", "verification.html", templateData{Name: name, Link: link})
}

// SendPasswordResetEmail sends the password reset link to a user.
func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", m.baseURL, token)
	return m.sendTemplate(ctx, to, "Reset your password", "reset.html", templateData{Name: name, Link: link})
}

func (m *SMTPMailer) sendTemplate(ctx context.Context, to, subject, templateName string, data templateData) error {
	body, err := m.renderTemplate(templateName, data)
	if err != nil {
		return err
	}

	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		m.cfg.From, to, subject, body,
	))

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%s", m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.From, []string{to}, msg); err != nil {
		m.logger.Error("Mailer: failed to send email",
			"to", to,
			"subject", subject,
			"error", err.Error())
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.logger.Info("Mailer: email sent",
		"to", to,
		"subject", subject)

	return nil
}

func (m *SMTPMailer) renderTemplate(name string, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := m.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render email template %s: %w", name, err)
	}
	return buf.String(), nil
}
