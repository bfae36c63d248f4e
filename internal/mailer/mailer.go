package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"moshood-fashion/internal/config"

	"github.com/rs/zerolog"
)

// Mailer sends HTML email through the configured relay.
type Mailer interface {
	// Send delivers one HTML message to a single recipient.
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// smtpMailer implements Mailer over a plain or implicit-TLS SMTP relay.
type smtpMailer struct {
	cfg    config.SMTPConfig
	logger zerolog.Logger
}

// NewSMTPMailer creates a new SMTP-backed mailer.
func NewSMTPMailer(cfg config.SMTPConfig, logger zerolog.Logger) Mailer {
	return &smtpMailer{
		cfg:    cfg,
		logger: logger.With().Str("component", "mailer").Logger(),
	}
}

// Send delivers one HTML message to a single recipient.
func (m *smtpMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := m.buildMessage(to, subject, htmlBody)

	var err error
	if m.cfg.Secure {
		err = m.sendTLS(to, msg)
	} else {
		err = m.sendPlain(to, msg)
	}
	if err != nil {
		m.logger.Error().Err(err).Str("to", to).Str("subject", subject).Msg("failed to send email")
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	m.logger.Debug().Str("to", to).Str("subject", subject).Msg("email sent")
	return nil
}

func (m *smtpMailer) from() string {
	return fmt.Sprintf("%q <%s>", m.cfg.SenderName, m.cfg.User)
}

func (m *smtpMailer) buildMessage(to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + m.from() + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	return []byte(b.String())
}

// sendPlain uses STARTTLS when the relay advertises it.
func (m *smtpMailer) sendPlain(to string, msg []byte) error {
	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(m.cfg.Address(), auth, m.cfg.User, []string{to}, msg)
}

// sendTLS connects over implicit TLS (typically port 465).
func (m *smtpMailer) sendTLS(to string, msg []byte) error {
	conn, err := tls.Dial("tcp", m.cfg.Address(), &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("failed to dial relay: %w", err)
	}

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if m.cfg.User != "" {
		auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(m.cfg.User); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}
