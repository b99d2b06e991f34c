package notify

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// sendTimeout bounds a whole SMTP exchange when ctx carries no earlier
// deadline.
const sendTimeout = 30 * time.Second

// MailConfig holds SMTP settings.
type MailConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

// Enabled reports whether a host is configured.
func (c *MailConfig) Enabled() bool {
	return strings.TrimSpace(c.Host) != ""
}

// Validate checks required fields and applies defaults.
func (c *MailConfig) Validate() error {
	if c.Host == "" {
		return errors.New("smtp: host is required")
	}
	if c.From == "" {
		return errors.New("smtp: from is required")
	}
	if c.Port == "" {
		c.Port = "587"
	}
	return nil
}

// Mailer sends lead notifications as plain text email.
type Mailer struct {
	config MailConfig
	strip  *bluemonday.Policy
}

// NewMailer validates cfg and returns a Mailer.
func NewMailer(cfg MailConfig) (*Mailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Mailer{config: cfg, strip: bluemonday.StrictPolicy()}, nil
}

// Notify mails fields to the address in destination.
func (m *Mailer) Notify(ctx context.Context, destination string, fields map[string]string) error {
	to := strings.TrimSpace(destination)
	if to == "" {
		return ErrNoDestination
	}

	subject := "New Lead"
	if name := m.plain(fields["full_name"]); name != "" {
		subject = "New Lead: " + name
	}
	msg := buildMessage(m.config.From, to, subject, m.formatBody(fields))
	if err := m.send(ctx, to, msg); err != nil {
		return fmt.Errorf("send lead mail: %w", err)
	}

	slog.InfoContext(ctx, "lead mail sent", "to", to)
	return nil
}

// formatBody writes one "key: value" line per field with markup removed.
func (m *Mailer) formatBody(fields map[string]string) string {
	var sb strings.Builder
	for _, k := range sortedKeys(fields) {
		sb.WriteString(k)
		sb.WriteString(": ")
		sb.WriteString(m.plain(fields[k]))
		sb.WriteString("\r\n")
	}
	return sb.String()
}

// plain strips markup from a field. The mail is text/plain, so the entities
// the sanitizer escapes are turned back into characters.
func (m *Mailer) plain(value string) string {
	return html.UnescapeString(m.strip.Sanitize(value))
}

func (m *Mailer) send(ctx context.Context, to, msg string) error {
	addr := net.JoinHostPort(m.config.Host, m.config.Port)

	deadline := time.Now().Add(sendTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	dialer := &net.Dialer{Deadline: deadline}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}
	// The deadline covers the greeting, STARTTLS and DATA as well as the dial.
	if err := conn.SetDeadline(deadline); err != nil {
		_ = conn.Close()
		return fmt.Errorf("set deadline: %w", err)
	}

	client, err := smtp.NewClient(conn, m.config.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer func() {
		if err := client.Quit(); err != nil {
			slog.WarnContext(ctx, "smtp quit failed", "err", err)
		}
	}()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: m.config.Host, MinVersion: tls.VersionTLS12}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}

	if m.config.Username != "" {
		auth := smtp.PlainAuth("", m.config.Username, m.config.Password, m.config.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("auth: %w", err)
		}
	}

	if err := client.Mail(m.config.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("rcpt to %s: %w", to, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) string {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + to + "\r\n")
	sb.WriteString("Subject: " + strings.NewReplacer("\r", " ", "\n", " ").Replace(subject) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	sb.WriteString(body)
	return sb.String()
}
