// Package email renders and delivers the intake notification mail. The
// template registry is fixed; delivery is plain SMTP with an HTML body and a
// text fallback.
package email

import (
	"fmt"
	"net/smtp"

	"github.com/avevent/backend/config"
)

type Sender struct {
	cfg config.EmailConfig
}

func NewSender(cfg config.EmailConfig) *Sender {
	return &Sender{cfg: cfg}
}

// IsEnabled reports whether real delivery is configured. Disabled senders
// log instead of dialing out, which keeps development environments quiet.
func (s *Sender) IsEnabled() bool {
	return s.cfg.Enabled
}

// AdminAddress is the configured recipient for staff-facing notifications.
func (s *Sender) AdminAddress() string {
	return s.cfg.AdminEmail
}

// Send renders the named template and delivers it to the recipient.
func (s *Sender) Send(template Template, to string, data Data) error {
	msg, err := Render(template, data)
	if err != nil {
		return err
	}
	return s.deliver(to, msg)
}

func (s *Sender) deliver(to string, msg Message) error {
	if !s.cfg.Enabled {
		fmt.Printf("[EMAIL] Would send to %s: %s\n", to, msg.Subject)
		return nil
	}
	if s.cfg.SMTPHost == "" || s.cfg.Username == "" || s.cfg.Password == "" {
		return fmt.Errorf("email service not properly configured")
	}

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.SMTPHost)

	from := s.cfg.FromEmail
	if s.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromEmail)
	}

	boundary := "----=_NextPart_1234567890"

	headers := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", msg.Subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=\"%s\"\r\n", boundary) +
		"\r\n"

	body := headers +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		msg.TextBody + "\r\n" +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" +
		msg.HTMLBody + "\r\n" +
		fmt.Sprintf("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)
	if err := smtp.SendMail(addr, auth, s.cfg.FromEmail, []string{to}, []byte(body)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
