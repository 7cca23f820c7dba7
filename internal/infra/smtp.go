package infra

import (
	"bytes"
	"fmt"
	"net/smtp"

	"github.com/danyol08/transaction/internal/config"

	"github.com/jordan-wright/email"
)

// Mailer wraps SMTP configuration for sending report e-mails.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
	addr     string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		user:     cfg.SMTPUser,
		password: cfg.SMTPPassword,
		addr:     fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
	}
}

// SendReport mails a generated report as a CSV attachment.
func (m *Mailer) SendReport(to, subject, body string, attachment []byte, filename string) error {
	e := email.NewEmail()
	e.From = m.user
	e.To = []string{to}
	e.Subject = subject
	e.Text = []byte(body)

	if len(attachment) > 0 {
		if _, err := e.Attach(bytes.NewReader(attachment), filename, "text/csv"); err != nil {
			return fmt.Errorf("mailer: attach report: %w", err)
		}
	}

	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return e.Send(m.addr, auth)
}
