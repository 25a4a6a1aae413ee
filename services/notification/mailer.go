package notification

import (
	"context"
	"fmt"

	"tubtime/config"
	"tubtime/models"

	"gopkg.in/gomail.v2"
)

// Mailer sends mail over SMTP using the configured credentials.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer builds a Mailer from the loaded configuration.
func NewMailer() (*Mailer, error) {
	cfg := config.AppConfig
	if cfg.SMTPHost == "" || cfg.MailFrom == "" {
		return nil, fmt.Errorf("mailer: SMTP_HOST and MAIL_FROM must be configured")
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.MailFrom,
	}, nil
}

// Send delivers a single plain-text message.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mailer: failed to send to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("mailer: send to %s aborted: %w", to, ctx.Err())
	}
}

func slotLine(appt *models.Appointment) string {
	return fmt.Sprintf("%s at %s (%s)", appt.RequestedDate, appt.RequestedTime, appt.ServiceType)
}
