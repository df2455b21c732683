package mail

import (
	"fmt"

	"mindcare-backend/config"

	"github.com/go-gomail/gomail"
)

// Mailer delivers outbound mail over SMTP.
type Mailer struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func NewMailer(cfg config.SMTPConfig) *Mailer {
	return &Mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
	}
}

// SendContactMessage forwards a contact-form submission to the support address.
func (m *Mailer) SendContactMessage(name, email, subject, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.User)
	msg.SetHeader("To", m.cfg.SupportAddr)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", fmt.Sprintf("New message from %s: %s", name, subject))
	msg.SetBody("text/plain", fmt.Sprintf(
		"You have a new message from the contact form.\n\nName: %s\nEmail: %s\n\n%s\n",
		name, email, message,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("error sending email: %w", err)
	}

	return nil
}
