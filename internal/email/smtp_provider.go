package email

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

func (c *SMTPConfig) Validate() error {
	if c.Host == "" || c.Port == 0 || c.FromEmail == "" {
		return fmt.Errorf("configuración SMTP incompleta")
	}
	return nil
}

// SMTPProvider envía correos vía SMTP usando gomail.
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTML)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("no se pudo enviar el correo: %w", err)
	}
	return nil
}
