package email

import (
	"gopkg.in/gomail.v2"
)

// SMTPConfig holds SMTP transport settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPClient delivers messages over SMTP.
type SMTPClient struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPClient creates the SMTP client.
func NewSMTPClient(cfg SMTPConfig) *SMTPClient {
	return &SMTPClient{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers a single HTML message.
func (c *SMTPClient) Send(to, toName, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetAddressHeader("To", to, toName)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return c.dialer.DialAndSend(m)
}
