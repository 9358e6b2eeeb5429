// Package mail wraps the SMTP transport used for alert delivery. Retry and
// rate limiting are the mail provider's concern; callers only see an error.
package mail

import (
	"gopkg.in/gomail.v2"
)

// Sender delivers a single HTML message to one recipient.
type Sender interface {
	Send(to, subject, html string) error
}

// SMTPConfig carries the transport credentials, injected once at startup.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPSender sends mail through a gomail dialer. Construct once per process.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

var _ Sender = (*SMTPSender)(nil)

func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send dials the SMTP server and delivers one message. Each call opens its
// own connection; alert volume is low enough that pooling isn't worth it.
func (s *SMTPSender) Send(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)
	return s.dialer.DialAndSend(m)
}
