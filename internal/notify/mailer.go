package notify

import "gopkg.in/gomail.v2"

// EmailSender is the outbound email transport seam. The SMTP implementation
// is swapped for a fake in tests.
type EmailSender interface {
	Send(to, subject, htmlBody string) error
}

type SMTPEmailSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPEmailSender(host string, port int, user, pass, from string) *SMTPEmailSender {
	return &SMTPEmailSender{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}
}

func (s *SMTPEmailSender) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, "Tour Packages")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)
	return s.dialer.DialAndSend(m)
}
