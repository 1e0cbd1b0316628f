package mailer

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"
)

type Mailer interface {
	SendVerificationCode(email, code string, resend bool) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// New returns an SMTP mailer, or a log-only mailer when no host is configured
// so local setups still work without a mail relay.
func New(host string, port int, user, pass, from string) Mailer {
	if host == "" {
		log.Printf("[mail] SMTP not configured, codes are logged only")
		return logMailer{}
	}
	return &smtpMailer{dialer: gomail.NewDialer(host, port, user, pass), from: from}
}

func (m *smtpMailer) SendVerificationCode(email, code string, resend bool) error {
	subject := "Smart Greenhouse Verification Code"
	body := fmt.Sprintf("Your verification code is: %s", code)
	if resend {
		subject += " (Resend)"
		body = fmt.Sprintf("Your new verification code is: %s", code)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}

type logMailer struct{}

func (logMailer) SendVerificationCode(email, code string, resend bool) error {
	log.Printf("[mail] verification code for %s: %s (resend=%v)", email, code, resend)
	return nil
}
