package utils

import (
	"fmt"
	"net/smtp"
)

// Mailer is the external SMTP collaborator behind the contact form.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

type SMTPMailer struct {
	Host     string
	Port     string
	User     string
	Password string
}

func NewSMTPMailer(host, port, user, password string) *SMTPMailer {
	return &SMTPMailer{Host: host, Port: port, User: user, Password: password}
}

func (m *SMTPMailer) Send(to, subject, htmlBody string) error {
	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.User, to, subject, htmlBody,
	)
	auth := smtp.PlainAuth("", m.User, m.Password, m.Host)
	return smtp.SendMail(m.Host+":"+m.Port, auth, m.User, []string{to}, []byte(msg))
}
