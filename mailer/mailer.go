// Package mailer sends generated invoice documents to the shop operator.
package mailer

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/vojniknikola-ui/strojopromet-api/invoice"
)

type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewFromEnv reads SMTP_HOST, SMTP_PORT, SMTP_USER, SMTP_PASSWORD and
// SMTP_FROM. Returns nil when no host is configured; the invoice service
// treats a nil mailer as "delivery disabled".
func NewFromEnv() *SMTPMailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil
	}
	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}
	from := os.Getenv("SMTP_FROM")
	if from == "" {
		from = os.Getenv("SMTP_USER")
	}
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: os.Getenv("SMTP_USER"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     from,
	}
}

var _ invoice.Mailer = (*SMTPMailer)(nil)

func (m *SMTPMailer) SendInvoice(to, number string, document []byte) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Novi predračun "+number)
	msg.SetBody("text/plain", fmt.Sprintf("U prilogu je predračun %s.", number))
	msg.Attach(invoice.Filename(number), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(document)
		return err
	}))

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	return dialer.DialAndSend(msg)
}
