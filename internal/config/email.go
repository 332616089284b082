package config

import (
	"os"
	"strconv"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer delivers transactional mail (password resets). The plain reset
// token travels only through this boundary, never into storage.
type Mailer interface {
	Send(to, subject, body string) error
}

// NewMailer picks the SMTP transport when SMTP_HOST is configured and
// falls back to the Resend API otherwise.
func NewMailer(log *zap.Logger) Mailer {
	if os.Getenv("SMTP_HOST") != "" {
		return newSMTPMailer(log)
	}
	return newResendMailer(log)
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	log    *zap.Logger
}

func newSMTPMailer(log *zap.Logger) *smtpMailer {
	host := os.Getenv("SMTP_HOST")
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		log.Fatal("invalid SMTP_PORT", zap.Error(err))
	}
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("FROM_EMAIL")
	if from == "" {
		from = user
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
		log:    log,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return err
	}
	m.log.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

type resendMailer struct {
	client *resend.Client
	from   string
	log    *zap.Logger
}

func newResendMailer(log *zap.Logger) *resendMailer {
	apiKey := os.Getenv("RESEND_API_KEY")
	from := os.Getenv("FROM_EMAIL")
	if apiKey == "" || from == "" {
		log.Fatal("RESEND_API_KEY and FROM_EMAIL must be set when SMTP_HOST is not")
	}
	return &resendMailer{client: resend.NewClient(apiKey), from: from, log: log}
}

func (m *resendMailer) Send(to, subject, body string) error {
	_, err := m.client.Emails.Send(&resend.SendEmailRequest{
		From:    m.from,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		m.log.Error("failed to send email", zap.String("to", to), zap.Error(err))
		return err
	}
	m.log.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
