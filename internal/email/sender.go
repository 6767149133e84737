// Package email implements the transactional notification sender. Delivery
// is always best-effort: callers log failures and never fail the parent
// operation on them.
package email

import (
	"gopkg.in/gomail.v2"

	"cofounderbase/internal/config"
	"cofounderbase/internal/logger"
)

// Sender dispatches the two transactional emails the product sends.
type Sender interface {
	SendSubmissionConfirmation(to, name string) error
	SendProfileApproval(to, name, profileURL string) error
}

// SMTPSender delivers via SMTP using gomail.
type SMTPSender struct {
	cfg    config.SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (s *SMTPSender) SendSubmissionConfirmation(to, name string) error {
	htmlBody, textBody, err := renderSubmission(name)
	if err != nil {
		return err
	}
	return s.send(to, submissionSubject, textBody, htmlBody)
}

func (s *SMTPSender) SendProfileApproval(to, name, profileURL string) error {
	htmlBody, textBody, err := renderApproval(name, profileURL)
	if err != nil {
		return err
	}
	return s.send(to, approvalSubject, textBody, htmlBody)
}

func (s *SMTPSender) send(to, subject, textBody, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.FromEmail, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)

	return s.dialer.DialAndSend(m)
}

// LogSender is the development fallback when SMTP is unconfigured. It only
// records what would have been sent.
type LogSender struct{}

func (LogSender) SendSubmissionConfirmation(to, name string) error {
	logger.Info("email (log only): submission confirmation", "to", to, "name", name)
	return nil
}

func (LogSender) SendProfileApproval(to, name, profileURL string) error {
	logger.Info("email (log only): profile approval", "to", to, "name", name, "profileUrl", profileURL)
	return nil
}

// FromConfig picks the SMTP sender when a host is configured and the log
// sender otherwise.
func FromConfig(cfg config.SMTPConfig) Sender {
	if cfg.Host == "" {
		logger.Warn("SMTP not configured, emails will only be logged")
		return LogSender{}
	}
	return NewSMTPSender(cfg)
}
