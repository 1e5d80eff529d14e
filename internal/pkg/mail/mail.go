package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"

	"homeserve/internal/config"
	"homeserve/internal/pkg/logger"
)

// Mailer delivers outbound email. The core treats delivery as a narrow
// collaborator; failures surface to the caller unchanged.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, body string) error
}

type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Send(_ context.Context, to []string, subject, body string) error {
	addr := m.cfg.Host + ":" + m.cfg.Port
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.cfg.From, strings.Join(to, ", "), subject, body)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	return smtp.SendMail(addr, auth, m.cfg.From, to, []byte(msg))
}

// ConsoleMailer logs instead of sending; used in development and tests.
type ConsoleMailer struct{}

func (ConsoleMailer) Send(_ context.Context, to []string, subject, _ string) error {
	logger.L().Info("dev mail",
		zap.Strings("to", to),
		zap.String("subject", subject),
	)
	return nil
}
