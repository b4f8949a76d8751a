package adapter

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/vheb/biomap/internal/config"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/models"
)

// mailClient relays contact-form messages to the operator address over SMTP.
// It implements [Mailer].
type mailClient struct {
	cfg    config.Mail
	logger *logger.Logger
}

// NewMailClient constructs a [Mailer] for the configured SMTP relay.
func NewMailClient(cfg config.Mail, logger *logger.Logger) Mailer {
	return &mailClient{cfg: cfg, logger: logger}
}

// Send implements [Mailer]. The visitor's address goes into Reply-To so the
// operator can answer directly; the configured From stays the envelope
// sender to satisfy SPF-checking relays.
func (m *mailClient) Send(ctx context.Context, msg models.ContactMessage) error {
	if m.cfg.SMTPHost == "" || m.cfg.From == "" || m.cfg.OperatorAddress == "" {
		return ErrMailNotConfigured
	}

	message := mail.NewMsg()
	if err := message.From(m.cfg.From); err != nil {
		return fmt.Errorf("set mail sender: %w", err)
	}
	if err := message.To(m.cfg.OperatorAddress); err != nil {
		return fmt.Errorf("set mail recipient: %w", err)
	}
	if msg.Email != "" {
		if err := message.ReplyTo(msg.Email); err != nil {
			return fmt.Errorf("set mail reply-to: %w", err)
		}
	}

	message.Subject(fmt.Sprintf("[biomap contact] %s", msg.Subject))
	message.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("From: %s <%s>\n\n%s", msg.Name, msg.Email, msg.Message))

	client, err := mail.NewClient(m.cfg.SMTPHost,
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("create smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, message); err != nil {
		return fmt.Errorf("send contact mail: %w", err)
	}

	return nil
}
