package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/vheb/biomap/internal/adapter"
	"github.com/vheb/biomap/internal/logger"
	"github.com/vheb/biomap/models"
)

// contactService is the concrete implementation of [ContactService].
type contactService struct {
	mailer adapter.Mailer
	logger *logger.Logger
}

// NewContactService constructs a [ContactService] over the given mailer.
func NewContactService(mailer adapter.Mailer, logger *logger.Logger) ContactService {
	return &contactService{
		mailer: mailer,
		logger: logger,
	}
}

// Send validates the message and relays it to the operator address.
//
// Returns:
//   - [ErrInvalidDataProvided] when a required field is blank.
//   - [ErrContactDeliveryFailed] (wrapping the transport reason) when the
//     relay fails; the caller should prompt the user to retry.
func (c *contactService) Send(ctx context.Context, msg models.ContactMessage) error {
	log := logger.FromContext(ctx)

	msg.Name = strings.TrimSpace(msg.Name)
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Subject = strings.TrimSpace(msg.Subject)
	msg.Message = strings.TrimSpace(msg.Message)

	if msg.Name == "" || msg.Email == "" || msg.Subject == "" || msg.Message == "" {
		return ErrInvalidDataProvided
	}

	if err := c.mailer.Send(ctx, msg); err != nil {
		log.Err(err).Str("from", msg.Email).Msg("contact message relay failed")
		return fmt.Errorf("%w: %w", ErrContactDeliveryFailed, err)
	}

	return nil
}
