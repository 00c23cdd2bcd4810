package email

import (
	"context"
	"errors"

	"github.com/Domenick1991/vehiclerental/internal/kafka"
	"github.com/sirupsen/logrus"
)

var ErrNoRecipient = errors.New("event has no recipient email")

// Sender delivers the booking acknowledgement to the customer. Delivery is a
// structured log entry until a mail provider is configured.
type Sender struct {
	log logrus.FieldLogger
}

func NewSender(log logrus.FieldLogger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingRequestEvent) error {
	if event.Email == "" {
		return ErrNoRecipient
	}
	s.log.WithFields(logrus.Fields{
		"to":          event.Email,
		"name":        event.FullName,
		"reference":   event.Reference,
		"event":       event.Type,
		"vehicle":     event.VehicleType,
		"pickup":      event.PickupDate + " " + event.PickupTime,
		"return":      event.ReturnDate + " " + event.ReturnTime,
		"description": event.Description,
	}).Info(event.Title)
	return nil
}
