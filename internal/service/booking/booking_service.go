package booking

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/vehiclerental/internal/domain"
	"github.com/Domenick1991/vehiclerental/internal/kafka"
	"github.com/Domenick1991/vehiclerental/internal/validation"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrDuplicateSubmission = errors.New("this booking request was already submitted")

type BookingUseCase interface {
	SubmitBookingRequest(ctx context.Context, req domain.BookingRequest) (*domain.Submission, error)
}

type Cache interface {
	AcquireSubmissionLock(ctx context.Context, fingerprint string, ttl time.Duration) (bool, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	cache              Cache
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	lockTTL            time.Duration
	log                logrus.FieldLogger
	now                func() time.Time
	newReference       func() string
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// NewBookingService wires the submission flow. cache and producer may be nil, in
// which case duplicate detection and event publishing are skipped.
func NewBookingService(
	cache Cache,
	producer Producer,
	bookingTopic string,
	lockTTL time.Duration,
	log logrus.FieldLogger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		cache:        cache,
		producer:     producer,
		bookingTopic: bookingTopic,
		lockTTL:      lockTTL,
		log:          log,
		now:          time.Now,
		newReference: uuid.NewString,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// SubmitBookingRequest validates req and, if it is well-formed, acknowledges it
// and announces it on the event bus. Nothing is stored.
func (s *BookingService) SubmitBookingRequest(ctx context.Context, req domain.BookingRequest) (*domain.Submission, error) {
	if err := validation.ValidateBookingRequest(req).Err(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		fingerprint := Fingerprint(req)
		ok, err := s.cache.AcquireSubmissionLock(ctx, fingerprint, s.lockTTL)
		if err != nil {
			return nil, fmt.Errorf("acquire submission lock: %w", err)
		}
		if !ok {
			return nil, ErrDuplicateSubmission
		}
	}

	submission := &domain.Submission{
		Reference:   s.newReference(),
		Title:       domain.SubmissionTitle,
		Description: domain.SubmissionDescription,
		SubmittedAt: s.now().UTC(),
		Request:     req,
	}

	if err := s.publish(ctx, kafka.EventBookingRequestSubmitted, submission); err != nil {
		s.log.WithError(err).WithField("reference", submission.Reference).Warn("failed to publish booking request event")
	}

	s.log.WithFields(logrus.Fields{
		"reference":    submission.Reference,
		"vehicle_type": req.VehicleType,
		"pickup_date":  req.PickupDate.String(),
	}).Info("booking request accepted")

	return submission, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, sub *domain.Submission) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := newEvent(eventType, sub)
	if err := s.producer.Publish(ctx, s.bookingTopic, sub.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, sub.Reference, event)
	}
	return nil
}

func newEvent(eventType string, sub *domain.Submission) kafka.BookingRequestEvent {
	req := sub.Request
	return kafka.BookingRequestEvent{
		Type:            eventType,
		Reference:       sub.Reference,
		VehicleType:     string(req.VehicleType),
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		PickupDate:      req.PickupDate.String(),
		PickupTime:      req.PickupTime,
		ReturnDate:      req.ReturnDate.String(),
		ReturnTime:      req.ReturnTime,
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		SpecialRequests: req.SpecialRequests,
		GoKeyless:       req.GoKeyless,
		Title:           sub.Title,
		Description:     sub.Description,
		SubmittedAt:     sub.SubmittedAt,
	}
}

// Fingerprint identifies "the same" booking request for duplicate detection.
func Fingerprint(req domain.BookingRequest) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		strings.ToLower(strings.TrimSpace(req.Email)),
		string(req.VehicleType),
		req.PickupDate.String(),
		req.PickupTime,
	}, "|")))
	return hex.EncodeToString(sum[:])
}

var _ BookingUseCase = (*BookingService)(nil)
