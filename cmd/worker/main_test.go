package main

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/vehiclerental/internal/email"
	"github.com/Domenick1991/vehiclerental/internal/kafka"
	"github.com/Domenick1991/vehiclerental/internal/logger"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, event kafka.BookingRequestEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func TestHandleMessage(t *testing.T) {
	ctx := context.Background()
	sender := &MockSender{}
	sender.On("Send", ctx, mock.MatchedBy(func(e kafka.BookingRequestEvent) bool {
		return e.Reference == "ref-1" && e.Email == "john@example.com"
	})).Return(nil).Once()

	err := handleMessage(ctx, sender, logger.Discard(), kafkaGo.Message{
		Value: []byte(`{"type":"booking_request_submitted","reference":"ref-1","email":"john@example.com"}`),
	})

	assert.NoError(t, err)
	sender.AssertExpectations(t)
}

func TestHandleMessage_BadPayloadIsSkipped(t *testing.T) {
	sender := &MockSender{}

	err := handleMessage(context.Background(), sender, logger.Discard(), kafkaGo.Message{Value: []byte("not json")})

	assert.NoError(t, err)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandleMessage_SenderErrors(t *testing.T) {
	ctx := context.Background()
	msg := kafkaGo.Message{Value: []byte(`{"reference":"ref-2"}`)}

	skip := &MockSender{}
	skip.On("Send", ctx, mock.Anything).Return(email.ErrNoRecipient).Once()
	assert.NoError(t, handleMessage(ctx, skip, logger.Discard(), msg))

	fatal := &MockSender{}
	sendErr := errors.New("smtp down")
	fatal.On("Send", ctx, mock.Anything).Return(sendErr).Once()
	assert.ErrorIs(t, handleMessage(ctx, fatal, logger.Discard(), msg), sendErr)
}
