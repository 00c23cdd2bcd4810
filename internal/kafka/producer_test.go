package kafka

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/vehiclerental/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProducer(t *testing.T) {
	p := NewProducer([]string{"localhost:9092"}, logger.Discard())
	defer p.Close()

	require.NotNil(t, p.writer)
	assert.Equal(t, []string{"localhost:9092"}, p.brokers)
}

func TestProducer_CheckConnectionWithoutBrokers(t *testing.T) {
	p := NewProducer(nil, logger.Discard())
	assert.Error(t, p.CheckConnection(context.Background()))
}

func TestBookingRequestEvent_JSON(t *testing.T) {
	event := BookingRequestEvent{
		Type:        EventBookingRequestSubmitted,
		Reference:   "ref-1",
		VehicleType: "van",
		PickupDate:  "2025-06-10",
		Email:       "john@example.com",
		SubmittedAt: time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(event)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fields))
	assert.Equal(t, "booking_request_submitted", fields["type"])
	assert.Equal(t, "2025-06-10", fields["pickup_date"])
	assert.NotContains(t, fields, "dropoff_location")
	assert.Equal(t, false, fields["go_keyless"])
}

func TestNewConsumer(t *testing.T) {
	c := NewConsumer([]string{"localhost:9092"}, "group", "notifications")
	require.NotNil(t, c.reader)
	assert.NoError(t, c.Close())

	var nilConsumer *Consumer
	assert.NoError(t, nilConsumer.Close())
}
