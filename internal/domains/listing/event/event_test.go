package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hostdeck/config"
	kafkaMocks "hostdeck/infras/kafka/mocks"
	otelMocks "hostdeck/infras/otel/mocks"
	"hostdeck/internal/domains/listing/event"
	cacheMocks "hostdeck/shared/cache/mocks"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func receive(t *testing.T, ch <-chan event.ListingChanged) event.ListingChanged {
	t.Helper()

	select {
	case change := <-ch:
		return change
	case <-time.After(time.Second):
		t.Fatal("no listing change received")
	}

	return event.ListingChanged{}
}

func TestHub_BroadcastPerOwner(t *testing.T) {
	hub := event.NewHub()

	mine, cancelMine := hub.Subscribe("host-1")
	defer cancelMine()

	theirs, cancelTheirs := hub.Subscribe("host-2")
	defer cancelTheirs()

	hub.Broadcast(event.NewListingChanged(event.OpUpdated, "listing-1", "host-1"))

	change := receive(t, mine)
	assert.Equal(t, "listing-1", change.ListingID)
	assert.Equal(t, event.OpUpdated, change.Op)

	select {
	case <-theirs:
		t.Fatal("change leaked to another owner")
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := event.NewHub()

	ch, cancel := hub.Subscribe("host-1")
	assert.Equal(t, 1, hub.Subscribers("host-1"))

	cancel()
	cancel()

	assert.Equal(t, 0, hub.Subscribers("host-1"))

	_, open := <-ch
	assert.False(t, open)

	hub.Broadcast(event.NewListingChanged(event.OpDeleted, "listing-1", "host-1"))
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := event.NewHub()

	_, cancel := hub.Subscribe("host-1")
	defer cancel()

	done := make(chan struct{})

	go func() {
		for range 100 {
			hub.Broadcast(event.NewListingChanged(event.OpUpdated, "listing-1", "host-1"))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on a full subscriber")
	}
}

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Listings = "hostdeck.listings"

	change := event.NewListingChanged(event.OpCreated, "listing-1", "host-1")

	tests := []struct {
		name      string
		setupMock func()
		local     bool
	}{
		{
			name: "kafka enabled",
			setupMock: func() {
				mockKafka.EXPECT().Enabled().Return(true)
				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "hostdeck.listings", gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "kafka failure is swallowed",
			setupMock: func() {
				mockKafka.EXPECT().Enabled().Return(true)
				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "hostdeck.listings", gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
		},
		{
			name: "kafka disabled delivers locally",
			setupMock: func() {
				mockKafka.EXPECT().Enabled().Return(false)
			},
			local: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			hub := event.NewHub()
			ch, cancel := hub.Subscribe("host-1")
			defer cancel()

			publisher := event.NewPublisher(mockKafka, hub, cfg, otelMocks.NewOtel())
			publisher.Publish(context.Background(), change)

			if tt.local {
				assert.Equal(t, change.ListingID, receive(t, ch).ListingID)
			} else {
				assert.Empty(t, ch)
			}
		})
	}
}

func TestConsumer_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	hub := event.NewHub()
	consumer := event.NewConsumer(kafkaMocks.NewMockClient(ctrl), mockCache, hub, &config.Config{})

	ch, cancel := hub.Subscribe("host-1")
	defer cancel()

	value, err := json.Marshal(event.NewListingChanged(event.OpSynced, "listing-1", "host-1"))
	require.NoError(t, err)

	gomock.InOrder(
		mockCache.EXPECT().Clear(gomock.Any(), "listing:get:host-1:listing-1*").Return(nil),
		mockCache.EXPECT().Clear(gomock.Any(), "listing:gets:host-1*").Return(nil),
		mockCache.EXPECT().Clear(gomock.Any(), "listing:count:host-1*").Return(errors.New("redis down")),
	)

	require.NoError(t, consumer.Handle(context.Background(), kafkaGo.Message{Key: []byte("host-1"), Value: value}))
	assert.Equal(t, event.OpSynced, receive(t, ch).Op)

	assert.Error(t, consumer.Handle(context.Background(), kafkaGo.Message{Value: []byte("not json")}))
}

func TestConsumer_RunDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockKafka.EXPECT().Enabled().Return(false)

	consumer := event.NewConsumer(mockKafka, cacheMocks.NewMockRedisCache(ctrl), event.NewHub(), &config.Config{})
	consumer.Run(context.Background(), "replica-1")
}

func TestConsumer_RunEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{}
	cfg.Kafka.ConsumerGroup = "hostdeck"
	cfg.Kafka.Topics.Listings = "hostdeck.listings"

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockKafka.EXPECT().Enabled().Return(true)
	mockKafka.EXPECT().Consume(gomock.Any(), "hostdeck.replica-1", "hostdeck.listings", gomock.Any())

	consumer := event.NewConsumer(mockKafka, cacheMocks.NewMockRedisCache(ctrl), event.NewHub(), cfg)
	consumer.Run(context.Background(), "replica-1")
}
