package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"time"

	"hostdeck/config"
	"hostdeck/infras/kafka"
	"hostdeck/infras/otel"
	"hostdeck/shared/constant"
	"hostdeck/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Op string

const (
	OpCreated      Op = "created"
	OpUpdated      Op = "updated"
	OpDeleted      Op = "deleted"
	OpSynced       Op = "synced"
	OpAvailability Op = "availability"
)

// ListingChanged is published after every committed listing write.
type ListingChanged struct {
	Op         Op        `json:"op"`
	ListingID  string    `json:"listing_id"`
	OwnerID    string    `json:"owner_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewListingChanged(op Op, listingID, ownerID string) ListingChanged {
	return ListingChanged{
		Op:         op,
		ListingID:  listingID,
		OwnerID:    ownerID,
		OccurredAt: timezone.Now(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, change ListingChanged)
}

type publisherImpl struct {
	kafka kafka.Client
	hub   *Hub
	cfg   *config.Config
	otel  otel.Otel
}

// NewPublisher sends changes to kafka, or straight to the local hub when kafka is disabled.
func NewPublisher(client kafka.Client, hub *Hub, cfg *config.Config, otl otel.Otel) Publisher {
	return &publisherImpl{
		kafka: client,
		hub:   hub,
		cfg:   cfg,
		otel:  otl,
	}
}

// Publish never fails the write that triggered it; delivery errors are logged.
func (p *publisherImpl) Publish(ctx context.Context, change ListingChanged) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".listing.Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{"op": string(change.Op), "listing_id": change.ListingID})

	if !p.kafka.Enabled() {
		p.hub.Broadcast(change)

		return
	}

	err := p.kafka.SendMessages(ctx, p.cfg.Kafka.Topics.Listings, kafka.Message{
		Key:   change.OwnerID,
		Value: change,
	})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("listing_id", change.ListingID).Str("op", string(change.Op)).Msg("failed to publish listing change")
	}
}
