package event

import (
	"context"

	"hostdeck/config"
	"hostdeck/infras/kafka"
	"hostdeck/shared"
	"hostdeck/shared/cache"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	CacheGetListing    = "listing:get"
	CacheGetAllListing = "listing:gets"
	CacheCountListing  = "listing:count"
)

// InvalidateCaches drops the cached reads touched by change.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, change ListingChanged) {
	shared.InvalidateCaches(ctx, redisCache, shared.BuildCacheKey(CacheGetListing, change.OwnerID, change.ListingID))
	shared.InvalidateCaches(ctx, redisCache, shared.BuildCacheKey(CacheGetAllListing, change.OwnerID))
	shared.InvalidateCaches(ctx, redisCache, shared.BuildCacheKey(CacheCountListing, change.OwnerID))
}

type Consumer struct {
	kafka kafka.Client
	cache cache.RedisCache
	hub   *Hub
	cfg   *config.Config
}

func NewConsumer(client kafka.Client, redisCache cache.RedisCache, hub *Hub, cfg *config.Config) *Consumer {
	return &Consumer{
		kafka: client,
		cache: redisCache,
		hub:   hub,
		cfg:   cfg,
	}
}

// Run blocks until ctx is done. Each instance reads with its own group so every replica sees every change.
func (c *Consumer) Run(ctx context.Context, instanceID string) {
	if !c.kafka.Enabled() {
		log.Info().Msg("Kafka disabled, listing changes are delivered in-process")

		return
	}

	group := c.cfg.Kafka.ConsumerGroup + "." + instanceID

	log.Info().Str("topic", c.cfg.Kafka.Topics.Listings).Str("group", group).Msg("Starting listing change consumer")

	c.kafka.Consume(ctx, group, c.cfg.Kafka.Topics.Listings, c.Handle)
}

// Handle drops the caches of the changed listing before announcing it, so streams refetch fresh data.
func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) error {
	change, err := kafka.Decode[ListingChanged](msg)
	if err != nil {
		return err
	}

	InvalidateCaches(ctx, c.cache, change)
	c.hub.Broadcast(change)

	return nil
}
