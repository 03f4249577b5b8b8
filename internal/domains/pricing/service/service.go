package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"

	"hostdeck/config"
	"hostdeck/infras/metrics"
	"hostdeck/infras/otel"
	listingModel "hostdeck/internal/domains/listing/model"
	listingService "hostdeck/internal/domains/listing/service"
	"hostdeck/internal/domains/pricing/catalog"
	"hostdeck/internal/domains/pricing/model"
	"hostdeck/shared"
	"hostdeck/shared/constant"

	"github.com/rs/zerolog/log"
)

const applyAction = "apply"

type Pricing interface {
	GetInsights(ctx context.Context, listingID string) (model.Insights, error)
	// ApplyRecommendation pushes the recommended price to every channel. No channel is called.
	ApplyRecommendation(ctx context.Context, listingID string) (model.ApplyResult, error)
}

type serviceImpl struct {
	listings listingService.Listing
	catalog  *catalog.Catalog
	cfg      *config.Config
	otel     otel.Otel
	metrics  *metrics.Metrics
}

func New(
	listings listingService.Listing,
	catalog *catalog.Catalog,
	cfg *config.Config,
	otel otel.Otel,
	metrics *metrics.Metrics,
) Pricing {
	return &serviceImpl{
		listings: listings,
		catalog:  catalog,
		cfg:      cfg,
		otel:     otel,
		metrics:  metrics,
	}
}

func (s *serviceImpl) GetInsights(ctx context.Context, listingID string) (res model.Insights, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.GetInsights")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listing, err := s.listings.Owned(ctx, listingID)
	if err != nil {
		return res, err
	}

	current := listing.Price(listingModel.PlatformAirbnb)
	if current <= 0 {
		current = s.catalog.DefaultPrice
	}

	return model.Insights{
		ListingID:      listing.ID,
		ListingTitle:   listing.Title,
		CurrentPrice:   current,
		Competitors:    slices.Clone(s.catalog.Competitors),
		Recommendation: s.catalog.Recommendation,
		Trend:          s.catalog.TrendFor(current),
	}, nil
}

func (s *serviceImpl) ApplyRecommendation(ctx context.Context, listingID string) (res model.ApplyResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".pricing.ApplyRecommendation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listing, err := s.listings.Owned(ctx, listingID)
	if err != nil {
		return res, err
	}

	if err = shared.SimulateLatency(ctx, shared.MockDelay(s.cfg.App.MockDelayMS)); err != nil {
		return res, err
	}

	s.metrics.MockAction(model.EntityName, applyAction)

	price := s.catalog.Recommendation.Price

	log.Info().Str("listing_id", listing.ID).Float64("price", price).Msg("recommended price applied")

	return model.ApplyResult{
		ListingID: listing.ID,
		Price:     price,
		Message:   fmt.Sprintf("Price of %s updated to $%g across all platforms", listing.Title, price),
	}, nil
}
