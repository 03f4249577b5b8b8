package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"

	"hostdeck/config"
	"hostdeck/infras/otel"
	"hostdeck/internal/domains/dashboard/model"
	listingModel "hostdeck/internal/domains/listing/model"
	listingService "hostdeck/internal/domains/listing/service"
	"hostdeck/shared/constant"
	"hostdeck/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	GetStats(ctx context.Context) (model.Stats, error)
	GetCleaningSchedule(ctx context.Context) (model.CleaningSchedule, error)
	GetAutomationStatus(ctx context.Context) (model.AutomationStatus, error)
}

type serviceImpl struct {
	listings listingService.Listing
	cfg      *config.Config
	otel     otel.Otel
	assigner Assigner
}

func New(listings listingService.Listing, cfg *config.Config, otel otel.Otel) Dashboard {
	return &serviceImpl{
		listings: listings,
		cfg:      cfg,
		otel:     otel,
		assigner: NewAssigner(cfg.Dashboard.CleanerAssignment),
	}
}

func (s *serviceImpl) GetStats(ctx context.Context) (res model.Stats, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.GetStats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listings, err := s.listings.AllOwned(ctx)
	if err != nil {
		return res, err
	}

	res = Aggregate(listings, timezone.Now(), s.cfg.Dashboard.PastPolicy)

	if res.ClassificationConflicts > 0 {
		log.Warn().
			Int("conflicts", res.ClassificationConflicts).
			Str("policy", s.cfg.Dashboard.PastPolicy).
			Msg("bookings whose past flag disagrees with their checkout date")
	}

	return res, nil
}

func (s *serviceImpl) GetCleaningSchedule(ctx context.Context) (res model.CleaningSchedule, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.GetCleaningSchedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listings, err := s.listings.AllOwned(ctx)
	if err != nil {
		return res, err
	}

	return CleaningTasks(listings, timezone.Now(), s.cfg.Dashboard.PastPolicy, s.assigner), nil
}

// GetAutomationStatus reports listing sync from the owner's listings. The other
// workflows have no backing integration and always report active.
func (s *serviceImpl) GetAutomationStatus(ctx context.Context) (res model.AutomationStatus, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".dashboard.GetAutomationStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listings, err := s.listings.AllOwned(ctx)
	if err != nil {
		return res, err
	}

	return model.AutomationStatus{
		ListingSync: syncState(listings),
		PriceSync:   model.AutomationActive,
		Messaging:   model.AutomationActive,
		Cleaning:    model.AutomationActive,
		Offboarding: model.AutomationActive,
	}, nil
}

func syncState(listings []listingModel.Listing) model.AutomationState {
	state := model.AutomationActive

	for _, listing := range listings {
		switch listing.SyncStatus {
		case listingModel.SyncStatusError:
			return model.AutomationError
		case listingModel.SyncStatusPending:
			state = model.AutomationWarning
		}
	}

	return state
}
