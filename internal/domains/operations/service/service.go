package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"hostdeck/config"
	"hostdeck/infras/metrics"
	"hostdeck/infras/otel"
	listingModel "hostdeck/internal/domains/listing/model"
	listingService "hostdeck/internal/domains/listing/service"
	"hostdeck/internal/domains/operations/model"
	"hostdeck/internal/domains/operations/model/dto"
	"hostdeck/shared"
	"hostdeck/shared/constant"
	"hostdeck/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	domain            = "operations"
	actionOnboarding  = "onboarding"
	actionOffboarding = "offboarding"
)

type Operations interface {
	OnboardingSteps(ctx context.Context) []model.Step
	StartOnboarding(ctx context.Context, req dto.StartOnboardingRequest) (dto.OnboardingResponse, error)
	OffboardingChecklist(ctx context.Context) []model.ChecklistItem
	StartOffboarding(ctx context.Context, req dto.StartOffboardingRequest) (dto.OffboardingResponse, error)
}

type serviceImpl struct {
	listings listingService.Listing
	cfg      *config.Config
	otel     otel.Otel
	metrics  *metrics.Metrics
}

func New(listings listingService.Listing, cfg *config.Config, otel otel.Otel, metrics *metrics.Metrics) Operations {
	return &serviceImpl{
		listings: listings,
		cfg:      cfg,
		otel:     otel,
		metrics:  metrics,
	}
}

func (s *serviceImpl) OnboardingSteps(_ context.Context) []model.Step {
	return model.OnboardingSteps()
}

func (s *serviceImpl) OffboardingChecklist(_ context.Context) []model.ChecklistItem {
	return model.OffboardingChecklist()
}

func (s *serviceImpl) StartOnboarding(ctx context.Context, req dto.StartOnboardingRequest) (res dto.OnboardingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".operations.StartOnboarding")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.CheckOut <= req.CheckIn {
		return res, failure.BadRequestFromString("check-out must be after check-in")
	}

	stay, err := listingModel.EnumerateDates(req.CheckIn, req.CheckOut)
	if err != nil {
		return res, failure.BadRequest(err)
	}

	listing, err := s.listings.Owned(ctx, req.ListingID)
	if err != nil {
		return res, err
	}

	if err = shared.SimulateLatency(ctx, shared.MockDelay(s.cfg.App.MockDelayMS)); err != nil {
		return res, err
	}

	s.metrics.MockAction(domain, actionOnboarding)

	log.Info().
		Str("listing_id", listing.ID).
		Str("platform", string(req.Platform)).
		Str("check_in", req.CheckIn).
		Msg("onboarding workflow started")

	return dto.OnboardingResponse{
		GuestName:    req.GuestName,
		ListingID:    listing.ID,
		ListingTitle: listing.Title,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Platform:     req.Platform,
		Nights:       len(stay) - 1,
		Steps:        model.OnboardingSteps(),
	}, nil
}

func (s *serviceImpl) StartOffboarding(ctx context.Context, req dto.StartOffboardingRequest) (res dto.OffboardingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".operations.StartOffboarding")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checklist := model.OffboardingChecklist()

	known := make([]string, 0, len(checklist))
	for _, item := range checklist {
		known = append(known, item.ID)
	}

	var unknown []string

	for _, id := range req.Completed {
		if !slices.Contains(known, id) {
			unknown = append(unknown, id)
		}
	}

	if len(unknown) > 0 {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown checklist items: %s", strings.Join(unknown, ", ")))
	}

	if err = shared.SimulateLatency(ctx, shared.MockDelay(s.cfg.App.MockDelayMS)); err != nil {
		return res, err
	}

	s.metrics.MockAction(domain, actionOffboarding)

	res = dto.OffboardingResponse{Completed: []string{}, Remaining: []string{}}

	for _, id := range known {
		if slices.Contains(req.Completed, id) {
			res.Completed = append(res.Completed, id)
		} else {
			res.Remaining = append(res.Remaining, id)
		}
	}

	return res, nil
}
