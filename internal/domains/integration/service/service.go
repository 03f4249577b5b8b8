package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Integration=MockIntegrationService

import (
	"context"
	"fmt"

	"hostdeck/config"
	"hostdeck/infras/metrics"
	"hostdeck/infras/otel"
	"hostdeck/internal/domains/integration/model"
	"hostdeck/internal/domains/integration/model/dto"
	"hostdeck/internal/domains/integration/repository"
	listingModel "hostdeck/internal/domains/listing/model"
	"hostdeck/shared"
	"hostdeck/shared/constant"
	"hostdeck/shared/failure"
	"hostdeck/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Integration interface {
	List(ctx context.Context) ([]dto.IntegrationResponse, error)
	Connect(ctx context.Context, platform listingModel.Platform, req dto.ConnectRequest) (dto.IntegrationResponse, error)
	Disconnect(ctx context.Context, platform listingModel.Platform) (dto.IntegrationResponse, error)
}

type serviceImpl struct {
	repo    repository.Integration
	cfg     *config.Config
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(repo repository.Integration, cfg *config.Config, otel otel.Otel, metrics *metrics.Metrics) Integration {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		otel:    otel,
		metrics: metrics,
	}
}

func unknownPlatform(platform listingModel.Platform) error {
	return failure.BadRequestFromString(fmt.Sprintf("unknown platform %q", platform))
}

func (s *serviceImpl) stored(ctx context.Context, owner string) (map[listingModel.Platform]model.Integration, error) {
	integrations, err := s.repo.GetByOwner(ctx, owner)
	if err != nil {
		return nil, err
	}

	byPlatform := make(map[listingModel.Platform]model.Integration, len(integrations))
	for _, integration := range integrations {
		byPlatform[integration.Platform] = integration
	}

	return byPlatform, nil
}

// List returns every supported platform, disconnected unless stored otherwise.
func (s *serviceImpl) List(ctx context.Context) (res []dto.IntegrationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".integration.List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return nil, err
	}

	byPlatform, err := s.stored(ctx, owner)
	if err != nil {
		log.Error().Err(err).Msg("failed to get integrations")

		return nil, err
	}

	res = make([]dto.IntegrationResponse, 0, len(listingModel.Platforms))

	for _, platform := range listingModel.Platforms {
		item := dto.IntegrationResponse{}
		item.FromModel(platform, byPlatform[platform])
		res = append(res, item)
	}

	return res, nil
}

func (s *serviceImpl) save(ctx context.Context, owner string, platform listingModel.Platform, apply func(*model.Integration)) (dto.IntegrationResponse, error) {
	byPlatform, err := s.stored(ctx, owner)
	if err != nil {
		return dto.IntegrationResponse{}, err
	}

	now := timezone.Now()

	integration, ok := byPlatform[platform]
	if !ok {
		integration = model.Integration{
			ID:       uuid.NewString(),
			OwnerID:  owner,
			Platform: platform,
		}
		integration.CreatedAt = now
		integration.CreatedBy = owner
	}

	apply(&integration)

	integration.ModifiedAt = now
	integration.ModifiedBy = owner

	if err = s.repo.Upsert(ctx, integration); err != nil {
		log.Error().Err(err).Str("platform", string(platform)).Msg("failed to store integration")

		return dto.IntegrationResponse{}, err
	}

	res := dto.IntegrationResponse{}
	res.FromModel(platform, integration)

	return res, nil
}

func (s *serviceImpl) Connect(ctx context.Context, platform listingModel.Platform, req dto.ConnectRequest) (res dto.IntegrationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".integration.Connect")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !platform.Valid() {
		return res, unknownPlatform(platform)
	}

	if req.APIKey == constant.Empty || req.APISecret == constant.Empty {
		return res, failure.BadRequestFromString("api key and api secret are required")
	}

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	if err = shared.SimulateLatency(ctx, shared.MockDelay(s.cfg.App.MockDelayMS)); err != nil {
		return res, err
	}

	s.metrics.MockAction(model.EntityName, "connect")

	return s.save(ctx, owner, platform, func(integration *model.Integration) {
		now := timezone.Now()

		integration.Connected = true
		integration.APIKeyHint = model.KeyHint(req.APIKey)
		integration.LastSync = &now
	})
}

func (s *serviceImpl) Disconnect(ctx context.Context, platform listingModel.Platform) (res dto.IntegrationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".integration.Disconnect")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !platform.Valid() {
		return res, unknownPlatform(platform)
	}

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	return s.save(ctx, owner, platform, func(integration *model.Integration) {
		integration.Connected = false
		integration.APIKeyHint = constant.Empty
		integration.LastSync = nil
	})
}
