package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Host=MockHostService

import (
	"context"
	"fmt"

	"hostdeck/infras/otel"
	"hostdeck/internal/domains/host/model"
	"hostdeck/internal/domains/host/model/dto"
	"hostdeck/internal/domains/host/repository"
	"hostdeck/shared"
	"hostdeck/shared/constant"
	"hostdeck/shared/failure"

	"github.com/rs/zerolog/log"
)

type Host interface {
	Me(ctx context.Context) (dto.HostResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (dto.HostResponse, error)
}

type serviceImpl struct {
	repo repository.Host
	otel otel.Otel
}

func New(repo repository.Host, otel otel.Otel) Host {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) get(ctx context.Context, hostID string) (model.Host, error) {
	host, err := s.repo.Get(ctx, shared.FilterByID(hostID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("host_id", hostID).Msg("failed to get host")

		return host, fmt.Errorf("failed to get host: %w", err)
	}

	if host.ID == constant.Empty {
		return host, failure.NotFound("host not found")
	}

	return host, nil
}

// Me returns the profile of the authenticated host.
func (s *serviceImpl) Me(ctx context.Context) (res dto.HostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".host.Me")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hostID, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	host, err := s.get(ctx, hostID)
	if err != nil {
		return res, err
	}

	res.FromModel(host)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (res dto.HostResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".host.UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hostID, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	filter := shared.FilterByID(hostID, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req, hostID), filter); err != nil {
		log.Error().Err(err).Str("host_id", hostID).Msg("failed to update host profile")

		return res, fmt.Errorf("failed to update host profile: %w", err)
	}

	host, err := s.get(ctx, hostID)
	if err != nil {
		return res, err
	}

	res.FromModel(host)

	return res, nil
}
