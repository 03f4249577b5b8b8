package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"hostdeck/infras/jwt"
	"hostdeck/infras/otel"
	"hostdeck/internal/domains/auth/model/dto"
	hostModel "hostdeck/internal/domains/host/model"
	hostRepo "hostdeck/internal/domains/host/repository"
	"hostdeck/shared"
	"hostdeck/shared/constant"
	gDto "hostdeck/shared/dto"
	"hostdeck/shared/failure"
	"hostdeck/shared/password"
	"hostdeck/shared/timezone"

	"github.com/rs/zerolog/log"
)

const invalidCredentials = "invalid email or password"

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (dto.TokenResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.TokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) error
}

type serviceImpl struct {
	hostRepo   hostRepo.Host
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(hostRepo hostRepo.Host, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		hostRepo:   hostRepo,
		otel:       otel,
		jwtService: jwt,
	}
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    hostModel.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    strings.ToLower(email),
				Table:    hostModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Email = strings.ToLower(req.Email)

	exists, err := s.hostRepo.Exist(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if host exists")

		return fmt.Errorf("failed to check if host exists: %w", err)
	}

	if exists {
		return failure.Conflict("email already registered")
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.hostRepo.Insert(ctx, req.ToHostModel(constant.ContextGuest, hashedPassword)); err != nil {
		log.Error().Err(err).Msg("failed to create host")

		return fmt.Errorf("failed to create host: %w", err)
	}

	log.Info().Str("email", req.Email).Msg("host registered")

	return nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := emailFilter(req.Email)

	host, err := s.hostRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get host")

		return res, fmt.Errorf("failed to get host: %w", err)
	}

	if host.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with unknown email")

		return res, failure.Unauthorized(invalidCredentials)
	}

	if err = password.Verify(req.Password, host.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(invalidCredentials)
	}

	if !host.Active {
		return res, failure.Unauthorized("host account is deactivated")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(ctx, host.ID, host.Email, host.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	if err = s.hostRepo.Update(ctx, shared.TransformFields(lastLogin, host.ID), filter); err != nil {
		log.Warn().Err(err).Str("host_id", host.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.TokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(ctx, req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token")
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.ChangePassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hostID, err := shared.HostID(ctx)
	if err != nil {
		return err
	}

	filter := shared.FilterByID(hostID, hostModel.FieldID, hostModel.TableName)

	host, err := s.hostRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get host")

		return fmt.Errorf("failed to get host: %w", err)
	}

	if host.ID == constant.Empty {
		return failure.NotFound("host not found")
	}

	if err = password.Verify(req.CurrentPassword, host.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect")
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatePassword := dto.UpdatePasswordRequest{Password: hashedPassword}

	if err = s.hostRepo.Update(ctx, shared.TransformFields(updatePassword, hostID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}
