package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hostdeck/config"
	"hostdeck/infras/metrics"
	"hostdeck/infras/otel"
	"hostdeck/internal/domains/messaging/model"
	"hostdeck/internal/domains/messaging/model/dto"
	"hostdeck/internal/domains/messaging/repository"
	"hostdeck/shared"
	"hostdeck/shared/constant"
	"hostdeck/shared/failure"
	"hostdeck/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	messageTimeFormat = "3:04 PM"

	domain           = "messaging"
	actionSend       = "send"
	actionRegenerate = "regenerate"
	actionDecide     = "decide"
)

type Messaging interface {
	ListChats(ctx context.Context) ([]model.Chat, error)
	GetChat(ctx context.Context, chatID string) (model.Chat, error)
	SendMessage(ctx context.Context, chatID, text string) (model.Chat, error)
	RegenerateSuggestions(ctx context.Context, chatID string) (dto.SuggestionsResponse, error)
	ListRequests(ctx context.Context) ([]model.BookingRequest, error)
	DecideRequest(ctx context.Context, requestID string, decision model.Decision) (model.BookingRequest, error)
	GetAutoReply(ctx context.Context) (dto.AutoReplyResponse, error)
	SetAutoReply(ctx context.Context, enabled bool) (dto.AutoReplyResponse, error)
}

type serviceImpl struct {
	inbox   repository.Inbox
	cfg     *config.Config
	otel    otel.Otel
	metrics *metrics.Metrics
}

func New(inbox repository.Inbox, cfg *config.Config, otel otel.Otel, metrics *metrics.Metrics) Messaging {
	return &serviceImpl{
		inbox:   inbox,
		cfg:     cfg,
		otel:    otel,
		metrics: metrics,
	}
}

func chatError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return failure.NotFound(model.EntityNameChat)
	}

	return err
}

// simulate waits the configured channel latency before a mocked channel call.
func (s *serviceImpl) simulate(ctx context.Context, action string) error {
	if err := shared.SimulateLatency(ctx, shared.MockDelay(s.cfg.App.MockDelayMS)); err != nil {
		return err
	}

	s.metrics.MockAction(domain, action)

	return nil
}

func (s *serviceImpl) ListChats(ctx context.Context) (res []model.Chat, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messaging.ListChats")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return nil, err
	}

	return s.inbox.Chats(ctx, owner)
}

func (s *serviceImpl) GetChat(ctx context.Context, chatID string) (res model.Chat, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messaging.GetChat")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	res, err = s.inbox.Chat(ctx, owner, chatID)
	if err != nil {
		return res, chatError(err)
	}

	return res, nil
}

func (s *serviceImpl) SendMessage(ctx context.Context, chatID, text string) (res model.Chat, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messaging.SendMessage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	text = strings.TrimSpace(text)
	if text == constant.Empty {
		return res, failure.BadRequestFromString("message text is required")
	}

	if _, err = s.inbox.Chat(ctx, owner, chatID); err != nil {
		return res, chatError(err)
	}

	if err = s.simulate(ctx, actionSend); err != nil {
		return res, err
	}

	res, err = s.inbox.AppendMessage(ctx, owner, chatID, model.Message{
		Text:      text,
		Sender:    model.SenderHost,
		Timestamp: timezone.Format(timezone.Now(), messageTimeFormat),
	})
	if err != nil {
		log.Error().Err(err).Str("chat_id", chatID).Msg("failed to append message")

		return res, chatError(err)
	}

	return res, nil
}

func (s *serviceImpl) RegenerateSuggestions(ctx context.Context, chatID string) (res dto.SuggestionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messaging.RegenerateSuggestions")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	if err = s.simulate(ctx, actionRegenerate); err != nil {
		return res, err
	}

	suggestions, err := s.inbox.NextSuggestions(ctx, owner, chatID)
	if err != nil {
		return res, chatError(err)
	}

	return dto.SuggestionsResponse{ChatID: chatID, Suggestions: suggestions}, nil
}

func (s *serviceImpl) ListRequests(ctx context.Context) (res []model.BookingRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messaging.ListRequests")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return nil, err
	}

	return s.inbox.Requests(ctx, owner)
}

// DecideRequest approves or declines a pending booking request.
func (s *serviceImpl) DecideRequest(ctx context.Context, requestID string, decision model.Decision) (res model.BookingRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messaging.DecideRequest")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if decision != model.DecisionApprove && decision != model.DecisionDecline {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown decision %q", decision))
	}

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	if err = s.simulate(ctx, actionDecide); err != nil {
		return res, err
	}

	res, err = s.inbox.Decide(ctx, owner, requestID, decision.Status())

	switch {
	case errors.Is(err, repository.ErrNotFound):
		return res, failure.NotFound(model.EntityNameRequest)
	case errors.Is(err, repository.ErrNotPending):
		return res, failure.Conflict(fmt.Sprintf("booking request %s is already %s", requestID, res.Status))
	case err != nil:
		return res, err
	}

	log.Info().Str("request_id", requestID).Str("status", string(res.Status)).Msg("booking request decided")

	return res, nil
}

func (s *serviceImpl) GetAutoReply(ctx context.Context) (res dto.AutoReplyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messaging.GetAutoReply")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	res.Enabled, err = s.inbox.AutoReply(ctx, owner)

	return res, err
}

func (s *serviceImpl) SetAutoReply(ctx context.Context, enabled bool) (res dto.AutoReplyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".messaging.SetAutoReply")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	res.Enabled, err = s.inbox.SetAutoReply(ctx, owner, enabled)

	return res, err
}
