package messaging

import (
	"net/http"

	"hostdeck/infras/otel"
	"hostdeck/internal/domains/messaging/model/dto"
	"hostdeck/internal/domains/messaging/service"
	"hostdeck/shared/constant"
	"hostdeck/shared/validator"
	"hostdeck/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Messaging
	otel    otel.Otel
}

func New(service service.Messaging, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/messaging", func(routerGroup chi.Router) {
		routerGroup.Get("/chats", handler.ListChats)
		routerGroup.Get("/chats/{id}", handler.GetChat)
		routerGroup.Post("/chats/{id}/messages", handler.SendMessage)
		routerGroup.Post("/chats/{id}/suggestions", handler.RegenerateSuggestions)
		routerGroup.Get("/requests", handler.ListRequests)
		routerGroup.Post("/requests/{id}/decision", handler.DecideRequest)
		routerGroup.Get("/auto-reply", handler.GetAutoReply)
		routerGroup.Put("/auto-reply", handler.SetAutoReply)
	})
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

// ListChats
// @Summary List guest conversations
// @Tags Messaging
// @Produce json
// @Success 200 {object} response.Data[[]model.Chat]
// @Failure 500 {object} response.Error
// @Router /v1/messaging/chats [get]
// @Security BearerAuth
func (handler *Handler) ListChats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListChats")
	defer scope.End()

	res, err := handler.service.ListChats(ctx)
	if err != nil {
		handler.fail(w, scope, err, "failed to list chats")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetChat
// @Summary Get a guest conversation
// @Tags Messaging
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {object} response.Data[model.Chat]
// @Failure 404 {object} response.Error
// @Router /v1/messaging/chats/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetChat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChat")
	defer scope.End()

	res, err := handler.service.GetChat(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to get chat")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SendMessage replies to a guest as the host.
// @Summary Send a message
// @Tags Messaging
// @Accept json
// @Produce json
// @Param id path string true "Chat ID"
// @Param request body dto.SendMessageRequest true "Message"
// @Success 200 {object} response.Data[model.Chat]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/messaging/chats/{id}/messages [post]
// @Security BearerAuth
func (handler *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendMessage")
	defer scope.End()

	req := dto.SendMessageRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request")

		return
	}

	res, err := handler.service.SendMessage(ctx, chi.URLParam(r, constant.RequestParamID), req.Text)
	if err != nil {
		handler.fail(w, scope, err, "failed to send message")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RegenerateSuggestions
// @Summary Regenerate reply suggestions
// @Tags Messaging
// @Produce json
// @Param id path string true "Chat ID"
// @Success 200 {object} response.Data[dto.SuggestionsResponse]
// @Failure 404 {object} response.Error
// @Router /v1/messaging/chats/{id}/suggestions [post]
// @Security BearerAuth
func (handler *Handler) RegenerateSuggestions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegenerateSuggestions")
	defer scope.End()

	res, err := handler.service.RegenerateSuggestions(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		handler.fail(w, scope, err, "failed to regenerate suggestions")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ListRequests
// @Summary List booking requests
// @Tags Messaging
// @Produce json
// @Success 200 {object} response.Data[[]model.BookingRequest]
// @Router /v1/messaging/requests [get]
// @Security BearerAuth
func (handler *Handler) ListRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListRequests")
	defer scope.End()

	res, err := handler.service.ListRequests(ctx)
	if err != nil {
		handler.fail(w, scope, err, "failed to list booking requests")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DecideRequest approves or declines a pending booking request.
// @Summary Decide a booking request
// @Tags Messaging
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Param request body dto.DecideRequest true "Decision"
// @Success 200 {object} response.Data[model.BookingRequest]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/messaging/requests/{id}/decision [post]
// @Security BearerAuth
func (handler *Handler) DecideRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DecideRequest")
	defer scope.End()

	req := dto.DecideRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request")

		return
	}

	res, err := handler.service.DecideRequest(ctx, chi.URLParam(r, constant.RequestParamID), req.Decision)
	if err != nil {
		handler.fail(w, scope, err, "failed to decide booking request")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAutoReply
// @Summary Get the auto-reply setting
// @Tags Messaging
// @Produce json
// @Success 200 {object} response.Data[dto.AutoReplyResponse]
// @Router /v1/messaging/auto-reply [get]
// @Security BearerAuth
func (handler *Handler) GetAutoReply(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAutoReply")
	defer scope.End()

	res, err := handler.service.GetAutoReply(ctx)
	if err != nil {
		handler.fail(w, scope, err, "failed to get auto-reply")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// SetAutoReply
// @Summary Toggle auto-reply
// @Tags Messaging
// @Accept json
// @Produce json
// @Param request body dto.AutoReplyRequest true "Setting"
// @Success 200 {object} response.Data[dto.AutoReplyResponse]
// @Failure 400 {object} response.Error
// @Router /v1/messaging/auto-reply [put]
// @Security BearerAuth
func (handler *Handler) SetAutoReply(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetAutoReply")
	defer scope.End()

	req := dto.AutoReplyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request")

		return
	}

	res, err := handler.service.SetAutoReply(ctx, *req.Enabled)
	if err != nil {
		handler.fail(w, scope, err, "failed to set auto-reply")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
