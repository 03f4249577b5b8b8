package integration

import (
	"net/http"

	"hostdeck/infras/otel"
	"hostdeck/internal/domains/integration/model/dto"
	"hostdeck/internal/domains/integration/service"
	listingModel "hostdeck/internal/domains/listing/model"
	"hostdeck/shared/constant"
	"hostdeck/shared/validator"
	"hostdeck/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Integration
	otel    otel.Otel
}

func New(service service.Integration, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/integrations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.List)
		routerGroup.Post("/{platform}/connect", handler.Connect)
		routerGroup.Post("/{platform}/disconnect", handler.Disconnect)
	})
}

// List
// @Summary List platform integrations
// @Tags Integrations
// @Produce json
// @Success 200 {object} response.Data[[]dto.IntegrationResponse]
// @Failure 500 {object} response.Error
// @Router /v1/integrations [get]
// @Security BearerAuth
func (handler *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ListIntegrations")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list integrations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Connect stores the credentials hint of a platform and marks it connected.
// @Summary Connect a platform
// @Tags Integrations
// @Accept json
// @Produce json
// @Param platform path string true "Platform" Enums(airbnb, booking, vrbo)
// @Param request body dto.ConnectRequest true "Credentials"
// @Success 200 {object} response.Data[dto.IntegrationResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/integrations/{platform}/connect [post]
// @Security BearerAuth
func (handler *Handler) Connect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ConnectIntegration")
	defer scope.End()

	req := dto.ConnectRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	platform := listingModel.Platform(chi.URLParam(r, constant.RequestParamPlatform))

	res, err := handler.service.Connect(ctx, platform, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to connect integration")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Disconnect
// @Summary Disconnect a platform
// @Tags Integrations
// @Produce json
// @Param platform path string true "Platform" Enums(airbnb, booking, vrbo)
// @Success 200 {object} response.Data[dto.IntegrationResponse]
// @Failure 400 {object} response.Error
// @Router /v1/integrations/{platform}/disconnect [post]
// @Security BearerAuth
func (handler *Handler) Disconnect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DisconnectIntegration")
	defer scope.End()

	platform := listingModel.Platform(chi.URLParam(r, constant.RequestParamPlatform))

	res, err := handler.service.Disconnect(ctx, platform)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to disconnect integration")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
