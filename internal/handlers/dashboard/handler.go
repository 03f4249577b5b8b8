package dashboard

import (
	"net/http"

	"hostdeck/infras/otel"
	"hostdeck/internal/domains/dashboard/service"
	"hostdeck/shared/constant"
	"hostdeck/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Dashboard
	otel    otel.Otel
}

func New(service service.Dashboard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Get("/automation", handler.GetAutomationStatus)
	})

	router.Get("/operations/cleaning", handler.GetCleaningSchedule)
}

// GetStats returns the derived dashboard figures of the host's listings.
// @Summary Get dashboard stats
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[model.Stats]
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	res, err := handler.service.GetStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard stats")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetAutomationStatus
// @Summary Get automation status
// @Tags Dashboard
// @Produce json
// @Success 200 {object} response.Data[model.AutomationStatus]
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/automation [get]
// @Security BearerAuth
func (handler *Handler) GetAutomationStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAutomationStatus")
	defer scope.End()

	res, err := handler.service.GetAutomationStatus(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get automation status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetCleaningSchedule returns the turnover cleanings derived from bookings.
// @Summary Get cleaning schedule
// @Tags Operations
// @Produce json
// @Success 200 {object} response.Data[model.CleaningSchedule]
// @Failure 500 {object} response.Error
// @Router /v1/operations/cleaning [get]
// @Security BearerAuth
func (handler *Handler) GetCleaningSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCleaningSchedule")
	defer scope.End()

	res, err := handler.service.GetCleaningSchedule(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get cleaning schedule")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
