package calendar

import (
	"net/http"

	"hostdeck/infras/otel"
	"hostdeck/internal/domains/calendar/model/dto"
	"hostdeck/internal/domains/calendar/service"
	"hostdeck/shared/constant"
	"hostdeck/shared/validator"
	"hostdeck/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Calendar
	otel    otel.Otel
}

func New(service service.Calendar, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/listings/{id}/calendar", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCalendar)
		routerGroup.Post("/click", handler.ClickDate)
		routerGroup.Post("/toggle", handler.ToggleRange)
		routerGroup.Delete("/selection", handler.CancelSelection)
	})
}

// GetCalendar returns the availability of a listing and its pending selection anchor.
// @Summary Get listing calendar
// @Tags Calendar
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.CalendarResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/calendar [get]
// @Security BearerAuth
func (handler *Handler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCalendar")
	defer scope.End()

	res, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get calendar")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ClickDate handles one click of the range selection tool.
// @Summary Click a calendar date
// @Description The first click stores an anchor, the second toggles every date between the anchor and the click.
// @Description A range touching a booked date is rejected and the anchor is dropped.
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body dto.ClickDateRequest true "Clicked date"
// @Success 200 {object} response.Data[dto.ClickResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/calendar/click [post]
// @Security BearerAuth
func (handler *Handler) ClickDate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClickDate")
	defer scope.End()

	req := dto.ClickDateRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ClickDate(ctx, chi.URLParam(r, constant.RequestParamID), req.Date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to handle calendar click")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ToggleRange toggles a whole range in one call.
// @Summary Toggle a date range
// @Tags Calendar
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body dto.ToggleRangeRequest true "Range"
// @Success 200 {object} response.Data[dto.ClickResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/calendar/toggle [post]
// @Security BearerAuth
func (handler *Handler) ToggleRange(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleRange")
	defer scope.End()

	req := dto.ToggleRangeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.ToggleRange(ctx, chi.URLParam(r, constant.RequestParamID), req.Start, req.End)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to toggle range")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// CancelSelection drops the pending anchor.
// @Summary Cancel the pending selection
// @Tags Calendar
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Message
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/calendar/selection [delete]
// @Security BearerAuth
func (handler *Handler) CancelSelection(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelSelection")
	defer scope.End()

	if err := handler.service.CancelSelection(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel selection")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Selection cancelled")
}
