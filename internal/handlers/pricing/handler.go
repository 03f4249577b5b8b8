package pricing

import (
	"net/http"

	"hostdeck/infras/otel"
	"hostdeck/internal/domains/pricing/service"
	"hostdeck/shared/constant"
	"hostdeck/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Pricing
	otel    otel.Otel
}

func New(service service.Pricing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/listings/{id}/pricing", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetInsights)
		routerGroup.Post("/apply", handler.ApplyRecommendation)
	})
}

// GetInsights returns the competitor set, the recommended price and the weekly trend of a listing.
// @Summary Get pricing insights
// @Tags Pricing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[model.Insights]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/pricing [get]
// @Security BearerAuth
func (handler *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInsights")
	defer scope.End()

	res, err := handler.service.GetInsights(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pricing insights")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// ApplyRecommendation
// @Summary Apply the recommended price
// @Tags Pricing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[model.ApplyResult]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/pricing/apply [post]
// @Security BearerAuth
func (handler *Handler) ApplyRecommendation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApplyRecommendation")
	defer scope.End()

	res, err := handler.service.ApplyRecommendation(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to apply recommended price")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
