package operations

import (
	"net/http"

	"hostdeck/infras/otel"
	"hostdeck/internal/domains/operations/model/dto"
	"hostdeck/internal/domains/operations/service"
	"hostdeck/shared/constant"
	"hostdeck/shared/validator"
	"hostdeck/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Operations
	otel    otel.Otel
}

func New(service service.Operations, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/operations", func(routerGroup chi.Router) {
		routerGroup.Get("/onboarding/steps", handler.OnboardingSteps)
		routerGroup.Post("/onboarding", handler.StartOnboarding)
		routerGroup.Get("/offboarding/checklist", handler.OffboardingChecklist)
		routerGroup.Post("/offboarding", handler.StartOffboarding)
	})
}

// OnboardingSteps
// @Summary Get the onboarding automation log
// @Tags Operations
// @Produce json
// @Success 200 {object} response.Data[[]model.Step]
// @Router /v1/operations/onboarding/steps [get]
// @Security BearerAuth
func (handler *Handler) OnboardingSteps(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.OnboardingSteps(r.Context()))
}

// StartOnboarding starts the onboarding workflow of an incoming guest.
// @Summary Start guest onboarding
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body dto.StartOnboardingRequest true "Guest stay"
// @Success 200 {object} response.Data[dto.OnboardingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/operations/onboarding [post]
// @Security BearerAuth
func (handler *Handler) StartOnboarding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartOnboarding")
	defer scope.End()

	req := dto.StartOnboardingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.StartOnboarding(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start onboarding")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// OffboardingChecklist
// @Summary Get the offboarding checklist
// @Tags Operations
// @Produce json
// @Success 200 {object} response.Data[[]model.ChecklistItem]
// @Router /v1/operations/offboarding/checklist [get]
// @Security BearerAuth
func (handler *Handler) OffboardingChecklist(w http.ResponseWriter, r *http.Request) {
	response.WithJSON(w, http.StatusOK, handler.service.OffboardingChecklist(r.Context()))
}

// StartOffboarding
// @Summary Start guest offboarding
// @Tags Operations
// @Accept json
// @Produce json
// @Param request body dto.StartOffboardingRequest true "Completed checklist items"
// @Success 200 {object} response.Data[dto.OffboardingResponse]
// @Failure 400 {object} response.Error
// @Router /v1/operations/offboarding [post]
// @Security BearerAuth
func (handler *Handler) StartOffboarding(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartOffboarding")
	defer scope.End()

	req := dto.StartOffboardingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.StartOffboarding(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start offboarding")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
