package listing

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hostdeck/infras/otel"
	"hostdeck/internal/domains/listing/event"
	"hostdeck/internal/domains/listing/model"
	"hostdeck/internal/domains/listing/model/dto"
	"hostdeck/internal/domains/listing/service"
	"hostdeck/shared"
	"hostdeck/shared/constant"
	gDto "hostdeck/shared/dto"
	"hostdeck/shared/validator"
	"hostdeck/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const keepAliveInterval = 25 * time.Second

type Handler struct {
	service service.Listing
	hub     *event.Hub
	otel    otel.Otel
}

func New(service service.Listing, hub *event.Hub, otel otel.Otel) Handler {
	return Handler{
		service: service,
		hub:     hub,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/listings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateListing)
		routerGroup.Get("/", handler.GetListings)
		routerGroup.Get("/changes", handler.StreamChanges)
		routerGroup.Get("/{id}", handler.GetListingByID)
		routerGroup.Patch("/{id}", handler.UpdateListing)
		routerGroup.Delete("/{id}", handler.DeleteListing)
		routerGroup.Post("/{id}/actions/{action}", handler.RunAction)
	})
}

// CreateListing handles the creation of a new listing.
// @Summary Create a new listing
// @Description Create a listing for the authenticated host. Photos may be http(s) urls or image data urls;
// @Description invalid photos are reported in rejected_photos while the rest are stored.
// @Tags Listing
// @Accept json
// @Produce json
// @Param request body dto.CreateListingRequest true "Listing"
// @Success 201 {object} response.Data[dto.WriteListingResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings [post]
// @Security BearerAuth
func (handler *Handler) CreateListing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateListing")
	defer scope.End()

	req := dto.CreateListingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create listing")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Listing created " + res.ID)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetListings retrieves the listings of the authenticated host, newest first by default.
// @Summary Get all listings
// @Description Without limit every listing is returned.
// @Tags Listing
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetListingsResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings [get]
// @Security BearerAuth
func (handler *Handler) GetListings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	listings, err := handler.service.GetAll(ctx, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, listings)
}

// GetListingByID retrieves a listing by its ID.
// @Summary Get a listing by ID
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Data[dto.ListingResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetListingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetListingByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	listing, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get listing by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, listing)
}

// UpdateListing replaces the provided fields of a listing.
// @Summary Update a listing by ID
// @Description Any write resets sync_status to pending. Sending photos replaces the whole photo set.
// @Tags Listing
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body dto.UpdateListingRequest true "Fields to replace"
// @Success 200 {object} response.Data[dto.WriteListingResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateListing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateListingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update listing")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// DeleteListing deletes a listing by its ID.
// @Summary Delete a listing by ID
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteListing")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete listing")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Listing deleted successfully")
}

// RunAction triggers a simulated channel action.
// @Summary Run a listing action
// @Description sync marks the listing synced; post and improve only simulate the call.
// @Tags Listing
// @Produce json
// @Param id path string true "Listing ID"
// @Param action path string true "Action" Enums(sync, post, improve)
// @Success 200 {object} response.Data[dto.ActionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/listings/{id}/actions/{action} [post]
// @Security BearerAuth
func (handler *Handler) RunAction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RunAction")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	action := model.Action(chi.URLParam(r, constant.RequestParamAction))

	res, err := handler.service.RunAction(ctx, id, action)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("action", string(action)).Msg("failed to run listing action")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// StreamChanges streams the listing changes of the authenticated host as server-sent events.
// @Summary Stream listing changes
// @Description Each event carries the op and listing id; clients refetch on receipt.
// @Tags Listing
// @Produce text/event-stream
// @Success 200 {object} event.ListingChanged
// @Failure 401 {object} response.Error
// @Router /v1/listings/changes [get]
// @Security BearerAuth
func (handler *Handler) StreamChanges(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owner, err := shared.HostID(ctx)
	if err != nil {
		response.WithError(w, err)

		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.WithError(w, errors.New("streaming is not supported"))

		return
	}

	changes, unsubscribe := handler.hub.Subscribe(owner)
	defer unsubscribe()

	w.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeEventStream)
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}

			flusher.Flush()
		case change, open := <-changes:
			if !open {
				return
			}

			payload, err := json.Marshal(change)
			if err != nil {
				log.Error().Err(err).Msg("failed to marshal listing change")

				continue
			}

			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", change.Op, payload); err != nil {
				return
			}

			flusher.Flush()
		}
	}
}
