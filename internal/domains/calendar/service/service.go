package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hostdeck/infras/metrics"
	"hostdeck/infras/otel"
	"hostdeck/internal/domains/calendar/model"
	"hostdeck/internal/domains/calendar/model/dto"
	"hostdeck/internal/domains/calendar/repository"
	listingModel "hostdeck/internal/domains/listing/model"
	listingService "hostdeck/internal/domains/listing/service"
	"hostdeck/shared"
	"hostdeck/shared/constant"
	"hostdeck/shared/failure"

	"github.com/rs/zerolog/log"
)

// Calendar drives the two-click range selection over a listing's availability.
type Calendar interface {
	Get(ctx context.Context, listingID string) (dto.CalendarResponse, error)
	// ClickDate stores the first click as the anchor and toggles the range on the second.
	ClickDate(ctx context.Context, listingID, date string) (dto.ClickResponse, error)
	ToggleRange(ctx context.Context, listingID, start, end string) (dto.ClickResponse, error)
	CancelSelection(ctx context.Context, listingID string) error
}

type serviceImpl struct {
	listings listingService.Listing
	anchors  repository.Anchor
	otel     otel.Otel
	metrics  *metrics.Metrics
}

func New(listings listingService.Listing, anchors repository.Anchor, otel otel.Otel, metrics *metrics.Metrics) Calendar {
	return &serviceImpl{
		listings: listings,
		anchors:  anchors,
		otel:     otel,
		metrics:  metrics,
	}
}

func (s *serviceImpl) Get(ctx context.Context, listingID string) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listing, err := s.listings.Owned(ctx, listingID)
	if err != nil {
		return res, err
	}

	res.ListingID = listing.ID
	res.Availability = listing.Availability.Normalize()

	anchor, found, err := s.anchors.Peek(ctx, listing.OwnerID, listing.ID)
	if err != nil {
		log.Error().Err(err).Str("listing_id", listingID).Msg("failed to read pending anchor")

		return res, err
	}

	if found {
		res.PendingAnchor = &anchor
	}

	return res, nil
}

func (s *serviceImpl) ClickDate(ctx context.Context, listingID, date string) (res dto.ClickResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.ClickDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = listingModel.EnumerateDates(date, date); err != nil {
		return res, failure.BadRequest(err)
	}

	listing, err := s.listings.Owned(ctx, listingID)
	if err != nil {
		return res, err
	}

	anchor, found, err := s.anchors.Take(ctx, listing.OwnerID, listing.ID)
	if err != nil {
		log.Error().Err(err).Str("listing_id", listingID).Msg("failed to take pending anchor")

		return res, err
	}

	if !found {
		if entry, ok := listing.Availability.Normalize().Entry(date); ok && entry.Booked() {
			s.metrics.CalendarRejected(model.RejectReasonBookedAnchor)

			return res, failure.BadRequestFromString(fmt.Sprintf("%s is booked on %s and cannot start a selection", date, entry.BookedBy))
		}

		if err = s.anchors.Set(ctx, listing.OwnerID, listing.ID, date); err != nil {
			log.Error().Err(err).Str("listing_id", listingID).Msg("failed to store anchor")

			return res, err
		}

		scope.AddEvent("anchor set")

		return dto.AnchorSet(date), nil
	}

	return s.toggle(ctx, listing, anchor, date)
}

func (s *serviceImpl) ToggleRange(ctx context.Context, listingID, start, end string) (res dto.ClickResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.ToggleRange")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	listing, err := s.listings.Owned(ctx, listingID)
	if err != nil {
		return res, err
	}

	return s.toggle(ctx, listing, start, end)
}

func (s *serviceImpl) toggle(ctx context.Context, listing listingModel.Listing, start, end string) (dto.ClickResponse, error) {
	next, result, err := listing.Availability.ToggleRange(start, end)
	if err != nil {
		reason := model.RejectReasonInvalidRange
		if errors.Is(err, listingModel.ErrRangeBooked) {
			reason = model.RejectReasonBookedRange
		}

		s.metrics.CalendarRejected(reason)

		return dto.ClickResponse{}, failure.BadRequest(err)
	}

	if err = s.listings.ReplaceAvailability(ctx, listing.ID, next); err != nil {
		log.Error().Err(err).Str("listing_id", listing.ID).Msg("failed to persist toggled range")

		return dto.ClickResponse{}, err
	}

	s.metrics.CalendarToggled(string(result.Action))

	log.Info().
		Str("listing_id", listing.ID).
		Str("action", string(result.Action)).
		Str("start", result.Start).
		Str("end", result.End).
		Msg("availability range toggled")

	return dto.Toggled(result), nil
}

func (s *serviceImpl) CancelSelection(ctx context.Context, listingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".calendar.CancelSelection")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return err
	}

	return s.anchors.Clear(ctx, owner, listingID)
}
