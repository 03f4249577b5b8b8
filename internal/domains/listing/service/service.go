package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Listing=MockListingService

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"hostdeck/config"
	"hostdeck/infras/metrics"
	"hostdeck/infras/otel"
	"hostdeck/infras/s3"
	"hostdeck/internal/domains/listing/event"
	"hostdeck/internal/domains/listing/model"
	"hostdeck/internal/domains/listing/model/dto"
	"hostdeck/internal/domains/listing/repository"
	"hostdeck/shared"
	"hostdeck/shared/base64"
	"hostdeck/shared/cache"
	"hostdeck/shared/constant"
	gDto "hostdeck/shared/dto"
	"hostdeck/shared/failure"
	"hostdeck/shared/timezone"
	"hostdeck/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var allowedPhotoTypes = []string{"image/png", "image/jpeg", "image/jpg", "image/webp", "image/gif"}

var sortableFields = []string{
	constant.FieldCreatedAt,
	constant.FieldModifiedAt,
	model.FieldTitle,
	model.FieldLocation,
	model.FieldAirbnbPrice,
	model.FieldBookingPrice,
	model.FieldVrboPrice,
	model.FieldMaxGuests,
}

var actionMessages = map[model.Action]string{
	model.ActionSync:    "Listing synced across all platforms",
	model.ActionPost:    "Listing posted to all platforms",
	model.ActionImprove: "AI improvements applied to listing",
}

type Listing interface {
	Create(ctx context.Context, req dto.CreateListingRequest) (dto.WriteListingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams) (dto.GetListingsResponse, error)
	Get(ctx context.Context, id string) (dto.ListingResponse, error)
	Update(ctx context.Context, req dto.UpdateListingRequest, id string) (dto.WriteListingResponse, error)
	Delete(ctx context.Context, id string) error
	RunAction(ctx context.Context, id string, action model.Action) (dto.ActionResponse, error)
	// Owned returns the uncached listing of the authenticated host.
	Owned(ctx context.Context, id string) (model.Listing, error)
	AllOwned(ctx context.Context) ([]model.Listing, error)
	ReplaceAvailability(ctx context.Context, id string, availability model.Availability) error
}

type serviceImpl struct {
	repo      repository.Listing
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
	publisher event.Publisher
	metrics   *metrics.Metrics
}

func New(
	repo repository.Listing,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
	publisher event.Publisher,
	metrics *metrics.Metrics,
) Listing {
	return &serviceImpl{
		repo:      repo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
		publisher: publisher,
		metrics:   metrics,
	}
}

func ownedFilter(id, owner string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Value: id, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldOwnerID, Value: owner, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func ownerFilter(owner string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldOwnerID, Value: owner, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateListingRequest) (res dto.WriteListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	photos, rejected, uploaded, err := s.storePhotos(ctx, req.Photos)
	if err != nil {
		return res, err
	}

	if s.cfg.Listing.RequirePhoto && len(photos) == 0 {
		return res, failure.BadRequestFromString(noPhotoMessage(rejected))
	}

	listing := req.ToModel(owner, photos)

	if err = s.repo.Insert(ctx, listing); err != nil {
		log.Error().Err(err).Msg("failed to create listing")
		s.discardPhotos(ctx, uploaded)

		return res, fmt.Errorf("failed to create listing: %w", err)
	}

	s.metrics.ListingWritten(string(event.OpCreated))
	s.afterWrite(ctx, event.OpCreated, listing.ID, owner, nil)

	return dto.WriteListingResponse{ID: listing.ID, Photos: photos, RejectedPhotos: rejected}, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams) (res dto.GetListingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	if params.SortBy == constant.Empty {
		params.SortBy = constant.DefaultValueSortBy
	}

	if !slices.Contains(sortableFields, params.SortBy) {
		return res, failure.BadRequestFromString(fmt.Sprintf("listings cannot be sorted by %q", params.SortBy))
	}

	if params.SortDir == constant.Empty {
		params.SortDir = constant.DefaultValueSortDir
	}

	filter := ownerFilter(owner)
	cacheKey := shared.BuildCacheKeyWithQuery(event.CacheGetAllListing, params, filter, owner)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for listings")

		return res, nil
	}

	total, err := s.count(ctx, owner, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get listings")

		return res, fmt.Errorf("failed to get listings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save listings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) count(ctx context.Context, owner string, filter gDto.FilterGroup) (res int, err error) {
	cacheKey := shared.BuildCacheKey(event.CacheCountListing, owner)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count listings")

		return res, fmt.Errorf("failed to count listings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save listing count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(event.CacheGetListing, owner, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for listing")

		return res, nil
	}

	listing, err := s.Owned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(listing)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save listing to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Owned(ctx context.Context, id string) (res model.Listing, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Owned")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	res, err = s.repo.Get(ctx, ownedFilter(id, owner))
	if err != nil {
		log.Error().Err(err).Str("listing_id", id).Msg("failed to get listing")

		return res, fmt.Errorf("failed to get listing: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound("listing not found")
	}

	return res, nil
}

func (s *serviceImpl) AllOwned(ctx context.Context) (res []model.Listing, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.AllOwned")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return nil, err
	}

	res, err = s.repo.GetByOwner(ctx, owner)
	if err != nil {
		log.Error().Err(err).Msg("failed to get owned listings")

		return nil, fmt.Errorf("failed to get listings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateListingRequest, id string) (res dto.WriteListingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.Owned(ctx, id)
	if err != nil {
		return res, err
	}

	photos := []string(current.Photos)
	rejected := []dto.PhotoRejection{}

	var uploaded, replaced []string

	if req.Photos != nil {
		photos, rejected, uploaded, err = s.storePhotos(ctx, *req.Photos)
		if err != nil {
			return res, err
		}

		if s.cfg.Listing.RequirePhoto && len(photos) == 0 {
			return res, failure.BadRequestFromString(noPhotoMessage(rejected))
		}

		for _, photo := range current.Photos {
			if !slices.Contains(photos, photo) {
				replaced = append(replaced, photo)
			}
		}
	}

	if err = s.repo.Update(ctx, req.Fields(current.OwnerID, photos), ownedFilter(id, current.OwnerID)); err != nil {
		log.Error().Err(err).Str("listing_id", id).Msg("failed to update listing")
		s.discardPhotos(ctx, uploaded)

		return res, fmt.Errorf("failed to update listing: %w", err)
	}

	s.metrics.ListingWritten(string(event.OpUpdated))
	s.afterWrite(ctx, event.OpUpdated, id, current.OwnerID, replaced)

	return dto.WriteListingResponse{ID: id, Photos: photos, RejectedPhotos: rejected}, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.Owned(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, ownedFilter(id, current.OwnerID)); err != nil {
		log.Error().Err(err).Str("listing_id", id).Msg("failed to delete listing")

		return fmt.Errorf("failed to delete listing: %w", err)
	}

	s.metrics.ListingWritten(string(event.OpDeleted))
	s.afterWrite(ctx, event.OpDeleted, id, current.OwnerID, current.Photos)

	return nil
}

// RunAction simulates a channel call. Only sync leaves a trace on the listing.
func (s *serviceImpl) RunAction(ctx context.Context, id string, action model.Action) (res dto.ActionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.RunAction")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !action.Valid() {
		return res, failure.BadRequestFromString(fmt.Sprintf("unknown listing action %q", action))
	}

	owner, err := shared.HostID(ctx)
	if err != nil {
		return res, err
	}

	filter := ownedFilter(id, owner)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("listing_id", id).Msg("failed to check listing existence")

		return res, fmt.Errorf("failed to check listing: %w", err)
	}

	if !exist {
		return res, failure.NotFound("listing not found")
	}

	if err = shared.SimulateLatency(ctx, shared.MockDelay(s.cfg.App.MockDelayMS)); err != nil {
		return res, err
	}

	s.metrics.MockAction(model.EntityName, string(action))

	if action == model.ActionSync {
		now := timezone.Now()
		fields := shared.TransformFields(dto.SyncListingRequest{Status: model.SyncStatusSynced, LastSync: &now}, owner)

		if err = s.repo.Update(ctx, fields, filter); err != nil {
			log.Error().Err(err).Str("listing_id", id).Msg("failed to mark listing synced")

			return res, fmt.Errorf("failed to sync listing: %w", err)
		}

		s.metrics.ListingWritten(string(event.OpSynced))
		s.afterWrite(ctx, event.OpSynced, id, owner, nil)
	}

	return dto.ActionResponse{ListingID: id, Action: string(action), Message: actionMessages[action]}, nil
}

func (s *serviceImpl) ReplaceAvailability(ctx context.Context, id string, availability model.Availability) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".listing.ReplaceAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	owner, err := shared.HostID(ctx)
	if err != nil {
		return err
	}

	if err = s.repo.UpdateAvailability(ctx, id, owner, availability.Normalize()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return failure.NotFound("listing not found")
		}

		log.Error().Err(err).Str("listing_id", id).Msg("failed to update availability")

		return fmt.Errorf("failed to update availability: %w", err)
	}

	s.metrics.ListingWritten(string(event.OpAvailability))
	s.afterWrite(ctx, event.OpAvailability, id, owner, nil)

	return nil
}

// afterWrite drops the owner's cached reads, announces the change and removes orphaned photos.
func (s *serviceImpl) afterWrite(ctx context.Context, op event.Op, id, owner string, orphaned []string) {
	go func() {
		c := context.WithoutCancel(ctx)
		change := event.NewListingChanged(op, id, owner)

		event.InvalidateCaches(c, s.cache, change)

		s.publisher.Publish(c, change)
		s.discardPhotos(c, orphaned)
	}()
}

// storePhotos keeps remote urls, uploads valid data urls and reports the rest.
// An upload failure aborts the batch and removes what was already uploaded.
func (s *serviceImpl) storePhotos(ctx context.Context, photos []string) (accepted []string, rejected []dto.PhotoRejection, uploaded []string, err error) {
	accepted = make([]string, 0, len(photos))
	rejected = []dto.PhotoRejection{}
	rule := fmt.Sprintf("mimetypes=%s,maxfilesize=%g", strings.Join(allowedPhotoTypes, " "), s.cfg.Listing.MaxPhotoMB)

	for index, photo := range photos {
		switch {
		case strings.HasPrefix(photo, "https://") || strings.HasPrefix(photo, "http://"):
			accepted = append(accepted, photo)
		case base64.IsDataURL(photo):
			if err := validator.ValidateVar(photo, rule); err != nil {
				rejected = append(rejected, dto.PhotoRejection{Index: index, Reason: photoRejectionReason(photo, s.cfg.Listing.MaxPhotoMB)})

				continue
			}

			contentType, data, err := base64.Decode(photo)
			if err != nil {
				rejected = append(rejected, dto.PhotoRejection{Index: index, Reason: "photo is not valid base64"})

				continue
			}

			fileName := fmt.Sprintf("%s.%s", uuid.NewString(), base64.Extension(contentType))

			url, err := s.s3.Upload(ctx, s.cfg.External.S3.PhotoDirectory, fileName, contentType, data)
			if err != nil {
				log.Error().Err(err).Int("index", index).Msg("failed to upload listing photo")
				s.discardPhotos(ctx, uploaded)

				return nil, nil, nil, fmt.Errorf("failed to upload photo %d: %w", index, err)
			}

			uploaded = append(uploaded, url)
			accepted = append(accepted, url)
		default:
			rejected = append(rejected, dto.PhotoRejection{Index: index, Reason: "photo must be an http(s) url or an image data url"})
		}
	}

	if len(rejected) > 0 {
		s.metrics.PhotosRejected(len(rejected))
	}

	return accepted, rejected, uploaded, nil
}

func (s *serviceImpl) discardPhotos(ctx context.Context, urls []string) {
	for _, url := range urls {
		if err := s.s3.Delete(ctx, url); err != nil && !errors.Is(err, s3.ErrForeignObject) {
			log.Error().Err(err).Str("url", url).Msg("failed to delete listing photo")
		}
	}
}

func photoRejectionReason(photo string, maxMB float64) string {
	if !slices.Contains(allowedPhotoTypes, base64.GetContentType(photo)) {
		return "file is not a supported image"
	}

	return fmt.Sprintf("image is larger than %gMB", maxMB)
}

func noPhotoMessage(rejected []dto.PhotoRejection) string {
	if len(rejected) == 0 {
		return "at least one photo is required"
	}

	reasons := make([]string, len(rejected))
	for i, rejection := range rejected {
		reasons[i] = fmt.Sprintf("photo %d: %s", rejection.Index, rejection.Reason)
	}

	return "at least one valid photo is required (" + strings.Join(reasons, "; ") + ")"
}
