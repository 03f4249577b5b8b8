package repository

//go:generate go run go.uber.org/mock/mockgen -source=./anchor.go -destination=../mocks/anchor_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"hostdeck/config"
	"hostdeck/infras/otel"
	"hostdeck/internal/domains/calendar/model"
	"hostdeck/shared"
	"hostdeck/shared/cache"
	"hostdeck/shared/constant"
	"hostdeck/shared/timezone"
)

const cacheAnchor = "calendar:anchor"

// Anchor keeps at most one pending selection per host and listing.
type Anchor interface {
	Set(ctx context.Context, owner, listingID, date string) error
	// Take returns and removes the pending anchor.
	Take(ctx context.Context, owner, listingID string) (date string, found bool, err error)
	Peek(ctx context.Context, owner, listingID string) (date string, found bool, err error)
	Clear(ctx context.Context, owner, listingID string) error
}

type anchorImpl struct {
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func NewAnchor(cache cache.RedisCache, cfg *config.Config, otel otel.Otel) Anchor {
	return &anchorImpl{
		cache: cache,
		cfg:   cfg,
		otel:  otel,
	}
}

func anchorKey(owner, listingID string) string {
	return shared.BuildCacheKey(cacheAnchor, owner, listingID)
}

func (r *anchorImpl) Set(ctx context.Context, owner, listingID, date string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".anchor.Set")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	anchor := model.Anchor{ListingID: listingID, Date: date, SetAt: timezone.Now()}

	if err = r.cache.Save(ctx, anchorKey(owner, listingID), anchor, r.cfg.Calendar.AnchorTTLSeconds); err != nil {
		return fmt.Errorf("failed to store selection anchor: %w", err)
	}

	return nil
}

func (r *anchorImpl) Take(ctx context.Context, owner, listingID string) (date string, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".anchor.Take")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var anchor model.Anchor

	if err = r.cache.Take(ctx, anchorKey(owner, listingID), &anchor); err != nil {
		if errors.Is(err, cache.Nil) {
			return constant.Empty, false, nil
		}

		return constant.Empty, false, fmt.Errorf("failed to take selection anchor: %w", err)
	}

	return anchor.Date, true, nil
}

func (r *anchorImpl) Peek(ctx context.Context, owner, listingID string) (date string, found bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".anchor.Peek")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var anchor model.Anchor

	if err = r.cache.Get(ctx, anchorKey(owner, listingID), &anchor); err != nil {
		if errors.Is(err, cache.Nil) {
			return constant.Empty, false, nil
		}

		return constant.Empty, false, fmt.Errorf("failed to read selection anchor: %w", err)
	}

	return anchor.Date, true, nil
}

func (r *anchorImpl) Clear(ctx context.Context, owner, listingID string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".anchor.Clear")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = r.cache.Delete(ctx, anchorKey(owner, listingID)); err != nil {
		return fmt.Errorf("failed to clear selection anchor: %w", err)
	}

	return nil
}
