package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hostdeck/config"
	"hostdeck/infras/metrics"
	otelMocks "hostdeck/infras/otel/mocks"
	"hostdeck/infras/s3"
	s3Mocks "hostdeck/infras/s3/mocks"
	listingMocks "hostdeck/internal/domains/listing/mocks"
	"hostdeck/internal/domains/listing/model"
	"hostdeck/internal/domains/listing/model/dto"
	"hostdeck/internal/domains/listing/repository"
	"hostdeck/internal/domains/listing/service"
	cacheMocks "hostdeck/shared/cache/mocks"
	"hostdeck/shared/constant"
	gDto "hostdeck/shared/dto"
	"hostdeck/shared/failure"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	pngPhoto  = "data:image/png;base64,iVBORw0KGgo="
	textPhoto = "data:text/plain;base64,aGVsbG8="
)

type fixture struct {
	repo      *listingMocks.MockListing
	cache     *cacheMocks.MockRedisCache
	s3        *s3Mocks.MockS3
	publisher *listingMocks.MockPublisher
	svc       service.Listing
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60
	cfg.Listing.RequirePhoto = true
	cfg.Listing.MaxPhotoMB = 5
	cfg.External.S3.PhotoDirectory = "listings"

	f := &fixture{
		repo:      listingMocks.NewMockListing(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		s3:        s3Mocks.NewMockS3(ctrl),
		publisher: listingMocks.NewMockPublisher(ctrl),
	}

	f.svc = service.New(f.repo, cfg, f.cache, otelMocks.NewOtel(), f.s3, f.publisher, metrics.NewNop())

	return f
}

// expectAsync accepts the fire-and-forget work that follows reads and writes.
func (f *fixture) expectAsync() {
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()
	f.s3.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(s3.ErrForeignObject).AnyTimes()
}

func hostContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyHostID, "host-1")
}

func storedListing() model.Listing {
	return model.Listing{
		ID:          "listing-1",
		OwnerID:     "host-1",
		Title:       "Modern Downtown Loft",
		Location:    "Austin, TX",
		Photos:      pq.StringArray{"https://cdn.example.com/listings/a.jpg"},
		AirbnbPrice: 180,
		SyncStatus:  model.SyncStatusPending,
	}
}

func TestListingService_Create(t *testing.T) {
	tests := []struct {
		name         string
		req          dto.CreateListingRequest
		setupMock    func(f *fixture)
		wantCode     int
		wantPhotos   []string
		wantRejected int
	}{
		{
			name: "remote photo is kept",
			req: dto.CreateListingRequest{
				Title:    "Modern Downtown Loft",
				Location: "Austin, TX",
				Photos:   []string{"https://images.example.com/loft.jpg"},
			},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, listing model.Listing) error {
						assert.Equal(t, "host-1", listing.OwnerID)
						assert.Equal(t, model.SyncStatusPending, listing.SyncStatus)
						assert.Equal(t, "https://images.example.com/loft.jpg", listing.Thumbnail)

						return nil
					})
			},
			wantPhotos: []string{"https://images.example.com/loft.jpg"},
		},
		{
			name: "data url photo is uploaded and invalid one reported",
			req: dto.CreateListingRequest{
				Title:    "Beachfront Villa",
				Location: "Miami, FL",
				Photos:   []string{pngPhoto, textPhoto, "ftp://example.com/a.png"},
			},
			setupMock: func(f *fixture) {
				f.s3.EXPECT().
					Upload(gomock.Any(), "listings", gomock.Any(), "image/png", gomock.Any()).
					Return("https://cdn.example.com/listings/new.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantPhotos:   []string{"https://cdn.example.com/listings/new.png"},
			wantRejected: 2,
		},
		{
			name: "no acceptable photo",
			req: dto.CreateListingRequest{
				Title:    "Beachfront Villa",
				Location: "Miami, FL",
				Photos:   []string{textPhoto},
			},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "upload failure",
			req: dto.CreateListingRequest{
				Title:    "Beachfront Villa",
				Location: "Miami, FL",
				Photos:   []string{pngPhoto},
			},
			setupMock: func(f *fixture) {
				f.s3.EXPECT().
					Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("bucket unavailable"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "insert failure removes uploaded photos",
			req: dto.CreateListingRequest{
				Title:    "Beachfront Villa",
				Location: "Miami, FL",
				Photos:   []string{pngPhoto},
			},
			setupMock: func(f *fixture) {
				f.s3.EXPECT().
					Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/listings/new.png", nil)
				f.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				f.s3.EXPECT().Delete(gomock.Any(), "https://cdn.example.com/listings/new.png").Return(nil)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)
			f.expectAsync()

			res, err := f.svc.Create(hostContext(), tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.wantPhotos, res.Photos)
			assert.Len(t, res.RejectedPhotos, tt.wantRejected)
		})
	}
}

func TestListingService_CreateRequiresHost(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Create(context.Background(), dto.CreateListingRequest{Title: "Loft", Location: "Austin"})

	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestListingService_GetAll(t *testing.T) {
	tests := []struct {
		name      string
		params    gDto.QueryParams
		setupMock func(f *fixture)
		wantCode  int
		wantTotal int
	}{
		{
			name: "cache hit",
			setupMock: func(f *fixture) {
				f.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, value any) error {
						res, _ := value.(*dto.GetListingsResponse)
						res.TotalData = 7

						return nil
					})
			},
			wantTotal: 7,
		},
		{
			name:   "cache miss",
			params: gDto.QueryParams{Page: 1, Limit: 10},
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Listing, error) {
						assert.Equal(t, constant.DefaultValueSortBy, params.SortBy)
						assert.Equal(t, constant.DefaultValueSortDir, params.SortDir)

						return []model.Listing{storedListing()}, nil
					})
			},
			wantTotal: 1,
		},
		{
			name:      "unsortable column",
			params:    gDto.QueryParams{SortBy: "owner_id; DROP TABLE listings"},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "repository failure",
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)
			f.expectAsync()

			res, err := f.svc.GetAll(hostContext(), tt.params)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, res.TotalData)
		})
	}
}

func TestListingService_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "found",
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), "listing:get:host-1:listing-1", gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedListing(), nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f *fixture) {
				f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)
			f.expectAsync()

			res, err := f.svc.Get(hostContext(), "listing-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "listing-1", res.ID)
			assert.Equal(t, []model.Platform{model.PlatformAirbnb}, res.Platforms)
		})
	}
}

func TestListingService_Update(t *testing.T) {
	title := "Renovated Loft"
	photos := []string{pngPhoto}

	tests := []struct {
		name       string
		req        dto.UpdateListingRequest
		setupMock  func(f *fixture)
		wantCode   int
		wantPhotos []string
	}{
		{
			name: "fields only keep existing photos",
			req:  dto.UpdateListingRequest{Title: &title},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedListing(), nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, "Renovated Loft", fields[model.FieldTitle])
						assert.Equal(t, model.SyncStatusPending, fields[model.FieldSyncStatus])
						assert.NotContains(t, fields, model.FieldPhotos)

						return nil
					})
			},
			wantPhotos: []string{"https://cdn.example.com/listings/a.jpg"},
		},
		{
			name: "photos replaced",
			req:  dto.UpdateListingRequest{Photos: &photos},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedListing(), nil)
				f.s3.EXPECT().
					Upload(gomock.Any(), gomock.Any(), gomock.Any(), "image/png", gomock.Any()).
					Return("https://cdn.example.com/listings/b.png", nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, pq.StringArray{"https://cdn.example.com/listings/b.png"}, fields[model.FieldPhotos])
						assert.Equal(t, "https://cdn.example.com/listings/b.png", fields[model.FieldThumbnail])

						return nil
					})
				f.s3.EXPECT().Delete(gomock.Any(), "https://cdn.example.com/listings/a.jpg").Return(nil)
			},
			wantPhotos: []string{"https://cdn.example.com/listings/b.png"},
		},
		{
			name: "not found",
			req:  dto.UpdateListingRequest{Title: &title},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository failure",
			req:  dto.UpdateListingRequest{Title: &title},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedListing(), nil)
				f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)
			f.expectAsync()

			res, err := f.svc.Update(hostContext(), tt.req, "listing-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantPhotos, res.Photos)
		})
	}
}

func TestListingService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "deleted",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedListing(), nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
				f.s3.EXPECT().Delete(gomock.Any(), "https://cdn.example.com/listings/a.jpg").Return(nil)
			},
		},
		{
			name: "not found",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Listing{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository failure",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(storedListing(), nil)
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)
			f.expectAsync()

			err := f.svc.Delete(hostContext(), "listing-1")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestListingService_RunAction(t *testing.T) {
	tests := []struct {
		name      string
		action    model.Action
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name:   "sync marks listing synced",
			action: model.ActionSync,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.SyncStatusSynced, fields[model.FieldSyncStatus])
						assert.NotNil(t, fields[model.FieldLastSync])

						return nil
					})
			},
		},
		{
			name:   "post only simulates",
			action: model.ActionPost,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
		},
		{
			name:      "unknown action",
			action:    model.Action("delist"),
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:   "not found",
			action: model.ActionImprove,
			setupMock: func(f *fixture) {
				f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)
			f.expectAsync()

			res, err := f.svc.RunAction(hostContext(), "listing-1", tt.action)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, string(tt.action), res.Action)
			assert.NotEmpty(t, res.Message)
		})
	}
}

func TestListingService_ReplaceAvailability(t *testing.T) {
	availability := model.Availability{
		{Date: "2025-03-02", Blocked: true},
		{Date: "2025-03-01", Available: true},
	}

	tests := []struct {
		name      string
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name: "stored normalized",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					UpdateAvailability(gomock.Any(), "listing-1", "host-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _, _ string, stored model.Availability) error {
						assert.Equal(t, "2025-03-01", stored[0].Date)

						return nil
					})
			},
		},
		{
			name: "not found",
			setupMock: func(f *fixture) {
				f.repo.EXPECT().
					UpdateAvailability(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(repository.ErrNotFound)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)
			f.expectAsync()

			err := f.svc.ReplaceAvailability(hostContext(), "listing-1", availability)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
