package listing_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	otelMocks "hostdeck/infras/otel/mocks"
	"hostdeck/internal/domains/listing/event"
	listingMocks "hostdeck/internal/domains/listing/mocks"
	"hostdeck/internal/domains/listing/model"
	"hostdeck/internal/domains/listing/model/dto"
	"hostdeck/internal/handlers/listing"
	"hostdeck/shared/constant"
	"hostdeck/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*listingMocks.MockListingService, *event.Hub, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := listingMocks.NewMockListingService(ctrl)
	hub := event.NewHub()

	handler := listing.New(mockService, hub, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return mockService, hub, router
}

func TestHandler_CreateListing(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *listingMocks.MockListingService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "created with a rejected photo",
			body: `{"title":"Beachfront Villa","location":"Bali","airbnb_price":200,"photos":["https://cdn/a.jpg","data:text/plain;base64,aGk="]}`,
			setupMock: func(m *listingMocks.MockListingService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req dto.CreateListingRequest) (dto.WriteListingResponse, error) {
					assert.Equal(t, "Beachfront Villa", req.Title)
					assert.Len(t, req.Photos, 2)

					return dto.WriteListingResponse{
						ID:             "listing-1",
						Photos:         []string{"https://cdn/a.jpg"},
						RejectedPhotos: []dto.PhotoRejection{{Index: 1, Reason: "not an image"}},
					}, nil
				})
			},
			wantStatus: http.StatusCreated,
			wantBody:   `{"data":{"id":"listing-1","photos":["https://cdn/a.jpg"],"rejected_photos":[{"index":1,"reason":"not an image"}]}}`,
		},
		{
			name:       "missing title",
			body:       `{"location":"Bali"}`,
			setupMock:  func(_ *listingMocks.MockListingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative price",
			body:       `{"title":"Villa","location":"Bali","vrbo_price":-1}`,
			setupMock:  func(_ *listingMocks.MockListingService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "no accepted photo",
			body: `{"title":"Villa","location":"Bali"}`,
			setupMock: func(m *listingMocks.MockListingService) {
				m.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.WriteListingResponse{}, failure.BadRequestFromString("at least one photo is required"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"at least one photo is required"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, _, router := newRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/listings", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_GetListingByID(t *testing.T) {
	mockService, _, router := newRouter(t)

	mockService.EXPECT().Get(gomock.Any(), "missing").Return(dto.ListingResponse{}, failure.NotFound("listing not found"))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listings/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"listing not found"}`, rec.Body.String())
}

func TestHandler_DeleteListing(t *testing.T) {
	mockService, _, router := newRouter(t)

	mockService.EXPECT().Delete(gomock.Any(), "listing-1").Return(nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/listings/listing-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Listing deleted successfully"}`, rec.Body.String())
}

func TestHandler_RunAction(t *testing.T) {
	tests := []struct {
		name       string
		action     string
		setupMock  func(m *listingMocks.MockListingService)
		wantStatus int
	}{
		{
			name:   "sync",
			action: "sync",
			setupMock: func(m *listingMocks.MockListingService) {
				m.EXPECT().RunAction(gomock.Any(), "listing-1", model.ActionSync).
					Return(dto.ActionResponse{ListingID: "listing-1", Action: "sync", Message: "Listing synced"}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "unknown action",
			action: "publish",
			setupMock: func(m *listingMocks.MockListingService) {
				m.EXPECT().RunAction(gomock.Any(), "listing-1", model.Action("publish")).
					Return(dto.ActionResponse{}, failure.BadRequestFromString("unknown action: publish"))
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, _, router := newRouter(t)
			tt.setupMock(mockService)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/listings/listing-1/actions/"+tt.action, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

type streamRecorder struct {
	mu     sync.Mutex
	header http.Header
	code   int
	body   bytes.Buffer
}

func (s *streamRecorder) Header() http.Header { return s.header }

func (s *streamRecorder) WriteHeader(code int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.code = code
}

func (s *streamRecorder) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.body.Write(p)
}

func (s *streamRecorder) Flush() {}

func (s *streamRecorder) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.body.String()
}

func TestHandler_StreamChanges(t *testing.T) {
	_, hub, router := newRouter(t)

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), constant.ContextKeyHostID, "host-1"))
	defer cancel()

	rec := &streamRecorder{header: http.Header{}}
	req := httptest.NewRequest(http.MethodGet, "/listings/changes", nil).WithContext(ctx)

	done := make(chan struct{})

	go func() {
		defer close(done)
		router.ServeHTTP(rec, req)
	}()

	require.Eventually(t, func() bool { return hub.Subscribers("host-1") == 1 }, time.Second, 5*time.Millisecond)

	hub.Broadcast(event.ListingChanged{Op: event.OpUpdated, ListingID: "listing-1", OwnerID: "host-1"})
	hub.Broadcast(event.ListingChanged{Op: event.OpDeleted, ListingID: "listing-2", OwnerID: "host-2"})

	require.Eventually(t, func() bool { return strings.Contains(rec.String(), "event: updated") }, time.Second, 5*time.Millisecond)

	cancel()
	<-done

	assert.Equal(t, http.StatusOK, rec.code)
	assert.Equal(t, constant.ContentTypeEventStream, rec.header.Get(constant.RequestHeaderContentType))
	assert.Contains(t, rec.String(), `"listing_id":"listing-1"`)
	assert.NotContains(t, rec.String(), "listing-2")
	assert.Zero(t, hub.Subscribers("host-1"))
}

func TestHandler_StreamChangesRequiresHost(t *testing.T) {
	_, _, router := newRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listings/changes", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
