package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hostdeck/config"
	"hostdeck/infras/metrics"
	otelMocks "hostdeck/infras/otel/mocks"
	calendarMocks "hostdeck/internal/domains/calendar/mocks"
	calendarDto "hostdeck/internal/domains/calendar/model/dto"
	"hostdeck/internal/domains/listing/event"
	listingMocks "hostdeck/internal/domains/listing/mocks"
	listingDto "hostdeck/internal/domains/listing/model/dto"
	pricingMocks "hostdeck/internal/domains/pricing/mocks"
	pricingModel "hostdeck/internal/domains/pricing/model"
	calendarHandler "hostdeck/internal/handlers/calendar"
	listingHandler "hostdeck/internal/handlers/listing"
	pricingHandler "hostdeck/internal/handlers/pricing"
	"hostdeck/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type openAuthRole struct{}

func (openAuthRole) Auth(next http.Handler) http.Handler   { return next }
func (openAuthRole) APIKey(next http.Handler) http.Handler { return next }
func (openAuthRole) RBAC(next http.Handler) http.Handler   { return next }

func TestRouter_ListingScopedRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	otl := otelMocks.NewOtel()
	listings := listingMocks.NewMockListingService(ctrl)
	calendars := calendarMocks.NewMockCalendar(ctrl)
	pricing := pricingMocks.NewMockPricing(ctrl)

	cfg := &config.Config{}

	routes := router.New(router.DomainHandlers{
		Listing:  listingHandler.New(listings, event.NewHub(), otl),
		Calendar: calendarHandler.New(calendars, otl),
		Pricing:  pricingHandler.New(pricing, otl),
	}, openAuthRole{}, metrics.NewNop(), cfg)

	mux := chi.NewRouter()
	routes.SetupRoutes(mux, func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })

	tests := []struct {
		name      string
		path      string
		setupMock func()
	}{
		{
			name: "listing",
			path: "/v1/listings/abc",
			setupMock: func() {
				listings.EXPECT().Get(gomock.Any(), "abc").Return(listingDto.ListingResponse{ID: "abc"}, nil)
			},
		},
		{
			name: "calendar",
			path: "/v1/listings/abc/calendar",
			setupMock: func() {
				calendars.EXPECT().Get(gomock.Any(), "abc").Return(calendarDto.CalendarResponse{ListingID: "abc"}, nil)
			},
		},
		{
			name: "pricing",
			path: "/v1/listings/abc/pricing",
			setupMock: func() {
				pricing.EXPECT().GetInsights(gomock.Any(), "abc").Return(pricingModel.Insights{ListingID: "abc"}, nil)
			},
		},
		{
			name:      "health",
			path:      "/healthz",
			setupMock: func() {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
