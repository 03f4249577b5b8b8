package pricing_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hostdeck/infras/otel/mocks"
	pricingMocks "hostdeck/internal/domains/pricing/mocks"
	"hostdeck/internal/domains/pricing/model"
	"hostdeck/internal/handlers/pricing"
	"hostdeck/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		setupMock  func(m *pricingMocks.MockPricing)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "insights",
			method: http.MethodGet,
			path:   "/listings/listing-1/pricing",
			setupMock: func(m *pricingMocks.MockPricing) {
				m.EXPECT().GetInsights(gomock.Any(), "listing-1").Return(model.Insights{ListingID: "listing-1", CurrentPrice: 250}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"data":{"listing_id":"listing-1","listing_title":"","current_price":250,"competitors":null,` +
				`"recommendation":{"price":0,"confidence":0,"explanation":""},` +
				`"trend":{"days":null,"your_price":null,"competitor_avg":null,"competitor_min":null}}}`,
		},
		{
			name:   "insights of unknown listing",
			method: http.MethodGet,
			path:   "/listings/missing/pricing",
			setupMock: func(m *pricingMocks.MockPricing) {
				m.EXPECT().GetInsights(gomock.Any(), "missing").Return(model.Insights{}, failure.NotFound("listing not found"))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"listing not found"}`,
		},
		{
			name:   "apply",
			method: http.MethodPost,
			path:   "/listings/listing-1/pricing/apply",
			setupMock: func(m *pricingMocks.MockPricing) {
				m.EXPECT().ApplyRecommendation(gomock.Any(), "listing-1").
					Return(model.ApplyResult{ListingID: "listing-1", Price: 255, Message: "done"}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"listing_id":"listing-1","price":255,"message":"done"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := pricingMocks.NewMockPricing(gomock.NewController(t))
			tt.setupMock(mockService)

			handler := pricing.New(mockService, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
