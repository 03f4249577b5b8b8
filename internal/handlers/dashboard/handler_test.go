package dashboard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hostdeck/infras/otel/mocks"
	dashboardMocks "hostdeck/internal/domains/dashboard/mocks"
	"hostdeck/internal/domains/dashboard/model"
	"hostdeck/internal/handlers/dashboard"
	"hostdeck/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Routes(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setupMock  func(m *dashboardMocks.MockDashboard)
		wantStatus int
		wantBody   string
	}{
		{
			name: "stats",
			path: "/dashboard/stats",
			setupMock: func(m *dashboardMocks.MockDashboard) {
				m.EXPECT().GetStats(gomock.Any()).Return(model.Stats{TotalListings: 2, Activities: []model.Activity{}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"data":{"total_listings":2,"upcoming_booking_count":0,"revenue":0,"last_month_revenue":0,` +
				`"revenue_change_percent":0,"activities":[],"classification_conflicts":0}}`,
		},
		{
			name: "stats unauthorized",
			path: "/dashboard/stats",
			setupMock: func(m *dashboardMocks.MockDashboard) {
				m.EXPECT().GetStats(gomock.Any()).Return(model.Stats{}, failure.Unauthorized("missing host identity"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"missing host identity"}`,
		},
		{
			name: "automation",
			path: "/dashboard/automation",
			setupMock: func(m *dashboardMocks.MockDashboard) {
				m.EXPECT().GetAutomationStatus(gomock.Any()).Return(model.AutomationStatus{
					ListingSync: model.AutomationWarning,
					PriceSync:   model.AutomationActive,
					Messaging:   model.AutomationActive,
					Cleaning:    model.AutomationActive,
					Offboarding: model.AutomationActive,
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody: `{"data":{"listing_sync":"warning","price_sync":"active","messaging":"active",` +
				`"cleaning":"active","offboarding":"active"}}`,
		},
		{
			name: "cleaning schedule failure",
			path: "/operations/cleaning",
			setupMock: func(m *dashboardMocks.MockDashboard) {
				m.EXPECT().GetCleaningSchedule(gomock.Any()).Return(model.CleaningSchedule{}, errors.New("db down"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"db down"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := dashboardMocks.NewMockDashboard(gomock.NewController(t))
			tt.setupMock(mockService)

			handler := dashboard.New(mockService, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
