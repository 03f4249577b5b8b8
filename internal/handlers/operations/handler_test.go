package operations_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hostdeck/infras/otel/mocks"
	listingModel "hostdeck/internal/domains/listing/model"
	operationsMocks "hostdeck/internal/domains/operations/mocks"
	"hostdeck/internal/domains/operations/model"
	"hostdeck/internal/domains/operations/model/dto"
	"hostdeck/internal/handlers/operations"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setupMock  func(m *operationsMocks.MockOperations)
		wantStatus int
	}{
		{
			name:   "steps",
			method: http.MethodGet,
			path:   "/operations/onboarding/steps",
			setupMock: func(m *operationsMocks.MockOperations) {
				m.EXPECT().OnboardingSteps(gomock.Any()).Return(model.OnboardingSteps())
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "start onboarding",
			method: http.MethodPost,
			path:   "/operations/onboarding",
			body: `{"guest_name":"Sarah Johnson","check_in":"2025-12-20","check_out":"2025-12-25",` +
				`"listing_id":"listing-1","platform":"booking"}`,
			setupMock: func(m *operationsMocks.MockOperations) {
				m.EXPECT().StartOnboarding(gomock.Any(), dto.StartOnboardingRequest{
					GuestName: "Sarah Johnson",
					CheckIn:   "2025-12-20",
					CheckOut:  "2025-12-25",
					ListingID: "listing-1",
					Platform:  listingModel.PlatformBooking,
				}).Return(dto.OnboardingResponse{Nights: 5}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "onboarding without guest",
			method:     http.MethodPost,
			path:       "/operations/onboarding",
			body:       `{"check_in":"2025-12-20","check_out":"2025-12-25","listing_id":"listing-1","platform":"booking"}`,
			setupMock:  func(_ *operationsMocks.MockOperations) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "onboarding on unknown platform",
			method:     http.MethodPost,
			path:       "/operations/onboarding",
			body:       `{"guest_name":"A","check_in":"2025-12-20","check_out":"2025-12-25","listing_id":"l","platform":"expedia"}`,
			setupMock:  func(_ *operationsMocks.MockOperations) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "start offboarding",
			method: http.MethodPost,
			path:   "/operations/offboarding",
			body:   `{"completed":["checkout"]}`,
			setupMock: func(m *operationsMocks.MockOperations) {
				m.EXPECT().StartOffboarding(gomock.Any(), dto.StartOffboardingRequest{Completed: []string{"checkout"}}).
					Return(dto.OffboardingResponse{Completed: []string{"checkout"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := operationsMocks.NewMockOperations(gomock.NewController(t))
			tt.setupMock(mockService)

			handler := operations.New(mockService, otelMocks.NewOtel())
			router := chi.NewRouter()
			handler.Router(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
