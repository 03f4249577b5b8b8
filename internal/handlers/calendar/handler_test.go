package calendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	otelMocks "hostdeck/infras/otel/mocks"
	calendarMocks "hostdeck/internal/domains/calendar/mocks"
	"hostdeck/internal/domains/calendar/model"
	"hostdeck/internal/domains/calendar/model/dto"
	listingModel "hostdeck/internal/domains/listing/model"
	"hostdeck/internal/handlers/calendar"
	"hostdeck/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*calendarMocks.MockCalendar, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockService := calendarMocks.NewMockCalendar(ctrl)

	handler := calendar.New(mockService, otelMocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return mockService, router
}

func TestHandler_ClickDate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *calendarMocks.MockCalendar)
		wantStatus int
		wantBody   string
	}{
		{
			name: "anchor set",
			body: `{"date":"2025-03-01"}`,
			setupMock: func(m *calendarMocks.MockCalendar) {
				m.EXPECT().ClickDate(gomock.Any(), "listing-1", "2025-03-01").Return(dto.AnchorSet("2025-03-01"), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"status":"anchor_set","anchor":"2025-03-01"}}`,
		},
		{
			name: "toggled",
			body: `{"date":"2025-03-02"}`,
			setupMock: func(m *calendarMocks.MockCalendar) {
				m.EXPECT().ClickDate(gomock.Any(), "listing-1", "2025-03-02").Return(dto.Toggled(listingModel.ToggleResult{
					Action: listingModel.ToggleActionBlock,
					Start:  "2025-03-01",
					End:    "2025-03-02",
					Dates:  []string{"2025-03-01", "2025-03-02"},
				}), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"data":{"status":"toggled","action":"block","start":"2025-03-01","end":"2025-03-02","dates":["2025-03-01","2025-03-02"]}}`,
		},
		{
			name:       "malformed date",
			body:       `{"date":"tomorrow"}`,
			setupMock:  func(_ *calendarMocks.MockCalendar) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "booked range",
			body: `{"date":"2025-03-06"}`,
			setupMock: func(m *calendarMocks.MockCalendar) {
				m.EXPECT().ClickDate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(dto.ClickResponse{}, failure.BadRequestFromString("range contains booked dates: 2025-03-05"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"range contains booked dates: 2025-03-05"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService, router := newRouter(t)
			tt.setupMock(mockService)

			req := httptest.NewRequest(http.MethodPost, "/listings/listing-1/calendar/click", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestHandler_GetCalendar(t *testing.T) {
	mockService, router := newRouter(t)

	anchor := "2025-03-01"
	mockService.EXPECT().Get(gomock.Any(), "listing-1").Return(dto.CalendarResponse{
		ListingID:     "listing-1",
		Availability:  listingModel.Availability{{Date: "2025-03-01", Available: true}},
		PendingAnchor: &anchor,
	}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/listings/listing-1/calendar", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Data dto.CalendarResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2025-03-01", *body.Data.PendingAnchor)
}

func TestHandler_CancelSelection(t *testing.T) {
	mockService, router := newRouter(t)

	mockService.EXPECT().CancelSelection(gomock.Any(), "listing-1").DoAndReturn(func(_ context.Context, _ string) error {
		return nil
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/listings/listing-1/calendar/selection", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_ToggleRange(t *testing.T) {
	mockService, router := newRouter(t)

	mockService.EXPECT().
		ToggleRange(gomock.Any(), "listing-1", "2025-03-01", "2025-03-03").
		Return(dto.ClickResponse{Status: model.ClickStatusToggled, Action: listingModel.ToggleActionUnblock}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/listings/listing-1/calendar/toggle",
		strings.NewReader(`{"start":"2025-03-01","end":"2025-03-03"}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"unblock"`)
}
