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
	integrationMocks "hostdeck/internal/domains/integration/mocks"
	"hostdeck/internal/domains/integration/model"
	"hostdeck/internal/domains/integration/model/dto"
	"hostdeck/internal/domains/integration/service"
	listingModel "hostdeck/internal/domains/listing/model"
	"hostdeck/shared/constant"
	"hostdeck/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	repo *integrationMocks.MockIntegration
	svc  service.Integration
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{repo: integrationMocks.NewMockIntegration(gomock.NewController(t))}
	f.svc = service.New(f.repo, &config.Config{}, otelMocks.NewOtel(), metrics.NewNop())

	return f
}

func hostContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyHostID, "host-1")
}

func TestIntegrationService_List(t *testing.T) {
	synced := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	f := newFixture(t)
	f.repo.EXPECT().GetByOwner(gomock.Any(), "host-1").Return([]model.Integration{
		{Platform: listingModel.PlatformVrbo, Connected: true, APIKeyHint: "****abcd", LastSync: &synced},
	}, nil)

	res, err := f.svc.List(hostContext())

	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, listingModel.PlatformAirbnb, res[0].Platform)
	assert.Equal(t, "Airbnb", res[0].Name)
	assert.False(t, res[0].Connected)
	assert.Nil(t, res[0].LastSync)
	assert.Equal(t, "Booking.com", res[1].Name)
	assert.True(t, res[2].Connected)
	assert.Equal(t, "****abcd", res[2].APIKeyHint)
}

func TestIntegrationService_ListFailure(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetByOwner(gomock.Any(), "host-1").Return(nil, errors.New("db down"))

	_, err := f.svc.List(hostContext())

	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}

func TestIntegrationService_Connect(t *testing.T) {
	tests := []struct {
		name      string
		platform  listingModel.Platform
		req       dto.ConnectRequest
		setupMock func(f *fixture)
		wantCode  int
	}{
		{
			name:     "first connection",
			platform: listingModel.PlatformAirbnb,
			req:      dto.ConnectRequest{APIKey: "key-123456", APISecret: "secret"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetByOwner(gomock.Any(), "host-1").Return([]model.Integration{}, nil)
				f.repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(i model.Integration) bool {
					return i.ID != "" && i.OwnerID == "host-1" && i.Connected && i.APIKeyHint == "****3456" &&
						i.LastSync != nil && i.CreatedBy == "host-1"
				})).Return(nil)
			},
		},
		{
			name:     "reconnection keeps the stored id",
			platform: listingModel.PlatformBooking,
			req:      dto.ConnectRequest{APIKey: "key-999999", APISecret: "secret"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetByOwner(gomock.Any(), "host-1").Return([]model.Integration{
					{ID: "integration-1", OwnerID: "host-1", Platform: listingModel.PlatformBooking},
				}, nil)
				f.repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(i model.Integration) bool {
					return i.ID == "integration-1" && i.Connected
				})).Return(nil)
			},
		},
		{
			name:      "missing secret",
			platform:  listingModel.PlatformAirbnb,
			req:       dto.ConnectRequest{APIKey: "key"},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "unknown platform",
			platform:  listingModel.Platform("expedia"),
			req:       dto.ConnectRequest{APIKey: "key", APISecret: "secret"},
			setupMock: func(_ *fixture) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:     "store failure",
			platform: listingModel.PlatformVrbo,
			req:      dto.ConnectRequest{APIKey: "key", APISecret: "secret"},
			setupMock: func(f *fixture) {
				f.repo.EXPECT().GetByOwner(gomock.Any(), "host-1").Return([]model.Integration{}, nil)
				f.repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Connect(hostContext(), tt.platform, tt.req)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.True(t, res.Connected)
			assert.NotNil(t, res.LastSync)
			assert.Equal(t, tt.platform, res.Platform)
		})
	}
}

func TestIntegrationService_Disconnect(t *testing.T) {
	synced := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	f := newFixture(t)
	f.repo.EXPECT().GetByOwner(gomock.Any(), "host-1").Return([]model.Integration{
		{ID: "integration-1", Platform: listingModel.PlatformAirbnb, Connected: true, APIKeyHint: "****abcd", LastSync: &synced},
	}, nil)
	f.repo.EXPECT().Upsert(gomock.Any(), gomock.Cond(func(i model.Integration) bool {
		return i.ID == "integration-1" && !i.Connected && i.LastSync == nil && i.APIKeyHint == ""
	})).Return(nil)

	res, err := f.svc.Disconnect(hostContext(), listingModel.PlatformAirbnb)

	require.NoError(t, err)
	assert.False(t, res.Connected)
	assert.Nil(t, res.LastSync)
}

func TestKeyHint(t *testing.T) {
	assert.Equal(t, "****cdef", model.KeyHint("abcdef"))
	assert.Equal(t, "****", model.KeyHint("abc"))
}
