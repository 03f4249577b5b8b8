package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hostdeck/config"
	jwtMocks "hostdeck/infras/jwt/mocks"
	"hostdeck/infras/metrics"
	otelMocks "hostdeck/infras/otel/mocks"
	"hostdeck/permissions"
	cacheMocks "hostdeck/shared/cache/mocks"
	transport "hostdeck/transport/http"
	"hostdeck/transport/http/middleware"
	"hostdeck/transport/http/router"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) *transport.HTTP {
	t.Helper()

	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Metrics.Enable = true
	cfg.Metrics.Path = "/metrics"

	m := metrics.NewNop()
	otl := otelMocks.NewOtel()
	authRole := middleware.NewAuthRoleMiddleware(jwtMocks.NewMockJWT(ctrl), otl, &permissions.PermissionData{}, cfg)
	appMiddleware := middleware.NewAppMiddleware(otl, cfg, cacheMocks.NewMockRedisCache(ctrl), m)

	return transport.New(cfg, router.New(router.DomainHandlers{}, authRole, m, cfg), appMiddleware)
}

func TestHTTP_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{name: "health", path: "/healthz", wantStatus: http.StatusOK},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK},
		{name: "secured route without token", path: "/v1/listings", wantStatus: http.StatusUnauthorized},
		{name: "unknown route", path: "/nope", wantStatus: http.StatusNotFound},
	}

	server := newServer(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}

	assert.Equal(t, transport.ServerStateReady, server.State())
}
