package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hostdeck/config"
	"hostdeck/infras/jwt"
	jwtMocks "hostdeck/infras/jwt/mocks"
	"hostdeck/infras/metrics"
	otelMocks "hostdeck/infras/otel/mocks"
	"hostdeck/permissions"
	"hostdeck/shared"
	"hostdeck/shared/cache"
	cacheMocks "hostdeck/shared/cache/mocks"
	"hostdeck/shared/constant"
	"hostdeck/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func echoHost(w http.ResponseWriter, r *http.Request) {
	hostID, err := shared.HostID(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)

		return
	}

	_, _ = w.Write([]byte(hostID))
}

func TestAuth(t *testing.T) {
	perms := &permissions.PermissionData{Endpoints: []permissions.Permission{
		{Path: "/v1/listings", Method: http.MethodGet, Permissions: []string{constant.RoleHost}},
		{Path: "/v1/admin", Method: http.MethodGet, Permissions: []string{constant.RoleAdmin}},
	}}

	tests := []struct {
		name       string
		path       string
		header     http.Header
		setupMock  func(m *jwtMocks.MockJWT)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "valid token",
			path:   "/v1/listings",
			header: http.Header{constant.RequestHeaderAuthorization: {"Bearer good"}},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).
					Return(&jwt.Claims{HostID: "host-1", Email: "host@example.com", Role: constant.RoleHost}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   "host-1",
		},
		{
			name:       "missing header",
			path:       "/v1/listings",
			setupMock:  func(_ *jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			path:       "/v1/listings",
			header:     http.Header{constant.RequestHeaderAuthorization: {"Basic abc"}},
			setupMock:  func(_ *jwtMocks.MockJWT) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			path:   "/v1/listings",
			header: http.Header{constant.RequestHeaderAuthorization: {"Bearer old"}},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "old", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "claims without host",
			path:   "/v1/listings",
			header: http.Header{constant.RequestHeaderAuthorization: {"Bearer empty"}},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "empty", jwt.AccessToken).Return(&jwt.Claims{}, nil)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "role not allowed",
			path:   "/v1/admin",
			header: http.Header{constant.RequestHeaderAuthorization: {"Bearer good"}},
			setupMock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).
					Return(&jwt.Claims{HostID: "host-1", Email: "host@example.com", Role: constant.RoleHost}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "internal caller with api key",
			path:       "/v1/admin",
			header:     http.Header{constant.RequestHeaderAPIKey: {"internal"}, constant.RequestHeaderHostID: {"host-9"}},
			setupMock:  func(_ *jwtMocks.MockJWT) {},
			wantStatus: http.StatusOK,
			wantBody:   "host-9",
		},
		{
			name:       "wrong api key",
			path:       "/v1/listings",
			header:     http.Header{constant.RequestHeaderAPIKey: {"guess"}},
			setupMock:  func(_ *jwtMocks.MockJWT) {},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockJWT := jwtMocks.NewMockJWT(gomock.NewController(t))
			tt.setupMock(mockJWT)

			cfg := &config.Config{}
			cfg.App.APIKey = "internal"

			authRole := middleware.NewAuthRoleMiddleware(mockJWT, otelMocks.NewOtel(), perms, cfg)

			router := chi.NewRouter()
			router.Route("/v1", func(r chi.Router) {
				r.Use(authRole.APIKey)
				r.Group(func(secured chi.Router) {
					secured.Use(authRole.Auth)
					secured.Use(authRole.RBAC)
					secured.Get("/listings", echoHost)
					secured.Get("/admin", echoHost)
				})
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for key, values := range tt.header {
				req.Header.Set(key, values[0])
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	tests := []struct {
		name       string
		setupMock  func(m *cacheMocks.MockRedisCache)
		wantStatus int
	}{
		{
			name: "first request in window",
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(cache.Nil)
				m.EXPECT().Save(gomock.Any(), gomock.Any(), 1, 60).Return(nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "over the limit",
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_, _ any, value any) error {
					*(value.(*int)) = 2

					return nil
				})
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name: "cache unavailable",
			setupMock: func(m *cacheMocks.MockRedisCache) {
				m.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache := cacheMocks.NewMockRedisCache(gomock.NewController(t))
			tt.setupMock(mockCache)

			app := middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, mockCache, metrics.NewNop())
			handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/listings", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestMetricsRecordsRoutePattern(t *testing.T) {
	m := metrics.NewNop()
	app := middleware.NewAppMiddleware(otelMocks.NewOtel(), &config.Config{}, nil, m)

	router := chi.NewRouter()
	router.Use(app.Tracing)
	router.Use(app.Metrics)
	router.Get("/v1/listings/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/listings/abc", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)

	families, err := m.Registry().Gather()
	assert.NoError(t, err)

	found := false

	for _, family := range families {
		if family.GetName() != "hostdeck_http_requests_total" {
			continue
		}

		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "route" && label.GetValue() == "/v1/listings/{id}" {
					found = true
				}
			}
		}
	}

	assert.True(t, found)
}
