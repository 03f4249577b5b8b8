package router

import (
	"net/http"

	"hostdeck/config"
	"hostdeck/infras/metrics"
	"hostdeck/internal/handlers/auth"
	"hostdeck/internal/handlers/calendar"
	"hostdeck/internal/handlers/dashboard"
	"hostdeck/internal/handlers/host"
	"hostdeck/internal/handlers/integration"
	"hostdeck/internal/handlers/listing"
	"hostdeck/internal/handlers/messaging"
	"hostdeck/internal/handlers/operations"
	"hostdeck/internal/handlers/pricing"
	"hostdeck/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "hostdeck/docs"
)

type DomainHandlers struct {
	Auth        auth.Handler
	Host        host.Handler
	Listing     listing.Handler
	Calendar    calendar.Handler
	Dashboard   dashboard.Handler
	Pricing     pricing.Handler
	Messaging   messaging.Handler
	Operations  operations.Handler
	Integration integration.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
	Metrics        *metrics.Metrics
	Config         *config.Config
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole, metrics *metrics.Metrics, cfg *config.Config) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
		Metrics:        metrics,
		Config:         cfg,
	}
}

// SetupRoutes mounts the versioned api. health reports readiness of the server.
func (r *Router) SetupRoutes(router chi.Router, health http.HandlerFunc) {
	router.Get("/healthz", health)

	if r.Config.Metrics.Enable {
		router.Handle(r.Config.Metrics.Path, r.Metrics.Handler())
	}

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)

		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(secured chi.Router) {
			secured.Use(r.AuthRole.Auth)
			secured.Use(r.AuthRole.RBAC)

			r.DomainHandlers.Auth.SecureRouter(secured)
			r.DomainHandlers.Host.Router(secured)
			r.DomainHandlers.Listing.Router(secured)
			r.DomainHandlers.Calendar.Router(secured)
			r.DomainHandlers.Pricing.Router(secured)
			r.DomainHandlers.Dashboard.Router(secured)
			r.DomainHandlers.Operations.Router(secured)
			r.DomainHandlers.Messaging.Router(secured)
			r.DomainHandlers.Integration.Router(secured)
		})
	})
}
