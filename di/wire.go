//go:build wireinject
// +build wireinject

package di

import (
	"hostdeck/config"
	"hostdeck/infras/jwt"
	"hostdeck/infras/kafka"
	"hostdeck/infras/metrics"
	"hostdeck/infras/otel"
	"hostdeck/infras/postgres"
	"hostdeck/infras/redis"
	"hostdeck/infras/s3"
	"hostdeck/permissions"
	"hostdeck/shared/cache"
	"hostdeck/transport/http"
	"hostdeck/transport/http/middleware"
	"hostdeck/transport/http/router"

	authService "hostdeck/internal/domains/auth/service"
	calendarRepository "hostdeck/internal/domains/calendar/repository"
	calendarService "hostdeck/internal/domains/calendar/service"
	dashboardService "hostdeck/internal/domains/dashboard/service"
	hostRepository "hostdeck/internal/domains/host/repository"
	hostService "hostdeck/internal/domains/host/service"
	integrationRepository "hostdeck/internal/domains/integration/repository"
	integrationService "hostdeck/internal/domains/integration/service"
	listingEvent "hostdeck/internal/domains/listing/event"
	listingRepository "hostdeck/internal/domains/listing/repository"
	listingService "hostdeck/internal/domains/listing/service"
	messagingCatalog "hostdeck/internal/domains/messaging/catalog"
	messagingRepository "hostdeck/internal/domains/messaging/repository"
	messagingService "hostdeck/internal/domains/messaging/service"
	operationsService "hostdeck/internal/domains/operations/service"
	pricingCatalog "hostdeck/internal/domains/pricing/catalog"
	pricingService "hostdeck/internal/domains/pricing/service"

	authHandler "hostdeck/internal/handlers/auth"
	calendarHandler "hostdeck/internal/handlers/calendar"
	dashboardHandler "hostdeck/internal/handlers/dashboard"
	hostHandler "hostdeck/internal/handlers/host"
	integrationHandler "hostdeck/internal/handlers/integration"
	listingHandler "hostdeck/internal/handlers/listing"
	messagingHandler "hostdeck/internal/handlers/messaging"
	operationsHandler "hostdeck/internal/handlers/operations"
	pricingHandler "hostdeck/internal/handlers/pricing"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	hostRepository.New,
	hostService.New,
	authService.New,
)

var listingDomain = wire.NewSet(
	listingEvent.NewHub,
	listingEvent.NewPublisher,
	listingEvent.NewConsumer,
	listingRepository.New,
	listingService.New,
)

var calendarDomain = wire.NewSet(
	calendarRepository.NewAnchor,
	calendarService.New,
)

var pricingDomain = wire.NewSet(
	pricingCatalog.Load,
	pricingService.New,
)

var messagingDomain = wire.NewSet(
	messagingCatalog.Load,
	messagingRepository.NewInbox,
	messagingService.New,
)

var integrationDomain = wire.NewSet(
	integrationRepository.New,
	integrationService.New,
)

var domains = wire.NewSet(
	authDomain,
	listingDomain,
	calendarDomain,
	pricingDomain,
	messagingDomain,
	integrationDomain,
	dashboardService.New,
	operationsService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hostHandler.New,
	listingHandler.New,
	calendarHandler.New,
	dashboardHandler.New,
	pricingHandler.New,
	messagingHandler.New,
	operationsHandler.New,
	integrationHandler.New,
	router.New,
)

func InitializeApp() (*App, error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}, nil
}
