package di

import (
	"hostdeck/infras/kafka"
	"hostdeck/infras/otel"
	"hostdeck/internal/domains/listing/event"
	"hostdeck/transport/http"
)

// App is the assembled service together with the resources its entrypoint must start and release.
type App struct {
	HTTP     *http.HTTP
	Consumer *event.Consumer
	Kafka    kafka.Client
	Otel     otel.Otel
}
