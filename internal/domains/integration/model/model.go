package model

import (
	"time"

	listingModel "hostdeck/internal/domains/listing/model"
	"hostdeck/shared/model"
)

const (
	TableName  = "integrations"
	EntityName = "integration"

	FieldID         = "id"
	FieldOwnerID    = "owner_id"
	FieldPlatform   = "platform"
	FieldConnected  = "connected"
	FieldAPIKeyHint = "api_key_hint"
	FieldLastSync   = "last_sync"

	// HintLength is the number of trailing api key characters kept for display.
	HintLength = 4
)

type Integration struct {
	ID         string                `db:"id"`
	OwnerID    string                `db:"owner_id"`
	Platform   listingModel.Platform `db:"platform"`
	Connected  bool                  `db:"connected"`
	APIKeyHint string                `db:"api_key_hint"`
	LastSync   *time.Time            `db:"last_sync"`
	model.Metadata
}

// Descriptor is the display information of a platform.
type Descriptor struct {
	Name        string
	Description string
}

var Descriptors = map[listingModel.Platform]Descriptor{
	listingModel.PlatformAirbnb: {
		Name:        "Airbnb",
		Description: "Sync your Airbnb listings, bookings, and calendar automatically",
	},
	listingModel.PlatformBooking: {
		Name:        "Booking.com",
		Description: "Connect to Booking.com to manage reservations and availability",
	},
	listingModel.PlatformVrbo: {
		Name:        "Vrbo",
		Description: "Integrate with Vrbo to sync your vacation rental listings",
	},
}

// KeyHint masks all but the last HintLength characters of key.
func KeyHint(key string) string {
	runes := []rune(key)
	if len(runes) <= HintLength {
		return "****"
	}

	return "****" + string(runes[len(runes)-HintLength:])
}
