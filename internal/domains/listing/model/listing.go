package model

import (
	"time"

	"hostdeck/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "listings"
	EntityName = "listing"

	FieldID           = "id"
	FieldOwnerID      = "owner_id"
	FieldTitle        = "title"
	FieldLocation     = "location"
	FieldSyncStatus   = "sync_status"
	FieldLastSync     = "last_sync"
	FieldAvailability = "availability"
	FieldAirbnbPrice  = "airbnb_price"
	FieldBookingPrice = "booking_price"
	FieldVrboPrice    = "vrbo_price"
	FieldMaxGuests    = "max_guests"
	FieldPhotos       = "photos"
	FieldThumbnail    = "thumbnail"
)

type Platform string

const (
	PlatformAirbnb  Platform = "airbnb"
	PlatformBooking Platform = "booking"
	PlatformVrbo    Platform = "vrbo"
)

// Platforms lists the supported channels in display order.
var Platforms = []Platform{PlatformAirbnb, PlatformBooking, PlatformVrbo}

// fallbackRates are used for revenue when a booked platform carries no listing price.
var fallbackRates = map[Platform]float64{
	PlatformAirbnb:  150,
	PlatformBooking: 140,
	PlatformVrbo:    130,
}

func (p Platform) Valid() bool {
	_, ok := fallbackRates[p]

	return ok
}

type SyncStatus string

const (
	SyncStatusSynced  SyncStatus = "synced"
	SyncStatusPending SyncStatus = "pending"
	SyncStatusError   SyncStatus = "error"
)

// Action is a simulated channel operation triggered from the listings screen.
type Action string

const (
	ActionSync    Action = "sync"
	ActionPost    Action = "post"
	ActionImprove Action = "improve"
)

func (a Action) Valid() bool {
	switch a {
	case ActionSync, ActionPost, ActionImprove:
		return true
	default:
		return false
	}
}

type Listing struct {
	ID           string         `db:"id"`
	OwnerID      string         `db:"owner_id"`
	Title        string         `db:"title"`
	Location     string         `db:"location"`
	Description  string         `db:"description"`
	Thumbnail    string         `db:"thumbnail"`
	Photos       pq.StringArray `db:"photos"`
	Amenities    pq.StringArray `db:"amenities"`
	MaxGuests    int            `db:"max_guests"`
	Bedrooms     int            `db:"bedrooms"`
	Beds         int            `db:"beds"`
	AirbnbPrice  float64        `db:"airbnb_price"`
	BookingPrice float64        `db:"booking_price"`
	VrboPrice    float64        `db:"vrbo_price"`
	SyncStatus   SyncStatus     `db:"sync_status"`
	LastSync     *time.Time     `db:"last_sync"`
	Availability Availability   `db:"availability"`
	model.Metadata
}

// Price returns the nightly price configured for p; zero means not listed there.
func (l Listing) Price(p Platform) float64 {
	switch p {
	case PlatformAirbnb:
		return l.AirbnbPrice
	case PlatformBooking:
		return l.BookingPrice
	case PlatformVrbo:
		return l.VrboPrice
	default:
		return 0
	}
}

// NightlyRate is the listing price on p, or the platform fallback when unlisted.
func (l Listing) NightlyRate(p Platform) float64 {
	if price := l.Price(p); price > 0 {
		return price
	}

	return fallbackRates[p]
}

func (l Listing) ListedOn() []Platform {
	listed := make([]Platform, 0, len(Platforms))

	for _, p := range Platforms {
		if l.Price(p) > 0 {
			listed = append(listed, p)
		}
	}

	return listed
}
