package model

import listingModel "hostdeck/internal/domains/listing/model"

const (
	MaxActivities        = 10
	MaxSyncActivities    = 5
	MaxBookingActivities = 3
)

// Cleaners is the fixed crew cleaning tasks are assigned to.
var Cleaners = []string{"Maria Garcia", "John Smith", "Ana Lopez", "David Chen"}

// BookingGroup is a logical booking derived from the availability entries sharing
// (listing, guest name, booking source). It is never persisted.
type BookingGroup struct {
	Key          string                `json:"key"`
	ListingID    string                `json:"listing_id"`
	ListingTitle string                `json:"listing_title"`
	GuestName    string                `json:"guest_name,omitempty"`
	BookedBy     listingModel.Platform `json:"booked_by,omitempty"`
	Dates        []string              `json:"dates"`
	CheckoutDate string                `json:"checkout_date"`
	// PastFlag is the isPast flag carried by the entries, nil when none carries one.
	PastFlag *bool `json:"past_flag,omitempty"`
	Past     bool  `json:"past"`
	Conflict bool  `json:"conflict"`
}

type ActivityType string

const (
	ActivityTypeBooking  ActivityType = "booking"
	ActivityTypeSync     ActivityType = "sync"
	ActivityTypePrice    ActivityType = "price"
	ActivityTypeMessage  ActivityType = "message"
	ActivityTypeCleaning ActivityType = "cleaning"
)

type Activity struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	ListingID string       `json:"listing_id"`
	Message   string       `json:"message"`
	Timestamp string       `json:"timestamp"`
}

type Stats struct {
	TotalListings           int        `json:"total_listings"`
	UpcomingBookingCount    int        `json:"upcoming_booking_count"`
	Revenue                 float64    `json:"revenue"`
	LastMonthRevenue        float64    `json:"last_month_revenue"`
	RevenueChangePercent    float64    `json:"revenue_change_percent"`
	Activities              []Activity `json:"activities"`
	ClassificationConflicts int        `json:"classification_conflicts"`
}

type CleaningStatus string

const (
	CleaningStatusScheduled  CleaningStatus = "scheduled"
	CleaningStatusInProgress CleaningStatus = "in-progress"
	CleaningStatusCompleted  CleaningStatus = "completed"
)

type CleaningTask struct {
	ID        string                `json:"id"`
	ListingID string                `json:"listing_id"`
	Property  string                `json:"property"`
	Date      string                `json:"date"`
	Cleaner   string                `json:"cleaner"`
	Status    CleaningStatus        `json:"status"`
	GuestName string                `json:"guest_name,omitempty"`
	Platform  listingModel.Platform `json:"platform,omitempty"`
	Rating    *int                  `json:"rating,omitempty"`
}

type CleaningSchedule struct {
	Upcoming []CleaningTask `json:"upcoming"`
	History  []CleaningTask `json:"history"`
}

type AutomationState string

const (
	AutomationActive  AutomationState = "active"
	AutomationWarning AutomationState = "warning"
	AutomationError   AutomationState = "error"
)

type AutomationStatus struct {
	ListingSync AutomationState `json:"listing_sync"`
	PriceSync   AutomationState `json:"price_sync"`
	Messaging   AutomationState `json:"messaging"`
	Cleaning    AutomationState `json:"cleaning"`
	Offboarding AutomationState `json:"offboarding"`
}
