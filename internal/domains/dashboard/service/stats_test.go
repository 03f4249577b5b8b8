package service_test

import (
	"fmt"
	"testing"
	"time"

	"hostdeck/config"
	"hostdeck/internal/domains/dashboard/model"
	"hostdeck/internal/domains/dashboard/service"
	listingModel "hostdeck/internal/domains/listing/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}

	return t.Add(10 * time.Hour)
}

func TestAggregate_UpcomingBooking(t *testing.T) {
	listings := []listingModel.Listing{{
		ID:    "L",
		Title: "Beachfront Villa",
		Availability: listingModel.Availability{
			booking("2024-06-01", "A", listingModel.PlatformAirbnb, flag(false)),
			booking("2024-06-02", "A", listingModel.PlatformAirbnb, flag(false)),
			booking("2024-06-03", "A", listingModel.PlatformAirbnb, flag(false)),
		},
	}}

	stats := service.Aggregate(listings, day("2024-05-30"), config.PastPolicyFlag)

	assert.Equal(t, 1, stats.TotalListings)
	assert.Equal(t, 1, stats.UpcomingBookingCount)
	assert.Zero(t, stats.ClassificationConflicts)
	assert.Zero(t, stats.Revenue)
	assert.Len(t, stats.Activities, 3)
	assert.Equal(t, "booking-L-2024-06-03", stats.Activities[0].ID)
}

func TestAggregate_EmptyAvailability(t *testing.T) {
	stats := service.Aggregate([]listingModel.Listing{{ID: "L", Availability: listingModel.Availability{}}}, day("2024-05-30"), config.PastPolicyFlag)

	assert.Equal(t, 1, stats.TotalListings)
	assert.Zero(t, stats.UpcomingBookingCount)
	assert.Zero(t, stats.Revenue)
	assert.Zero(t, stats.RevenueChangePercent)
	assert.NotNil(t, stats.Activities)
	assert.Empty(t, stats.Activities)

	stats = service.Aggregate(nil, day("2024-05-30"), config.PastPolicyFlag)
	assert.Zero(t, stats.TotalListings)
	assert.Empty(t, stats.Activities)
}

func TestAggregate_Revenue(t *testing.T) {
	listings := []listingModel.Listing{{
		ID:          "L",
		AirbnbPrice: 200,
		Availability: listingModel.Availability{
			booking("2024-05-31", "A", listingModel.PlatformAirbnb, flag(true)),
			booking("2024-06-01", "B", listingModel.PlatformAirbnb, flag(true)),
			booking("2024-06-10", "C", listingModel.PlatformBooking, flag(true)),
			booking("2024-06-20", "D", listingModel.PlatformVrbo, nil),
			booking("2024-04-30", "E", listingModel.PlatformVrbo, flag(true)),
			{Date: "2024-06-11", GuestName: "walk-in"},
		},
	}}

	stats := service.Aggregate(listings, day("2024-06-15"), config.PastPolicyFlag)

	// 2024-06-01 airbnb listed at 200, 2024-06-10 booking falls back to 140.
	assert.Equal(t, 340.0, stats.Revenue)
	assert.Equal(t, 200.0, stats.LastMonthRevenue)
	assert.Equal(t, 70.0, stats.RevenueChangePercent)
}

func TestAggregate_RevenueJanuary(t *testing.T) {
	listings := []listingModel.Listing{{
		ID: "L",
		Availability: listingModel.Availability{
			booking("2023-12-31", "A", listingModel.PlatformVrbo, flag(true)),
			booking("2024-01-02", "B", listingModel.PlatformVrbo, flag(true)),
		},
	}}

	stats := service.Aggregate(listings, day("2024-01-05"), config.PastPolicyFlag)

	assert.Equal(t, 130.0, stats.Revenue)
	assert.Equal(t, 130.0, stats.LastMonthRevenue)
	assert.Zero(t, stats.RevenueChangePercent)
}

func TestChangePercent(t *testing.T) {
	assert.Zero(t, service.ChangePercent(500, 0))
	assert.Equal(t, 100.0, service.ChangePercent(200, 100))
	assert.Equal(t, -50.0, service.ChangePercent(50, 100))
	assert.InDelta(t, 100.0/3, service.ChangePercent(400, 300), 1e-9)
	assert.NotEqual(t, 33.33, service.ChangePercent(400, 300))
}

func TestAggregate_Conflicts(t *testing.T) {
	listings := []listingModel.Listing{{
		ID: "L",
		Availability: listingModel.Availability{
			booking("2024-06-20", "A", listingModel.PlatformAirbnb, flag(true)),
			booking("2024-06-01", "B", listingModel.PlatformAirbnb, nil),
		},
	}}

	byFlag := service.Aggregate(listings, day("2024-06-15"), config.PastPolicyFlag)
	assert.Equal(t, 1, byFlag.ClassificationConflicts)
	assert.Zero(t, byFlag.UpcomingBookingCount)

	byDate := service.Aggregate(listings, day("2024-06-15"), config.PastPolicyDate)
	assert.Equal(t, 1, byDate.ClassificationConflicts)
	assert.Equal(t, 1, byDate.UpcomingBookingCount)
}

func TestActivities(t *testing.T) {
	var listings []listingModel.Listing

	for i := range 7 {
		synced := day("2024-06-01").Add(time.Duration(i) * time.Hour)

		listings = append(listings, listingModel.Listing{
			ID:       fmt.Sprintf("L%d", i),
			Title:    fmt.Sprintf("Listing %d", i),
			LastSync: &synced,
			Availability: listingModel.Availability{
				booking("2024-07-01", "A", listingModel.PlatformAirbnb, nil),
				booking("2024-07-02", "A", listingModel.PlatformAirbnb, nil),
				booking("2024-07-03", "A", listingModel.PlatformAirbnb, flag(true)),
			},
		})
	}

	activities := service.Activities(listings)
	require.Len(t, activities, model.MaxActivities)

	for i, activity := range activities[:model.MaxSyncActivities] {
		assert.Equal(t, model.ActivityTypeSync, activity.Type)
		assert.Equal(t, fmt.Sprintf("L%d", 6-i), activity.ListingID)
	}

	assert.Equal(t, "Listing 6 synced across all platforms", activities[0].Message)

	rest := activities[model.MaxSyncActivities:]
	for _, activity := range rest {
		assert.Equal(t, model.ActivityTypeBooking, activity.Type)
	}

	assert.Equal(t, "booking-L0-2024-07-02", rest[0].ID)
	assert.Equal(t, "booking-L0-2024-07-01", rest[1].ID)
	assert.Equal(t, "New booking for Listing 0 from A via airbnb", rest[0].Message)
}

func TestActivities_BookingCap(t *testing.T) {
	listings := []listingModel.Listing{{
		ID:    "L",
		Title: "Loft",
		Availability: listingModel.Availability{
			booking("2024-07-01", "", listingModel.PlatformBooking, nil),
			booking("2024-07-04", "", listingModel.PlatformBooking, nil),
			booking("2024-07-02", "", listingModel.PlatformBooking, nil),
			booking("2024-07-03", "", listingModel.PlatformBooking, nil),
		},
	}}

	activities := service.Activities(listings)
	require.Len(t, activities, model.MaxBookingActivities)

	assert.Equal(t, "2024-07-04", activities[0].Timestamp)
	assert.Equal(t, "2024-07-02", activities[2].Timestamp)
	assert.Equal(t, "New booking for Loft via booking", activities[0].Message)
}
