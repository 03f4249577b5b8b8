package service

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"hostdeck/internal/domains/dashboard/model"
	listingModel "hostdeck/internal/domains/listing/model"
	"hostdeck/shared/constant"
)

// revenueWindows returns [firstOfThisMonth, today] and [firstOfLastMonth, lastOfLastMonth].
func revenueWindows(now time.Time) (thisFrom, thisTo, lastFrom, lastTo string) {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfLastMonth := firstOfThisMonth.AddDate(0, -1, 0)
	lastOfLastMonth := firstOfThisMonth.AddDate(0, 0, -1)

	return firstOfThisMonth.Format(constant.DayFormat), now.Format(constant.DayFormat),
		firstOfLastMonth.Format(constant.DayFormat), lastOfLastMonth.Format(constant.DayFormat)
}

func within(date, from, to string) bool {
	return date >= from && date <= to
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ChangePercent is the relative change from last to current, zero when last is zero.
func ChangePercent(current, last float64) float64 {
	if last == 0 {
		return 0
	}

	return (current - last) / last * 100
}

// Aggregate derives the dashboard figures of listings as seen at now.
func Aggregate(listings []listingModel.Listing, now time.Time, policy string) model.Stats {
	today := now.Format(constant.DayFormat)
	thisFrom, thisTo, lastFrom, lastTo := revenueWindows(now)

	stats := model.Stats{
		TotalListings: len(listings),
		Activities:    []model.Activity{},
	}

	for _, group := range ClassifiedBookings(listings, today, policy) {
		if !group.Past {
			stats.UpcomingBookingCount++
		}

		if group.Conflict {
			stats.ClassificationConflicts++
		}
	}

	for _, listing := range listings {
		for _, entry := range listing.Availability {
			if !entry.Booked() {
				continue
			}

			rate := listing.NightlyRate(entry.BookedBy)

			switch {
			case within(entry.Date, thisFrom, thisTo):
				stats.Revenue += rate
			case within(entry.Date, lastFrom, lastTo):
				stats.LastMonthRevenue += rate
			}
		}
	}

	stats.Revenue = roundCents(stats.Revenue)
	stats.LastMonthRevenue = roundCents(stats.LastMonthRevenue)
	stats.RevenueChangePercent = ChangePercent(stats.Revenue, stats.LastMonthRevenue)
	stats.Activities = Activities(listings)

	return stats
}

// Activities builds the feed: the latest syncs first, then the next bookings of every listing.
func Activities(listings []listingModel.Listing) []model.Activity {
	synced := make([]listingModel.Listing, 0, len(listings))

	for _, listing := range listings {
		if listing.LastSync != nil {
			synced = append(synced, listing)
		}
	}

	slices.SortStableFunc(synced, func(a, b listingModel.Listing) int {
		return b.LastSync.Compare(*a.LastSync)
	})

	activities := make([]model.Activity, 0, model.MaxActivities)

	for _, listing := range synced[:min(len(synced), model.MaxSyncActivities)] {
		activities = append(activities, model.Activity{
			ID:        fmt.Sprintf("sync-%s", listing.ID),
			Type:      model.ActivityTypeSync,
			ListingID: listing.ID,
			Message:   fmt.Sprintf("%s synced across all platforms", listing.Title),
			Timestamp: listing.LastSync.Format(time.RFC3339),
		})
	}

	for _, listing := range listings {
		bookings := make([]listingModel.AvailabilityEntry, 0, len(listing.Availability))

		for _, entry := range listing.Availability {
			if entry.Booked() && (entry.IsPast == nil || !*entry.IsPast) {
				bookings = append(bookings, entry)
			}
		}

		slices.SortStableFunc(bookings, func(a, b listingModel.AvailabilityEntry) int {
			return cmp.Compare(b.Date, a.Date)
		})

		for _, entry := range bookings[:min(len(bookings), model.MaxBookingActivities)] {
			activities = append(activities, model.Activity{
				ID:        fmt.Sprintf("booking-%s-%s", listing.ID, entry.Date),
				Type:      model.ActivityTypeBooking,
				ListingID: listing.ID,
				Message:   bookingMessage(listing.Title, entry),
				Timestamp: entry.Date,
			})
		}
	}

	return activities[:min(len(activities), model.MaxActivities)]
}

func bookingMessage(title string, entry listingModel.AvailabilityEntry) string {
	if entry.GuestName == "" {
		return fmt.Sprintf("New booking for %s via %s", title, entry.BookedBy)
	}

	return fmt.Sprintf("New booking for %s from %s via %s", title, entry.GuestName, entry.BookedBy)
}
