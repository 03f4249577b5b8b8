package service

import (
	"strings"

	"hostdeck/config"
	"hostdeck/internal/domains/dashboard/model"
	listingModel "hostdeck/internal/domains/listing/model"
)

const groupKeySeparator = "|"

func groupKey(listingID, guestName string, bookedBy listingModel.Platform) string {
	return strings.Join([]string{listingID, guestName, string(bookedBy)}, groupKeySeparator)
}

// GroupBookings collapses the entries of one listing into logical bookings, in order of
// first appearance. Entries with neither a booking source nor a guest name are skipped.
func GroupBookings(listing listingModel.Listing) []model.BookingGroup {
	groups := []model.BookingGroup{}
	index := map[string]int{}

	for _, entry := range listing.Availability {
		if entry.BookedBy == "" && entry.GuestName == "" {
			continue
		}

		key := groupKey(listing.ID, entry.GuestName, entry.BookedBy)

		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, model.BookingGroup{
				Key:          key,
				ListingID:    listing.ID,
				ListingTitle: listing.Title,
				GuestName:    entry.GuestName,
				BookedBy:     entry.BookedBy,
			})
		}

		group := &groups[i]
		group.Dates = append(group.Dates, entry.Date)

		if entry.Date > group.CheckoutDate {
			group.CheckoutDate = entry.Date
		}

		if entry.IsPast != nil {
			past := *entry.IsPast || (group.PastFlag != nil && *group.PastFlag)
			group.PastFlag = &past
		}
	}

	return groups
}

// Classify marks a group past or upcoming under policy and flags disagreement
// between the carried isPast flag and the checkout date.
func Classify(group model.BookingGroup, today, policy string) model.BookingGroup {
	pastByDate := group.CheckoutDate < today

	group.Past = pastByDate
	if policy != config.PastPolicyDate && group.PastFlag != nil {
		group.Past = *group.PastFlag
	}

	group.Conflict = group.PastFlag != nil && *group.PastFlag != pastByDate

	return group
}

// ClassifiedBookings groups and classifies the bookings of every listing.
func ClassifiedBookings(listings []listingModel.Listing, today, policy string) []model.BookingGroup {
	var out []model.BookingGroup

	for _, listing := range listings {
		for _, group := range GroupBookings(listing) {
			out = append(out, Classify(group, today, policy))
		}
	}

	return out
}
