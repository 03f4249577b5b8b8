package service

import (
	"cmp"
	"math/rand/v2"
	"slices"
	"strconv"
	"time"

	"hostdeck/config"
	"hostdeck/internal/domains/dashboard/model"
	listingModel "hostdeck/internal/domains/listing/model"
	"hostdeck/shared/constant"

	"github.com/cespare/xxhash/v2"
)

const (
	minRating = 4
	maxRating = 5
)

// Assigner picks the cleaner and the rating of a booking identified by key.
type Assigner interface {
	Cleaner(key string) string
	Rating(key string) int
}

// hashAssigner is stable for a given key across calls and restarts.
type hashAssigner struct{}

func (hashAssigner) Cleaner(key string) string {
	return model.Cleaners[xxhash.Sum64String(key)%uint64(len(model.Cleaners))]
}

func (hashAssigner) Rating(key string) int {
	return minRating + int(xxhash.Sum64String("rating:"+key)%(maxRating-minRating+1))
}

type randomAssigner struct{}

func (randomAssigner) Cleaner(string) string {
	return model.Cleaners[rand.IntN(len(model.Cleaners))]
}

func (randomAssigner) Rating(string) int {
	return minRating + rand.IntN(maxRating-minRating+1)
}

// NewAssigner returns the assigner of mode, hash for anything but random.
func NewAssigner(mode string) Assigner {
	if mode == config.CleanerAssignmentRandom {
		return randomAssigner{}
	}

	return hashAssigner{}
}

func taskID(key string) string {
	return strconv.FormatUint(xxhash.Sum64String(key), 16)
}

// CleaningTasks turns every booking into a turnover: upcoming ones are scheduled, or in
// progress on their checkout day, and past ones are completed and rated.
func CleaningTasks(listings []listingModel.Listing, now time.Time, policy string, assigner Assigner) model.CleaningSchedule {
	today := now.Format(constant.DayFormat)

	schedule := model.CleaningSchedule{
		Upcoming: []model.CleaningTask{},
		History:  []model.CleaningTask{},
	}

	for _, group := range ClassifiedBookings(listings, today, policy) {
		task := model.CleaningTask{
			ID:        taskID(group.Key),
			ListingID: group.ListingID,
			Property:  group.ListingTitle,
			Date:      group.CheckoutDate,
			Cleaner:   assigner.Cleaner(group.Key),
			GuestName: group.GuestName,
			Platform:  group.BookedBy,
		}

		if group.Past {
			rating := assigner.Rating(group.Key)
			task.Status = model.CleaningStatusCompleted
			task.Rating = &rating
			schedule.History = append(schedule.History, task)

			continue
		}

		task.Status = model.CleaningStatusScheduled
		if group.CheckoutDate == today {
			task.Status = model.CleaningStatusInProgress
		}

		schedule.Upcoming = append(schedule.Upcoming, task)
	}

	slices.SortStableFunc(schedule.Upcoming, func(a, b model.CleaningTask) int {
		return cmp.Compare(a.Date, b.Date)
	})
	slices.SortStableFunc(schedule.History, func(a, b model.CleaningTask) int {
		return cmp.Compare(b.Date, a.Date)
	})

	return schedule
}
