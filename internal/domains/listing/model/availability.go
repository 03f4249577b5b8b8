package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"hostdeck/shared/constant"
)

// MaxRangeDays bounds a single toggle.
const MaxRangeDays = 366

var (
	ErrInvalidDate  = errors.New("invalid date")
	ErrRangeBooked  = errors.New("range contains booked dates")
	ErrRangeTooLong = fmt.Errorf("range exceeds %d days", MaxRangeDays)
)

type ToggleAction string

const (
	ToggleActionBlock   ToggleAction = "block"
	ToggleActionUnblock ToggleAction = "unblock"
)

type AvailabilityEntry struct {
	Date      string   `json:"date"                 validate:"required,day"`
	Available bool     `json:"available"`
	BookedBy  Platform `json:"booked_by,omitempty"  validate:"omitempty,oneof=airbnb booking vrbo"`
	Blocked   bool     `json:"blocked,omitempty"`
	GuestName string   `json:"guest_name,omitempty" validate:"omitempty,max=200"`
	CheckIn   string   `json:"check_in,omitempty"   validate:"omitempty,day"`
	CheckOut  string   `json:"check_out,omitempty"  validate:"omitempty,day"`
	Guests    int      `json:"guests,omitempty"     validate:"gte=0"`
	IsPast    *bool    `json:"is_past,omitempty"`
}

func (e AvailabilityEntry) Booked() bool {
	return e.BookedBy != ""
}

// Availability is the per-listing calendar, stored as a JSONB array.
type Availability []AvailabilityEntry

type ToggleResult struct {
	Action ToggleAction `json:"action"`
	Start  string       `json:"start"`
	End    string       `json:"end"`
	Dates  []string     `json:"dates"`
}

func (a Availability) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}

	data, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal availability: %w", err)
	}

	return data, nil
}

func (a *Availability) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case nil:
		*a = Availability{}

		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported availability type %T", src)
	}

	var entries Availability
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to unmarshal availability: %w", err)
	}

	*a = entries

	return nil
}

// Entry returns the entry stored for date.
func (a Availability) Entry(date string) (AvailabilityEntry, bool) {
	idx := slices.IndexFunc(a, func(e AvailabilityEntry) bool { return e.Date == date })
	if idx == -1 {
		return AvailabilityEntry{}, false
	}

	return a[idx], true
}

// BookedDates returns the dates among dates that carry a booking.
func (a Availability) BookedDates(dates []string) []string {
	booked := []string{}

	for _, date := range dates {
		if entry, ok := a.Entry(date); ok && entry.Booked() {
			booked = append(booked, date)
		}
	}

	return booked
}

// Normalize keeps one entry per date, the last one written, ordered by date.
func (a Availability) Normalize() Availability {
	byDate := make(map[string]AvailabilityEntry, len(a))
	for _, entry := range a {
		byDate[entry.Date] = entry
	}

	out := make(Availability, 0, len(byDate))
	for _, entry := range byDate {
		out = append(out, entry)
	}

	slices.SortFunc(out, func(x, y AvailabilityEntry) int {
		return strings.Compare(x.Date, y.Date)
	})

	return out
}

// ToggleRange blocks every date of [start, end] unless all of them are already blocked,
// in which case it unblocks them. The receiver is never modified.
func (a Availability) ToggleRange(start, end string) (Availability, ToggleResult, error) {
	dates, err := EnumerateDates(start, end)
	if err != nil {
		return nil, ToggleResult{}, err
	}

	// Normalize returns a fresh slice, so next can be edited in place.
	next := a.Normalize()

	if booked := next.BookedDates(dates); len(booked) > 0 {
		return nil, ToggleResult{}, fmt.Errorf("%w: %s", ErrRangeBooked, strings.Join(booked, ", "))
	}

	allBlocked := true

	for _, date := range dates {
		if entry, ok := next.Entry(date); !ok || !entry.Blocked {
			allBlocked = false

			break
		}
	}

	index := make(map[string]int, len(next))

	for i, entry := range next {
		index[entry.Date] = i
	}

	for _, date := range dates {
		if i, ok := index[date]; ok {
			next[i].Blocked = !allBlocked
			next[i].Available = allBlocked

			continue
		}

		next = append(next, AvailabilityEntry{Date: date, Available: false, Blocked: true})
	}

	action := ToggleActionBlock
	if allBlocked {
		action = ToggleActionUnblock
	}

	return next.Normalize(), ToggleResult{
		Action: action,
		Start:  dates[0],
		End:    dates[len(dates)-1],
		Dates:  dates,
	}, nil
}

// EnumerateDates lists every day between the two dates inclusive, in either argument order.
func EnumerateDates(from, to string) ([]string, error) {
	start, err := time.Parse(constant.DayFormat, from)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, from)
	}

	end, err := time.Parse(constant.DayFormat, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, to)
	}

	if end.Before(start) {
		start, end = end, start
	}

	days := int(end.Sub(start).Hours()/24) + 1
	if days > MaxRangeDays {
		return nil, ErrRangeTooLong
	}

	dates := make([]string, 0, days)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format(constant.DayFormat))
	}

	return dates, nil
}
