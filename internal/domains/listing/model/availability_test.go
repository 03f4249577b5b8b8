package model_test

import (
	"slices"
	"testing"

	"hostdeck/internal/domains/listing/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(date string) model.AvailabilityEntry {
	return model.AvailabilityEntry{Date: date, Available: true}
}

func blocked(date string) model.AvailabilityEntry {
	return model.AvailabilityEntry{Date: date, Available: false, Blocked: true}
}

func booked(date, guest string, platform model.Platform) model.AvailabilityEntry {
	return model.AvailabilityEntry{Date: date, Available: false, BookedBy: platform, GuestName: guest}
}

func TestEnumerateDates(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		expected  []string
		expectErr error
	}{
		{name: "single day", from: "2024-06-01", to: "2024-06-01", expected: []string{"2024-06-01"}},
		{name: "reversed order", from: "2024-06-03", to: "2024-06-01", expected: []string{"2024-06-01", "2024-06-02", "2024-06-03"}},
		{name: "month boundary", from: "2024-02-28", to: "2024-03-01", expected: []string{"2024-02-28", "2024-02-29", "2024-03-01"}},
		{name: "invalid start", from: "2024-13-01", to: "2024-06-01", expectErr: model.ErrInvalidDate},
		{name: "invalid end", from: "2024-06-01", to: "tomorrow", expectErr: model.ErrInvalidDate},
		{name: "too long", from: "2024-01-01", to: "2026-01-01", expectErr: model.ErrRangeTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dates, err := model.EnumerateDates(tt.from, tt.to)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, dates)
		})
	}
}

func TestEnumerateDatesLongestRange(t *testing.T) {
	dates, err := model.EnumerateDates("2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Len(t, dates, model.MaxRangeDays)

	_, err = model.EnumerateDates("2024-01-01", "2025-01-01")
	assert.ErrorIs(t, err, model.ErrRangeTooLong)
}

func TestNormalize(t *testing.T) {
	availability := model.Availability{
		open("2024-06-03"),
		open("2024-06-01"),
		blocked("2024-06-03"),
	}

	normalized := availability.Normalize()

	require.Len(t, normalized, 2)
	assert.Equal(t, "2024-06-01", normalized[0].Date)
	assert.Equal(t, "2024-06-03", normalized[1].Date)
	assert.True(t, normalized[1].Blocked)
}

func TestToggleRange(t *testing.T) {
	tests := []struct {
		name         string
		availability model.Availability
		start        string
		end          string
		action       model.ToggleAction
		expectErr    error
		check        func(t *testing.T, next model.Availability)
	}{
		{
			name:         "unblocked range gets blocked",
			availability: model.Availability{open("2024-06-01"), open("2024-06-02")},
			start:        "2024-06-01",
			end:          "2024-06-02",
			action:       model.ToggleActionBlock,
			check: func(t *testing.T, next model.Availability) {
				for _, entry := range next {
					assert.True(t, entry.Blocked)
					assert.False(t, entry.Available)
				}
			},
		},
		{
			name:         "fully blocked range gets unblocked",
			availability: model.Availability{blocked("2024-06-01"), blocked("2024-06-02")},
			start:        "2024-06-02",
			end:          "2024-06-01",
			action:       model.ToggleActionUnblock,
			check: func(t *testing.T, next model.Availability) {
				for _, entry := range next {
					assert.False(t, entry.Blocked)
					assert.True(t, entry.Available)
				}
			},
		},
		{
			name:         "mixed range gets blocked",
			availability: model.Availability{blocked("2024-06-01"), open("2024-06-02")},
			start:        "2024-06-01",
			end:          "2024-06-02",
			action:       model.ToggleActionBlock,
			check: func(t *testing.T, next model.Availability) {
				assert.True(t, next[0].Blocked)
				assert.True(t, next[1].Blocked)
			},
		},
		{
			name:         "missing dates are created blocked",
			availability: model.Availability{open("2024-06-01")},
			start:        "2024-06-01",
			end:          "2024-06-03",
			action:       model.ToggleActionBlock,
			check: func(t *testing.T, next model.Availability) {
				require.Len(t, next, 3)
				assert.Equal(t, blocked("2024-06-03"), next[2])
			},
		},
		{
			name:         "entries outside the range are kept",
			availability: model.Availability{open("2024-05-31"), booked("2024-06-05", "A", model.PlatformAirbnb)},
			start:        "2024-06-01",
			end:          "2024-06-01",
			action:       model.ToggleActionBlock,
			check: func(t *testing.T, next model.Availability) {
				require.Len(t, next, 3)
				assert.Equal(t, open("2024-05-31"), next[0])
				assert.Equal(t, model.PlatformAirbnb, next[2].BookedBy)
			},
		},
		{
			name:         "booked date rejects the whole range",
			availability: model.Availability{open("2024-06-01"), booked("2024-06-02", "A", model.PlatformVrbo)},
			start:        "2024-06-01",
			end:          "2024-06-03",
			expectErr:    model.ErrRangeBooked,
		},
		{
			name:         "duplicated date uses the last booked entry",
			availability: model.Availability{open("2024-06-02"), booked("2024-06-02", "A", model.PlatformBooking)},
			start:        "2024-06-01",
			end:          "2024-06-02",
			expectErr:    model.ErrRangeBooked,
		},
		{
			name:         "duplicated date uses the last blocked entry",
			availability: model.Availability{blocked("2024-06-01"), open("2024-06-01"), blocked("2024-06-01")},
			start:        "2024-06-01",
			end:          "2024-06-01",
			action:       model.ToggleActionUnblock,
			check: func(t *testing.T, next model.Availability) {
				require.Len(t, next, 1)
				assert.Equal(t, open("2024-06-01"), next[0])
			},
		},
		{
			name:      "invalid date",
			start:     "06/01/2024",
			end:       "2024-06-01",
			expectErr: model.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := slices.Clone(tt.availability)

			next, result, err := tt.availability.ToggleRange(tt.start, tt.end)

			assert.Equal(t, before, tt.availability)

			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, next)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.action, result.Action)
			assert.Equal(t, result.Dates[0], result.Start)
			assert.Equal(t, result.Dates[len(result.Dates)-1], result.End)
			tt.check(t, next)
		})
	}
}

func TestToggleRangeRoundTrip(t *testing.T) {
	original := model.Availability{open("2024-06-01"), open("2024-06-02"), open("2024-06-03")}

	once, result, err := original.ToggleRange("2024-06-01", "2024-06-03")
	require.NoError(t, err)
	assert.Equal(t, model.ToggleActionBlock, result.Action)

	twice, result, err := once.ToggleRange("2024-06-03", "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, model.ToggleActionUnblock, result.Action)
	assert.Equal(t, original, twice)
}

func TestAvailabilityScanValue(t *testing.T) {
	original := model.Availability{booked("2024-06-01", "A", model.PlatformAirbnb)}

	value, err := original.Value()
	require.NoError(t, err)

	var scanned model.Availability
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, original, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(42))

	empty, err := model.Availability(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), empty)
}

func TestListingRates(t *testing.T) {
	listing := model.Listing{AirbnbPrice: 200, BookingPrice: 0, VrboPrice: 175}

	assert.Equal(t, 200.0, listing.NightlyRate(model.PlatformAirbnb))
	assert.Equal(t, 140.0, listing.NightlyRate(model.PlatformBooking))
	assert.Equal(t, 175.0, listing.NightlyRate(model.PlatformVrbo))
	assert.Equal(t, []model.Platform{model.PlatformAirbnb, model.PlatformVrbo}, listing.ListedOn())
	assert.False(t, model.Platform("expedia").Valid())
}
