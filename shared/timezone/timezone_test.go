package timezone_test

import (
	"testing"
	"time"

	"hostdeck/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestNowAndLocation(t *testing.T) {
	assert.False(t, timezone.Now().IsZero())
	assert.NotNil(t, timezone.GetLocation())
	assert.Equal(t, timezone.GetLocation(), timezone.ToAppTime(time.Now().UTC()).Location())
}

func TestFormatAndParse(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2024-06-01")

	assert.NoError(t, err)
	assert.Equal(t, "2024-06-01", timezone.Format(parsed, time.DateOnly))
}

func TestToday(t *testing.T) {
	today := timezone.Today()

	_, err := time.Parse(time.DateOnly, today)
	assert.NoError(t, err)
	assert.Equal(t, timezone.Now().Format(time.DateOnly), today)
}
