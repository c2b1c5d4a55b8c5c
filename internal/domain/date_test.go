package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCallbackDate_RoundTrip(t *testing.T) {
	date := time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)

	key := CallbackDate(date)
	assert.Equal(t, "02_09_26", key)

	parsed, err := ParseCallbackDate(key)
	assert.NoError(t, err)
	assert.Equal(t, date, parsed)
}

func TestParseCallbackDate_Invalid(t *testing.T) {
	_, err := ParseCallbackDate("not_a_date")
	assert.Error(t, err)
}

func TestReadableDate(t *testing.T) {
	date := time.Date(2026, 9, 2, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "02.09.26", ReadableDate(date))
}

func TestUpcomingDates(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	dates := UpcomingDates(now, 3)

	assert.Len(t, dates, 3)
	assert.Equal(t, now, dates[0])
	assert.Equal(t, now.AddDate(0, 0, 1), dates[1])
	assert.Equal(t, now.AddDate(0, 0, 2), dates[2])
}
