package domain

import "time"

const (
	callbackDateLayout = "02_01_06"
	readableDateLayout = "02.01.06"
)

// CallbackDate renders a date as the normalized key used in routes and storage
func CallbackDate(date time.Time) string {
	return date.Format(callbackDateLayout)
}

// ReadableDate renders a date for display
func ReadableDate(date time.Time) string {
	return date.Format(readableDateLayout)
}

// ParseCallbackDate parses a normalized date key back into a date
func ParseCallbackDate(key string) (time.Time, error) {
	return time.Parse(callbackDateLayout, key)
}

// UpcomingDates returns count dates starting from today
func UpcomingDates(now time.Time, count int) []time.Time {
	dates := make([]time.Time, 0, count)
	for delta := 0; delta < count; delta++ {
		dates = append(dates, now.AddDate(0, 0, delta))
	}
	return dates
}
