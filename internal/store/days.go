package store

import "time"

// DateAtLocation truncates value to midnight of its calendar day in location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.Local
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DaysBetween returns the number of calendar days from a to b in location.
// It counts dates, not 24h periods, so DST transitions do not skew it.
func DaysBetween(a, b time.Time, location *time.Location) int {
	if location == nil {
		location = time.Local
	}
	ay, am, ad := a.In(location).Date()
	by, bm, bd := b.In(location).Date()
	start := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	end := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day in location.
func SameDay(a, b time.Time, location *time.Location) bool {
	return DaysBetween(a, b, location) == 0
}
