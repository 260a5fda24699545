package calendar

import "time"

// AbsoluteDay counts days from a fixed epoch: day 1 is January 1 of year 1
// in the proleptic Gregorian calendar. It is the common coordinate space used
// to compare dates across calendar systems.
type AbsoluteDay int64

// CivilDate is a proleptic Gregorian (year, month, day) triple.
type CivilDate struct {
	Year  int
	Month time.Month
	Day   int
}

// CivilFromTime extracts the wall-clock date of t in its own location.
// No timezone conversion happens here; t is already the user's local time.
func CivilFromTime(t time.Time) CivilDate {
	y, m, d := t.Date()
	return CivilDate{Year: y, Month: m, Day: d}
}

// Time returns midnight of the civil date in loc.
func (d CivilDate) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// String formats the date as YYYY-MM-DD.
func (d CivilDate) String() string {
	return d.Time(time.UTC).Format("2006-01-02")
}

// Before reports whether d is strictly earlier than other.
func (d CivilDate) Before(other CivilDate) bool {
	return AbsoluteFromCivil(d) < AbsoluteFromCivil(other)
}

// IsLeapYear applies the Gregorian 4/100/400 rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the length of month in the given Gregorian year.
func DaysInMonth(year int, month time.Month) int {
	switch month {
	case time.April, time.June, time.September, time.November:
		return 30
	case time.February:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// AbsoluteFromCivil converts a civil date to its absolute day number.
// The caller guarantees a valid month and a day within that month.
func AbsoluteFromCivil(d CivilDate) AbsoluteDay {
	n := int64(d.Day)
	for m := time.January; m < d.Month; m++ {
		n += int64(DaysInMonth(d.Year, m))
	}

	y := int64(d.Year - 1)
	n += 365*y + y/4 - y/100 + y/400
	return AbsoluteDay(n)
}

// CivilFromAbsolute is the inverse of AbsoluteFromCivil for years 1..9999.
func CivilFromAbsolute(abs AbsoluteDay) CivilDate {
	// 1461 days per 4 Julian years never overestimates the Gregorian year,
	// so scanning forward is enough to correct the guess.
	year := int((4*(int64(abs)-1) + 3) / 1461)
	for AbsoluteFromCivil(CivilDate{Year: year + 1, Month: time.January, Day: 1}) <= abs {
		year++
	}

	remaining := int(abs - AbsoluteFromCivil(CivilDate{Year: year, Month: time.January, Day: 1}) + 1)
	month := time.January
	for remaining > DaysInMonth(year, month) {
		remaining -= DaysInMonth(year, month)
		month++
	}
	return CivilDate{Year: year, Month: month, Day: remaining}
}
