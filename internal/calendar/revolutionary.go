package calendar

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tartampluch/go-vivace/internal/config"
)

const (
	// revolutionaryEpochYear is the civil year of 1 Vendémiaire An I.
	revolutionaryEpochYear = 1792
	// daysPerRevolutionaryMonth: twelve months of three décades.
	daysPerRevolutionaryMonth = 30
	// ComplementaryMonth is the month index of the Sansculottides.
	ComplementaryMonth = 12
)

// Every revolutionary year starts on September 22. The true equinox drifts
// by a day; the fixed date is a known approximation.
const (
	vendemiaireMonth = time.September
	vendemiaireDay   = 22
)

var revolutionaryMonths = [...]string{
	"Vendémiaire", "Brumaire", "Frimaire", "Nivôse", "Pluviôse", "Ventôse",
	"Germinal", "Floréal", "Prairial", "Messidor", "Thermidor", "Fructidor",
}

const sansculottides = "Sansculottides"

// RevolutionaryDate is a date in the French Republican calendar.
type RevolutionaryDate struct {
	// MonthIndex is 0..11, or ComplementaryMonth for the Sansculottides.
	MonthIndex int
	// Day is 1..30, or 1..6 in the complementary block.
	Day int
	// Year counts from An I (1792).
	Year int
}

// RevolutionaryFromCivil converts d using the fixed September 22 epoch.
func RevolutionaryFromCivil(d CivilDate) RevolutionaryDate {
	start := CivilDate{Year: d.Year, Month: vendemiaireMonth, Day: vendemiaireDay}
	year := d.Year - revolutionaryEpochYear + 1
	if d.Before(start) {
		start.Year--
		year--
	}

	elapsed := int(AbsoluteFromCivil(d) - AbsoluteFromCivil(start))
	return RevolutionaryDate{
		MonthIndex: elapsed / daysPerRevolutionaryMonth,
		Day:        elapsed%daysPerRevolutionaryMonth + 1,
		Year:       year,
	}
}

// MonthName returns the month name, "Sansculottides" for the complementary days.
func (r RevolutionaryDate) MonthName() string {
	if r.MonthIndex >= 0 && r.MonthIndex < len(revolutionaryMonths) {
		return revolutionaryMonths[r.MonthIndex]
	}
	return sansculottides
}

// Item returns the name the Republican calendar gives to the day: a plant,
// animal, mineral or tool, or a festival during the Sansculottides.
//
// A complementary day past the sixth, or a month index past the
// complementary block, has no name and renders as the bare day number.
func (r RevolutionaryDate) Item() string {
	switch {
	case r.MonthIndex >= 0 && r.MonthIndex < len(revolutionaryItems):
		if r.Day >= 1 && r.Day <= daysPerRevolutionaryMonth {
			return revolutionaryItems[r.MonthIndex][r.Day-1]
		}
	case r.MonthIndex == ComplementaryMonth:
		if r.Day >= 1 && r.Day <= len(complementaryFestivals) {
			return complementaryFestivals[r.Day-1]
		}
	}
	return strconv.Itoa(r.Day)
}

// String renders "{month} {day}, An {year}".
func (r RevolutionaryDate) String() string {
	return fmt.Sprintf(config.FormatRevolutionaryDate, r.MonthName(), r.Day, r.Year)
}

// Revolutionary converts civil dates to the French Republican calendar.
type Revolutionary struct{}

// Convert renders t with the day item as additional info.
func (Revolutionary) Convert(t time.Time) (Result, error) {
	r := RevolutionaryFromCivil(CivilFromTime(t))
	return Result{
		ID:             config.CalendarFrenchRevolutionary,
		System:         config.SystemFrenchRevolutionary,
		Date:           r.String(),
		AdditionalInfo: r.Item(),
	}, nil
}
