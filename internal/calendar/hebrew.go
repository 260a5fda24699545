package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/tartampluch/go-vivace/internal/config"
)

// Molad arithmetic constants of the traditional fixed Hebrew calendar.
// Any change here moves output dates.
const (
	// hebrewEpoch is the absolute day preceding 1 Tishrei AM 1.
	hebrewEpoch AbsoluteDay = -1373429

	// partsPerHour: one hour is 1080 parts (halakim).
	partsPerHour = 1080
	// partsPerDay = 24 * 1080.
	partsPerDay = 24 * partsPerHour

	// moladOfCreation is BaHaRaD (day 2, 5h 204p) expressed in parts past
	// the start of its day: 5*1080 + 204.
	moladOfCreation = 5*partsPerHour + 204
	// partsPerMonth is the lunation beyond 29 whole days: 12h 793p.
	partsPerMonth = 12*partsPerHour + 793
	// wholeDaysPerMonth is the integral part of a mean lunation.
	wholeDaysPerMonth = 29

	// monthsPerCycle is the number of months in a 19-year Metonic cycle.
	monthsPerCycle = 235
	yearsPerCycle  = 19

	// Postponement thresholds, in parts past the start of the day.
	// Molad zaken: molad at or after noon (18h counted from 6pm).
	thresholdMoladZaken = 18 * partsPerHour
	// GaTaRaD: Tuesday molad at or after 9h 204p in a common year.
	thresholdGatarad = 9*partsPerHour + 204
	// BeTUTaKPaT: Monday molad at or after 15h 589p following a leap year.
	thresholdBetutakpat = 15*partsPerHour + 589
)

// ErrDayOutOfYear reports a day-of-year past the end of the month table.
// It signals an internal inconsistency and never occurs for valid input.
var ErrDayOutOfYear = errors.New(config.ErrDayOutOfYear)

// HebrewLeapYear reports whether year carries the intercalary Adar I.
// Seven years of every 19 are leap: 3, 6, 8, 11, 14, 17 and 19 of the cycle.
func HebrewLeapYear(year int) bool {
	switch year % yearsPerCycle {
	case 0, 3, 6, 8, 11, 14, 17:
		return true
	default:
		return false
	}
}

// monthsElapsed counts lunations from creation to the start of year.
func monthsElapsed(year int) int64 {
	y := int64(year - 1)
	cycles, rem := y/yearsPerCycle, y%yearsPerCycle
	return monthsPerCycle*cycles + 12*rem + (7*rem+1)/yearsPerCycle
}

// HebrewYearStart returns the absolute day of 1 Tishrei (Rosh Hashanah) of
// year, following the Dershowitz & Reingold elapsed-days method.
func HebrewYearStart(year int) AbsoluteDay {
	months := monthsElapsed(year)

	partsElapsed := moladOfCreation + partsPerMonth*months
	day := 1 + wholeDaysPerMonth*months + partsElapsed/partsPerDay
	parts := partsElapsed % partsPerDay

	// Rules a-c all look at the weekday of the molad itself, not of a
	// previously postponed day.
	weekday := day % 7
	if parts >= thresholdMoladZaken ||
		(weekday == 2 && parts >= thresholdGatarad && !HebrewLeapYear(year)) ||
		(weekday == 1 && parts >= thresholdBetutakpat && HebrewLeapYear(year-1)) {
		day++
	}

	// Lo ADU Rosh: never Sunday, Wednesday or Friday.
	switch day % 7 {
	case 0, 3, 5:
		day++
	}

	// day counts elapsed days; 1 Tishrei is the next one.
	return hebrewEpoch + AbsoluteDay(day) + 1
}

// yearStartCache memoizes HebrewYearStart by year. Entries live as long as
// the owning converter. It is not safe for concurrent use.
type yearStartCache struct {
	starts map[int]AbsoluteDay
}

func newYearStartCache() *yearStartCache {
	return &yearStartCache{starts: make(map[int]AbsoluteDay)}
}

func (c *yearStartCache) get(year int) AbsoluteDay {
	if d, ok := c.starts[year]; ok {
		return d
	}
	d := HebrewYearStart(year)
	c.starts[year] = d
	return d
}

func (c *yearStartCache) len() int {
	return len(c.starts)
}

// HebrewMonth is one entry of a year's month table.
type HebrewMonth struct {
	English string
	Hebrew  string
	Days    int
}

// HebrewDate is a resolved date in the Hebrew calendar.
type HebrewDate struct {
	Year  int
	Month HebrewMonth
	Day   int
}

// String renders "{day} {month} {year} ({numeral} {hebrew month})".
func (d HebrewDate) String() string {
	return fmt.Sprintf(config.FormatHebrewDate, d.Day, d.Month.English, d.Year, HebrewNumeral(d.Day), d.Month.Hebrew)
}

// Hebrew converts civil dates to the Hebrew calendar. The zero value is not
// usable, create instances with NewHebrew. Not safe for concurrent use; give
// each goroutine its own instance.
type Hebrew struct {
	cache *yearStartCache
}

// NewHebrew returns a converter with an empty year-start cache.
func NewHebrew() *Hebrew {
	return &Hebrew{cache: newYearStartCache()}
}

// YearStart returns the cached absolute day of 1 Tishrei of year.
func (h *Hebrew) YearStart(year int) AbsoluteDay {
	return h.cache.get(year)
}

// YearLength returns the number of days in year: 353-355, or 383-385 in a leap year.
func (h *Hebrew) YearLength(year int) int {
	return int(h.YearStart(year+1) - h.YearStart(year))
}

// CachedYears reports how many year starts are memoized.
func (h *Hebrew) CachedYears() int {
	return h.cache.len()
}

// Months returns the month table of year starting at Tishrei: 12 entries, or
// 13 with Adar I and Adar II in a leap year. Cheshvan and Kislev absorb the
// deficient/regular/complete year length.
func (h *Hebrew) Months(year int) []HebrewMonth {
	cheshvan, kislev := 29, 30
	switch h.YearLength(year) {
	case 353, 383:
		cheshvan, kislev = 29, 29
	case 354, 384:
		cheshvan, kislev = 29, 30
	case 355, 385:
		cheshvan, kislev = 30, 30
	}

	months := make([]HebrewMonth, 0, 13)
	months = append(months,
		HebrewMonth{"Tishrei", "תשרי", 30},
		HebrewMonth{"Cheshvan", "חשון", cheshvan},
		HebrewMonth{"Kislev", "כסלו", kislev},
		HebrewMonth{"Tevet", "טבת", 29},
		HebrewMonth{"Shevat", "שבט", 30},
	)
	if HebrewLeapYear(year) {
		months = append(months,
			HebrewMonth{"Adar I", "אדר א׳", 30},
			HebrewMonth{"Adar II", "אדר ב׳", 29},
		)
	} else {
		months = append(months, HebrewMonth{"Adar", "אדר", 29})
	}
	months = append(months,
		HebrewMonth{"Nisan", "ניסן", 30},
		HebrewMonth{"Iyar", "אייר", 29},
		HebrewMonth{"Sivan", "סיון", 30},
		HebrewMonth{"Tammuz", "תמוז", 29},
		HebrewMonth{"Av", "אב", 30},
		HebrewMonth{"Elul", "אלול", 29},
	)
	return months
}

// Date resolves the Hebrew date containing the civil date d.
func (h *Hebrew) Date(d CivilDate) (HebrewDate, error) {
	abs := AbsoluteFromCivil(d)

	// The estimate is within one year of the answer.
	year := d.Year + 3760
	start := h.YearStart(year)
	if abs < start {
		year--
		start = h.YearStart(year)
	} else if abs >= h.YearStart(year+1) {
		year++
		start = h.YearStart(year)
	}

	month, day, err := locateDay(h.Months(year), int(abs-start))
	if err != nil {
		return HebrewDate{}, fmt.Errorf("%s: year %d, civil %s: %w", config.ErrConvert, year, d, err)
	}
	return HebrewDate{Year: year, Month: month, Day: day}, nil
}

// locateDay walks months until the 0-based dayOfYear falls inside one.
func locateDay(months []HebrewMonth, dayOfYear int) (HebrewMonth, int, error) {
	if dayOfYear < 0 {
		return HebrewMonth{}, 0, fmt.Errorf("%w: day %d", ErrDayOutOfYear, dayOfYear)
	}
	rem := dayOfYear
	for _, m := range months {
		if rem < m.Days {
			return m, rem + 1, nil
		}
		rem -= m.Days
	}
	return HebrewMonth{}, 0, fmt.Errorf("%w: day %d", ErrDayOutOfYear, dayOfYear)
}

// Convert renders t as a bilingual Hebrew date.
func (h *Hebrew) Convert(t time.Time) (Result, error) {
	d, err := h.Date(CivilFromTime(t))
	if err != nil {
		return Result{}, err
	}
	return Result{ID: config.CalendarJewish, System: config.SystemJewish, Date: d.String()}, nil
}

// hebrewNumerals spells 1..30. 15 and 16 are written 9+6 and 9+7 rather
// than spelling a divine name.
var hebrewNumerals = [...]string{
	"", "א׳", "ב׳", "ג׳", "ד׳", "ה׳", "ו׳", "ז׳", "ח׳", "ט׳", "י׳",
	"י״א", "י״ב", "י״ג", "י״ד", "ט״ו", "ט״ז", "י״ז", "י״ח", "י״ט", "כ׳",
	"כ״א", "כ״ב", "כ״ג", "כ״ד", "כ״ה", "כ״ו", "כ״ז", "כ״ח", "כ״ט", "ל׳",
}

// HebrewNumeral renders n (1..30) in Hebrew letters, other values in decimal.
func HebrewNumeral(n int) string {
	if n < 1 || n >= len(hebrewNumerals) {
		return fmt.Sprint(n)
	}
	return hebrewNumerals[n]
}
