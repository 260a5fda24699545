package calendar

import (
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"

	"github.com/tartampluch/go-vivace/internal/config"
)

// Gregorian renders the civil date itself with a strftime pattern.
type Gregorian struct {
	// Pattern is a resolved strftime pattern, see ResolveFormat.
	// Empty falls back to the default long date.
	Pattern string
}

// Convert formats t with the configured pattern.
func (g Gregorian) Convert(t time.Time) (Result, error) {
	pattern := g.Pattern
	if pattern == "" {
		pattern = config.PatternDefault
	}
	s, err := strftime.Format(pattern, t)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", config.ErrConvert, err)
	}
	return Result{ID: config.CalendarGregorian, System: config.SystemGregorian, Date: s}, nil
}

// Julian shifts the date back by a constant 13 days. The offset is only
// exact between 1900-03-01 and 2100-02-28.
type Julian struct{}

// Convert formats t minus the Julian lag.
func (Julian) Convert(t time.Time) (Result, error) {
	s, err := strftime.Format(config.PatternJulian, t.AddDate(0, 0, -config.JulianOffsetDays))
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", config.ErrConvert, err)
	}
	return Result{ID: config.CalendarJulian, System: config.SystemJulian, Date: s}, nil
}

// Buddhist keeps the civil month and day and counts years in the Buddhist Era.
type Buddhist struct{}

// Convert formats t with the year shifted by 543.
func (Buddhist) Convert(t time.Time) (Result, error) {
	monthDay, err := strftime.Format(config.PatternBuddhist, t)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", config.ErrConvert, err)
	}
	return Result{
		ID:     config.CalendarBuddhist,
		System: config.SystemBuddhist,
		Date:   fmt.Sprintf(config.FormatBuddhistDate, monthDay, t.Year()+config.BuddhistYearOffset),
	}, nil
}
