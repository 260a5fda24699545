// Package calendar converts civil (Gregorian) dates into display strings for
// the Gregorian, Julian, Buddhist, French Revolutionary and Hebrew calendars.
//
// The set of systems is closed: System enumerates them and the Dispatcher
// switches over it. The Hebrew converter is the only stateful one, it owns a
// year-start cache and must not be shared between goroutines.
package calendar

import "github.com/tartampluch/go-vivace/internal/config"

// System identifies one of the supported calendar systems.
type System int

const (
	Gregorian System = iota
	Julian
	Buddhist
	FrenchRevolutionary
	Jewish
)

// systems lists every System in the order reported by Available.
var systems = []System{Gregorian, Julian, Buddhist, FrenchRevolutionary, Jewish}

// ID returns the settings identifier (e.g. "french_revolutionary").
func (s System) ID() string {
	switch s {
	case Gregorian:
		return config.CalendarGregorian
	case Julian:
		return config.CalendarJulian
	case Buddhist:
		return config.CalendarBuddhist
	case FrenchRevolutionary:
		return config.CalendarFrenchRevolutionary
	case Jewish:
		return config.CalendarJewish
	default:
		return ""
	}
}

// Name returns the display name (e.g. "French Revolutionary").
func (s System) Name() string {
	switch s {
	case Gregorian:
		return config.SystemGregorian
	case Julian:
		return config.SystemJulian
	case Buddhist:
		return config.SystemBuddhist
	case FrenchRevolutionary:
		return config.SystemFrenchRevolutionary
	case Jewish:
		return config.SystemJewish
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (s System) String() string {
	return s.ID()
}

// ParseSystem resolves a settings identifier. ok is false for unknown ids.
func ParseSystem(id string) (System, bool) {
	for _, s := range systems {
		if s.ID() == id {
			return s, true
		}
	}
	return 0, false
}

// Available returns every supported identifier, independent of settings.
func Available() []string {
	ids := make([]string, 0, len(systems))
	for _, s := range systems {
		ids = append(ids, s.ID())
	}
	return ids
}

// Result is one converted date ready for display.
type Result struct {
	// ID is the settings identifier of the calendar.
	ID string `json:"id"`

	// System is the display name of the calendar.
	System string `json:"system"`

	// Date is the formatted date in that calendar.
	Date string `json:"date"`

	// AdditionalInfo carries extra text such as the French Revolutionary
	// day item. Empty when the system has none.
	AdditionalInfo string `json:"additional_info,omitempty"`
}
