package calendar

import (
	"strings"

	"github.com/tartampluch/go-vivace/internal/config"
)

// ResolveFormat turns a date_format setting into a strftime pattern.
//
// Recognized presets are "military" (24h clock) and "standard" (12h clock
// with AM/PM). "custom:<pattern>" passes the pattern through untouched. Any
// other value, including the empty string, yields the long date without time.
//
// When showSeconds is set, ":%S" is appended to patterns that display an
// hour but no seconds yet.
func ResolveFormat(preset string, showSeconds bool) string {
	var pattern string
	switch {
	case preset == config.FormatPresetMilitary:
		pattern = config.PatternMilitary
	case preset == config.FormatPresetStandard:
		pattern = config.PatternStandard
	case strings.HasPrefix(preset, config.FormatCustomPrefix):
		pattern = strings.TrimPrefix(preset, config.FormatCustomPrefix)
	default:
		pattern = config.PatternDefault
	}

	if showSeconds && !strings.Contains(pattern, config.TokenSeconds) && hasHour(pattern) {
		pattern += config.PatternSeconds
	}
	return pattern
}

func hasHour(pattern string) bool {
	return strings.Contains(pattern, config.TokenHour24) || strings.Contains(pattern, config.TokenHour12)
}
