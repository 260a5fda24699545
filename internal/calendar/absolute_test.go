package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsoluteFromCivil(t *testing.T) {
	tests := []struct {
		name string
		date CivilDate
		want AbsoluteDay
	}{
		{"Epoch", CivilDate{1, time.January, 1}, 1},
		{"End of year 1", CivilDate{1, time.December, 31}, 365},
		{"Leap day 2000", CivilDate{2000, time.February, 29}, 730179},
		{"New Year 2024", CivilDate{2024, time.January, 1}, 738886},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsoluteFromCivil(tt.date))
		})
	}
}

// TestCivilRoundTrip checks both directions are inverse. Every day of
// 1900-2100 is covered, the rest of 1..9999 is sampled.
func TestCivilRoundTrip(t *testing.T) {
	first := AbsoluteFromCivil(CivilDate{1900, time.January, 1})
	last := AbsoluteFromCivil(CivilDate{2100, time.December, 31})
	for abs := first; abs <= last; abs++ {
		d := CivilFromAbsolute(abs)
		require.Equal(t, abs, AbsoluteFromCivil(d), "civil %s", d)
	}

	end := AbsoluteFromCivil(CivilDate{9999, time.December, 31})
	for abs := AbsoluteDay(1); abs <= end; abs += 97 {
		d := CivilFromAbsolute(abs)
		require.Equal(t, abs, AbsoluteFromCivil(d), "civil %s", d)
	}
	assert.Equal(t, CivilDate{9999, time.December, 31}, CivilFromAbsolute(end))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2024))
	assert.True(t, IsLeapYear(2000), "divisible by 400")
	assert.False(t, IsLeapYear(1900), "divisible by 100 only")
	assert.False(t, IsLeapYear(2025))
}

func TestCivilDateHelpers(t *testing.T) {
	d := CivilFromTime(time.Date(2024, 3, 1, 23, 59, 0, 0, time.FixedZone("X", -11*3600)))
	assert.Equal(t, CivilDate{2024, time.March, 1}, d, "wall-clock date must not be shifted to UTC")
	assert.Equal(t, "2024-03-01", d.String())
	assert.True(t, CivilDate{2024, time.February, 29}.Before(d))
	assert.False(t, d.Before(d))
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 30, DaysInMonth(2023, time.September))
}
