package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHebrewYearStart_KnownDates anchors the molad arithmetic on published
// Rosh Hashanah dates.
func TestHebrewYearStart_KnownDates(t *testing.T) {
	tests := []struct {
		year int
		want CivilDate
	}{
		{5784, CivilDate{2023, time.September, 16}},
		{5785, CivilDate{2024, time.October, 3}},
		{5786, CivilDate{2025, time.September, 23}},
		{5787, CivilDate{2026, time.September, 12}},
		{5790, CivilDate{2029, time.September, 10}},
		{5800, CivilDate{2039, time.September, 19}},
	}

	for _, tt := range tests {
		got := CivilFromAbsolute(HebrewYearStart(tt.year))
		assert.Equal(t, tt.want, got, "Rosh Hashanah %d", tt.year)
	}
}

func TestHebrewYearStart_Properties(t *testing.T) {
	valid := map[int]bool{353: true, 354: true, 355: true, 383: true, 384: true, 385: true}
	h := NewHebrew()

	for y := 5000; y <= 6500; y++ {
		length := h.YearLength(y)
		require.True(t, valid[length], "year %d has %d days", y, length)
		require.Equal(t, HebrewLeapYear(y), length > 380, "year %d leap status vs length %d", y, length)

		sum := 0
		for _, m := range h.Months(y) {
			sum += m.Days
		}
		require.Equal(t, length, sum, "month table of %d", y)

		// Never Sunday, Wednesday or Friday.
		weekday := CivilFromAbsolute(h.YearStart(y)).Time(time.UTC).Weekday()
		require.NotContains(t, []time.Weekday{time.Sunday, time.Wednesday, time.Friday}, weekday, "year %d", y)
	}
}

func TestHebrewLeapYear_SevenOfNineteen(t *testing.T) {
	for start := 5700; start < 5800; start++ {
		leaps := 0
		for y := start; y < start+19; y++ {
			if HebrewLeapYear(y) {
				leaps++
			}
		}
		assert.Equal(t, 7, leaps, "cycle starting at %d", start)
	}

	assert.True(t, HebrewLeapYear(5784))
	assert.True(t, HebrewLeapYear(5787))
	assert.False(t, HebrewLeapYear(5785))
	assert.True(t, HebrewLeapYear(5776), "5776 mod 19 == 0")
}

func TestHebrewMonths_LeapYear(t *testing.T) {
	h := NewHebrew()

	leap := h.Months(5784)
	require.Len(t, leap, 13)
	assert.Equal(t, "Adar I", leap[5].English)
	assert.Equal(t, 30, leap[5].Days)
	assert.Equal(t, "Adar II", leap[6].English)
	assert.Equal(t, 29, leap[6].Days)

	common := h.Months(5785)
	require.Len(t, common, 12)
	assert.Equal(t, "Adar", common[5].English)
	// 5785 is a complete year: both Cheshvan and Kislev have 30 days.
	assert.Equal(t, 30, common[1].Days)
	assert.Equal(t, 30, common[2].Days)

	// 5786 is regular (354 days).
	regular := h.Months(5786)
	assert.Equal(t, 29, regular[1].Days)
	assert.Equal(t, 30, regular[2].Days)
}

func TestHebrewConvert(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want string
	}{
		{"Rosh Hashanah 5785", time.Date(2024, 10, 3, 8, 0, 0, 0, time.UTC), "1 Tishrei 5785 (א׳ תשרי)"},
		{"Last day of 5784", time.Date(2024, 10, 2, 23, 59, 0, 0, time.UTC), "29 Elul 5784 (כ״ט אלול)"},
		{"Civil new year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), "20 Tevet 5784 (כ׳ טבת)"},
		{"First day of Adar I", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), "1 Adar I 5784 (א׳ אדר א׳)"},
		{"Purim in a leap year", time.Date(2024, 3, 24, 0, 0, 0, 0, time.UTC), "14 Adar II 5784 (י״ד אדר ב׳)"},
		{"Passover", time.Date(2025, 4, 13, 0, 0, 0, 0, time.UTC), "15 Nisan 5785 (ט״ו ניסן)"},
		{"Y2K", time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC), "23 Tevet 5760 (כ״ג טבת)"},
	}

	h := NewHebrew()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := h.Convert(tt.date)
			require.NoError(t, err)
			assert.Equal(t, "Jewish", got.System)
			assert.Equal(t, tt.want, got.Date)
			assert.Empty(t, got.AdditionalInfo)
		})
	}
}

// TestHebrewConvert_Idempotent compares a warm cache with fresh instances.
func TestHebrewConvert_Idempotent(t *testing.T) {
	warm := NewHebrew()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 800; i++ {
		d := day.AddDate(0, 0, i)
		first, err := warm.Convert(d)
		require.NoError(t, err)
		second, err := warm.Convert(d)
		require.NoError(t, err)
		cold, err := NewHebrew().Convert(d)
		require.NoError(t, err)

		require.Equal(t, first, second, d.String())
		require.Equal(t, first, cold, d.String())
	}

	// 2024-01-01..2026-03 touches years 5784..5787 and their neighbours.
	assert.LessOrEqual(t, warm.CachedYears(), 6)
	assert.Positive(t, warm.CachedYears())
}

func TestLocateDay_OutOfYear(t *testing.T) {
	months := NewHebrew().Months(5785)

	m, day, err := locateDay(months, 0)
	require.NoError(t, err)
	assert.Equal(t, "Tishrei", m.English)
	assert.Equal(t, 1, day)

	m, day, err = locateDay(months, 354)
	require.NoError(t, err)
	assert.Equal(t, "Elul", m.English)
	assert.Equal(t, 29, day)

	_, _, err = locateDay(months, 355)
	assert.ErrorIs(t, err, ErrDayOutOfYear)

	_, _, err = locateDay(months, -1)
	assert.ErrorIs(t, err, ErrDayOutOfYear)
}

func TestHebrewNumeral(t *testing.T) {
	assert.Equal(t, "א׳", HebrewNumeral(1))
	assert.Equal(t, "ט״ו", HebrewNumeral(15), "15 is written 9+6")
	assert.Equal(t, "ט״ז", HebrewNumeral(16), "16 is written 9+7")
	assert.Equal(t, "ל׳", HebrewNumeral(30))
	assert.Equal(t, "31", HebrewNumeral(31))
	assert.Equal(t, "0", HebrewNumeral(0))
}
