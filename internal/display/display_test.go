package display_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tartampluch/go-vivace/internal/calendar"
	"github.com/tartampluch/go-vivace/internal/display"
)

func TestResults(t *testing.T) {
	out := display.Results("Today", []calendar.Result{
		{ID: "french_revolutionary", System: "French Revolutionary", Date: "Vendémiaire 1, An 233", AdditionalInfo: "Raisin"},
		{ID: "julian", System: "Julian", Date: "September 09, 2024"},
	}, "nothing")

	assert.Contains(t, out, "Today")
	assert.Contains(t, out, "French Revolutionary")
	assert.Contains(t, out, "Vendémiaire 1, An 233")
	assert.Contains(t, out, "Raisin")
	assert.Contains(t, out, "September 09, 2024")
	assert.NotContains(t, out, "nothing")
	assert.Contains(t, out, "╭", "rounded border")
}

func TestResults_Empty(t *testing.T) {
	out := display.Results("Today", nil, "No calendar")
	assert.Contains(t, out, "No calendar")
}

func TestList(t *testing.T) {
	out := display.List("Calendars", []string{"gregorian", "jewish"})
	assert.Contains(t, out, "Calendars")
	assert.Equal(t, 2, strings.Count(out, "•"))
}
