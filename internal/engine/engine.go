package engine

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/emersion/go-ical"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/tartampluch/go-vivace/internal/calendar"
	"github.com/tartampluch/go-vivace/internal/config"
)

// uidNamespace scopes the name-based UUIDs of feed events.
var uidNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(config.UIDNamespace))

// Recorder receives conversion statistics. metrics.Collector implements it.
type Recorder interface {
	Conversion(system string)
	FeedBuilt()
}

type noopRecorder struct{}

func (noopRecorder) Conversion(string) {}
func (noopRecorder) FeedBuilt()        {}

// Generator is the core service: it runs the calendar dispatcher against a
// settings snapshot and renders results as a list or an iCalendar feed.
//
// The dispatcher and its Hebrew year cache are shared by every call and
// guarded by a mutex, so a Generator is safe for concurrent use.
type Generator struct {
	Clock    Clock    // Interface for time mocking.
	Recorder Recorder // Optional metrics sink.

	mu         sync.Mutex
	dispatcher *calendar.Dispatcher
}

// NewGenerator returns a Generator with an empty Hebrew cache. rec may be nil.
func NewGenerator(clock Clock, rec Recorder) *Generator {
	if rec == nil {
		rec = noopRecorder{}
	}
	return &Generator{
		Clock:      clock,
		Recorder:   rec,
		dispatcher: calendar.NewDispatcher(),
	}
}

// Today converts the current instant in every enabled calendar.
func (g *Generator) Today(ctx context.Context, s config.Settings) ([]calendar.Result, error) {
	return g.ConvertAt(ctx, g.Clock.Now(), s)
}

// ConvertAt converts t in every enabled calendar, in settings order. The
// Gregorian pattern comes from the date_format and show_seconds settings.
func (g *Generator) ConvertAt(ctx context.Context, t time.Time, s config.Settings) ([]calendar.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pattern := calendar.ResolveFormat(s.DateFormat, s.SecondsEnabled())

	g.mu.Lock()
	results, err := g.dispatcher.Convert(t, s.EnabledCalendars, pattern)
	g.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrConvert, err)
	}

	for _, r := range results {
		g.Recorder.Conversion(r.ID)
	}
	slog.DebugContext(ctx, config.MsgConvertDone,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDate, calendar.CivilFromTime(t).String(),
		config.LogKeyCount, len(results),
	)
	return results, nil
}

// CachedYears reports the size of the Hebrew year-start cache.
func (g *Generator) CachedYears() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.dispatcher.Hebrew().CachedYears()
}

// Feed renders an iCalendar document with one all-day event per day and
// enabled calendar, over [today-feed_days_before, today+feed_days_after].
//
// Events always use the date-only Gregorian pattern: a wall-clock time on an
// all-day event would only ever show midnight.
func (g *Generator) Feed(ctx context.Context, s config.Settings) ([]byte, error) {
	start := time.Now()
	now := g.Clock.Now()

	days, err := feedDays(now, s.FeedDaysBefore, s.FeedDaysAfter)
	if err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	// RFC 7986 refresh hint.
	refreshProp := ical.NewProp(config.PropRefresh)
	refreshProp.SetDuration(config.DefaultICalRefresh)
	cal.Props.Set(refreshProp)

	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	g.mu.Lock()
	defer g.mu.Unlock()

	for _, day := range days {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		results, err := g.dispatcher.Convert(day, s.EnabledCalendars, config.PatternDefault)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrConvert, err)
		}
		for _, r := range results {
			g.Recorder.Conversion(r.ID)
			event := newDayEvent(day, r)
			event.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, event.Component)
		}
	}

	var buf bytes.Buffer
	if len(cal.Children) == 0 {
		// An empty selection still yields a valid VCALENDAR.
		buf.WriteString(config.StubVCalendar)
	} else if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.Recorder.FeedBuilt()
	slog.InfoContext(ctx, config.MsgFeedGenerated,
		config.LogKeyComponent, config.CompEngine,
		config.LogKeyDays, len(days),
		config.LogKeyCount, len(cal.Children),
		config.LogKeySizeBytes, buf.Len(),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// feedDays enumerates local midnights from before days ago to after days
// ahead, today included.
func feedDays(now time.Time, before, after int) ([]time.Time, error) {
	if before < 0 || after < 0 || before+after+1 > 2*config.MaxFeedDays+1 {
		return nil, fmt.Errorf("%s: -%d/+%d days", config.ErrFeedWindow, before, after)
	}

	y, m, d := now.Date()
	first := time.Date(y, m, d-before, 0, 0, 0, 0, now.Location())

	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: first,
		Count:   before + after + 1,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrFeedWindow, err)
	}
	return r.All(), nil
}

// newDayEvent builds the all-day VEVENT of one conversion result. The UID is
// derived from system and civil date so it survives regeneration.
func newDayEvent(day time.Time, r calendar.Result) *ical.Event {
	civil := calendar.CivilFromTime(day).String()

	event := ical.NewEvent()
	event.Props.SetText(config.PropUID,
		uuid.NewSHA1(uidNamespace, []byte(fmt.Sprintf(config.FormatUIDName, r.System, civil))).String())
	event.Props.SetText(config.PropSummary, fmt.Sprintf(config.FormatEventSummary, r.System, r.Date))
	if r.AdditionalInfo != "" {
		event.Props.SetText(config.PropDescription, r.AdditionalInfo)
	}

	dtStartProp := ical.NewProp(config.PropDTStart)
	dtStartProp.SetDate(day)
	event.Props.Set(dtStartProp)
	return event
}
