package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tartampluch/go-vivace/internal/calendar"
	"github.com/tartampluch/go-vivace/internal/config"
)

// DatesPayload is the body of the dates endpoints.
type DatesPayload struct {
	Date    string            `json:"date"`
	Results []calendar.Result `json:"results"`
}

// CalendarInfo describes one supported calendar.
type CalendarInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

// HealthPayload reports liveness and whether the feed has been generated.
type HealthPayload struct {
	Status    string `json:"status"`
	FeedReady bool   `json:"feed_ready"`
}

func (s *CalendarServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeSuccess(w, HealthPayload{
		Status:    config.HTTPStatusHealthy,
		FeedReady: s.cache.Load() != nil,
	})
}

func (s *CalendarServer) handleToday(w http.ResponseWriter, r *http.Request) {
	s.writeDates(w, r, s.now())
}

// handleDate converts the civil date in the path, at local midnight.
func (s *CalendarServer) handleDate(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, config.ParamDate)
	t, err := time.ParseInLocation(config.DateFormatISO, raw, s.now().Location())
	if err != nil {
		slog.Debug(config.ErrDateParse,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyDate, raw,
			config.LogKeyError, err,
		)
		writeError(w, http.StatusBadRequest, config.HTTPMsgBadDate, config.HTTPCodeBadRequest)
		return
	}
	s.writeDates(w, r, t)
}

func (s *CalendarServer) writeDates(w http.ResponseWriter, r *http.Request, t time.Time) {
	results, err := s.Converter.ConvertAt(r.Context(), t, s.Settings)
	if err != nil {
		slog.Error(config.ErrConvert,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyError, err,
		)
		writeError(w, http.StatusInternalServerError, config.HTTPMsgInternalErr, config.HTTPCodeInternal)
		return
	}
	if s.Localizer != nil {
		results = s.Localizer.LocalizeResults(results)
	}
	writeSuccess(w, DatesPayload{
		Date:    calendar.CivilFromTime(t).String(),
		Results: results,
	})
}

func (s *CalendarServer) handleCalendars(w http.ResponseWriter, _ *http.Request) {
	enabled := make(map[string]bool, len(s.Settings.EnabledCalendars))
	for _, id := range s.Settings.EnabledCalendars {
		enabled[id] = true
	}

	ids := calendar.Available()
	infos := make([]CalendarInfo, 0, len(ids))
	for _, id := range ids {
		sys, _ := calendar.ParseSystem(id)
		name := sys.Name()
		if s.Localizer != nil {
			name = s.Localizer.SystemName(id)
		}
		infos = append(infos, CalendarInfo{ID: id, Name: name, Enabled: enabled[id]})
	}
	writeSuccess(w, infos)
}

// handleCalendarRequest serves the ICS content with HTTP caching support.
func (s *CalendarServer) handleCalendarRequest(w http.ResponseWriter, r *http.Request) {
	item := s.cache.Load()

	if item == nil {
		w.Header().Set(config.HeaderRetryAfter, config.RetryAfterSeconds)
		http.Error(w, config.HTTPMsgInitializing, http.StatusServiceUnavailable)
		return
	}

	w.Header().Set(config.HeaderContentType, config.MimeTextCalendar)
	w.Header().Set(config.HeaderXContentType, config.MimeNoSniff)
	w.Header().Set(config.HeaderCacheControl, config.CacheControlPrivate)
	w.Header().Set(config.HeaderETag, item.etag)
	w.Header().Set(config.HeaderLastModified, item.lastModified)

	if match := r.Header.Get(config.HeaderIfNoneMatch); match == item.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	if since := r.Header.Get(config.HeaderIfModifiedSince); since != "" {
		if clientTime, err := time.Parse(http.TimeFormat, since); err == nil {
			if serverTime, err := time.Parse(http.TimeFormat, item.lastModified); err == nil {
				if !serverTime.After(clientTime) {
					w.WriteHeader(http.StatusNotModified)
					return
				}
			}
		}
	}

	if r.Method == http.MethodGet {
		if _, err := io.Copy(w, bytes.NewReader(item.data)); err != nil {
			slog.Error(config.ErrWriteResp,
				config.LogKeyComponent, config.CompServer,
				config.LogKeyError, err,
			)
		}
	}
}

func (s *CalendarServer) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
