package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-vivace/internal/calendar"
	"github.com/tartampluch/go-vivace/internal/config"
	"github.com/tartampluch/go-vivace/internal/engine"
	"github.com/tartampluch/go-vivace/internal/i18n"
	"github.com/tartampluch/go-vivace/internal/metrics"
)

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

var fixedNow = time.Date(2024, 9, 22, 9, 30, 0, 0, time.UTC)

func newTestServer(calendars ...string) *CalendarServer {
	s := config.DefaultSettings()
	if len(calendars) > 0 {
		s.EnabledCalendars = calendars
	}
	srv := NewCalendarServer(0, engine.NewGenerator(engine.FixedClock{At: fixedNow}, nil), *s)
	srv.Now = func() time.Time { return fixedNow }
	return srv
}

func get(t *testing.T, h http.Handler, path string) *http.Response {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w.Result()
}

func decode[T any](t *testing.T, resp *http.Response) (Response, T) {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()

	var raw struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   *ErrorInfo      `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))

	var data T
	if len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, &data))
	}
	return Response{Success: raw.Success, Error: raw.Error}, data
}

type failingConverter struct{}

func (failingConverter) ConvertAt(context.Context, time.Time, config.Settings) ([]calendar.Result, error) {
	return nil, errors.New("boom")
}

// -----------------------------------------------------------------------------
// Feed Handler
// -----------------------------------------------------------------------------

// TestHandler_ServingContent verifies that the handler correctly writes
// the standard HTTP headers and body content when data is available.
func TestHandler_ServingContent(t *testing.T) {
	srv := newTestServer()
	expectedICS := []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR")
	srv.Update(expectedICS)

	resp := get(t, srv.Handler(), config.RouteFeed)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeTextCalendar, resp.Header.Get(config.HeaderContentType))
	assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
	assert.Contains(t, resp.Header.Get(config.HeaderCacheControl), "no-cache")
	assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))
	assert.NotEmpty(t, resp.Header.Get(config.HeaderLastModified))

	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, expectedICS, body)
}

// TestHandler_Caching verifies ETag and Last-Modified revalidation.
func TestHandler_Caching(t *testing.T) {
	srv := newTestServer()
	srv.Update([]byte("DATA_VERSION_1"))
	h := srv.Handler()

	first := get(t, h, config.RouteFeed)
	_ = first.Body.Close()
	etag := first.Header.Get(config.HeaderETag)
	require.NotEmpty(t, etag, "Server must provide an ETag")

	t.Run("If-None-Match", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, config.RouteFeed, nil)
		req.Header.Set(config.HeaderIfNoneMatch, etag)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotModified, w.Code)
		assert.Empty(t, w.Body.Bytes(), "Body must be empty on 304 Not Modified")
	})

	t.Run("If-Modified-Since", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, config.RouteFeed, nil)
		req.Header.Set(config.HeaderIfModifiedSince, time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotModified, w.Code)
	})

	t.Run("Stale ETag", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, config.RouteFeed, nil)
		req.Header.Set(config.HeaderIfNoneMatch, `"old"`)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "DATA_VERSION_1", w.Body.String())
	})
}

func TestHandler_Head(t *testing.T) {
	srv := newTestServer()
	srv.Update([]byte("BEGIN:VCALENDAR"))

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodHead, config.RouteFeed, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.Bytes())
	assert.NotEmpty(t, w.Header().Get(config.HeaderETag))
}

// TestHandler_MethodNotAllowed ensures strictly GET and HEAD are accepted.
func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := newTestServer()
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, config.RouteFeed, nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

// TestHandler_Initializing verifies the 503 behavior when data is not yet ready.
func TestHandler_Initializing(t *testing.T) {
	resp := get(t, newTestServer().Handler(), config.RouteFeed)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
}

// -----------------------------------------------------------------------------
// JSON API
// -----------------------------------------------------------------------------

func TestHandler_Health(t *testing.T) {
	srv := newTestServer()

	env, health := decode[HealthPayload](t, get(t, srv.Handler(), config.RouteHealth))
	assert.True(t, env.Success)
	assert.Equal(t, config.HTTPStatusHealthy, health.Status)
	assert.False(t, health.FeedReady)

	srv.Update([]byte("x"))
	_, health = decode[HealthPayload](t, get(t, srv.Handler(), config.RouteHealth))
	assert.True(t, health.FeedReady)
}

func TestHandler_Today(t *testing.T) {
	resp := get(t, newTestServer().Handler(), config.RouteDates)
	assert.Equal(t, config.MimeJSON, resp.Header.Get(config.HeaderContentType))

	env, payload := decode[DatesPayload](t, resp)
	require.True(t, env.Success)
	assert.Equal(t, "2024-09-22", payload.Date)
	require.Len(t, payload.Results, 5)
	assert.Equal(t, "french_revolutionary", payload.Results[0].ID)
	assert.Equal(t, "Raisin", payload.Results[0].AdditionalInfo)
	assert.Equal(t, "Sunday, September 22, 2024 09:30:00", payload.Results[1].Date)
}

func TestHandler_DateByDay(t *testing.T) {
	h := newTestServer("julian", "buddhist").Handler()

	env, payload := decode[DatesPayload](t, get(t, h, "/api/v1/dates/2024-03-01"))
	require.True(t, env.Success)
	assert.Equal(t, "2024-03-01", payload.Date)
	require.Len(t, payload.Results, 2)
	assert.Equal(t, "February 17, 2024", payload.Results[0].Date)
	assert.Equal(t, "March 01, 2567 BE", payload.Results[1].Date)

	resp := get(t, h, "/api/v1/dates/2024-13-01")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	env, _ = decode[DatesPayload](t, resp)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, config.HTTPCodeBadRequest, env.Error.Code)
}

func TestHandler_ConverterFailure(t *testing.T) {
	srv := newTestServer()
	srv.Converter = failingConverter{}

	resp := get(t, srv.Handler(), config.RouteDates)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	env, _ := decode[DatesPayload](t, resp)
	require.NotNil(t, env.Error)
	assert.Equal(t, config.HTTPCodeInternal, env.Error.Code)
	assert.NotContains(t, env.Error.Message, "boom", "internal errors are not leaked")
}

func TestHandler_Calendars(t *testing.T) {
	srv := newTestServer("jewish", "gregorian")

	env, infos := decode[[]CalendarInfo](t, get(t, srv.Handler(), config.RouteCalendars))
	require.True(t, env.Success)
	require.Len(t, infos, 5)
	assert.Equal(t, CalendarInfo{ID: "gregorian", Name: "Gregorian", Enabled: true}, infos[0])
	assert.Equal(t, CalendarInfo{ID: "julian", Name: "Julian", Enabled: false}, infos[1])
	assert.True(t, infos[4].Enabled)
}

func TestHandler_Localized(t *testing.T) {
	tr, err := i18n.New("fr")
	require.NoError(t, err)

	srv := newTestServer("jewish")
	srv.Localizer = tr
	h := srv.Handler()

	_, payload := decode[DatesPayload](t, get(t, h, config.RouteDates))
	require.Len(t, payload.Results, 1)
	assert.Equal(t, "Hébraïque", payload.Results[0].System)

	_, infos := decode[[]CalendarInfo](t, get(t, h, config.RouteCalendars))
	assert.Equal(t, "Grégorien", infos[0].Name)
}

func TestHandler_Metrics(t *testing.T) {
	srv := newTestServer()
	assert.Equal(t, http.StatusNotFound, get(t, srv.Handler(), config.RouteMetrics).StatusCode)

	c := metrics.New(nil)
	c.FeedBuilt()
	srv.Metrics = c.Handler()

	resp := get(t, srv.Handler(), config.RouteMetrics)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.Contains(string(body), "vivace_feed_builds_total 1"))
}

// -----------------------------------------------------------------------------
// Concurrency Tests (Race Detection)
// -----------------------------------------------------------------------------

// TestServer_RaceCondition validates the thread-safety of atomic.Pointer usage
// and of the shared generator. Run this with `go test -race`.
func TestServer_RaceCondition(t *testing.T) {
	srv := newTestServer()
	h := srv.Handler()
	var wg sync.WaitGroup

	end := time.Now().Add(300 * time.Millisecond)

	for w := 0; w < 3; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			i := 0
			for time.Now().Before(end) {
				srv.Update([]byte(fmt.Sprintf("VERSION:%d-%d", id, i)))
				i++
				time.Sleep(time.Microsecond)
			}
		}(w)
	}

	for r := 0; r < 10; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			path := config.RouteFeed
			if r%2 == 0 {
				path = config.RouteDates
			}
			for time.Now().Before(end) {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
				if w.Code != http.StatusOK && w.Code != http.StatusServiceUnavailable {
					t.Errorf("Unexpected status code during race test: %d", w.Code)
				}
			}
		}(r)
	}

	wg.Wait()
}

// -----------------------------------------------------------------------------
// Integration Tests (Real TCP Lifecycle)
// -----------------------------------------------------------------------------

// TestServer_Lifecycle spins up the actual TCP listener to verify network binding
// and graceful shutdown logic.
func TestServer_Lifecycle(t *testing.T) {
	const port = 18099

	srv := newTestServer()
	srv.Port = port
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start(ctx)
	}()

	url := fmt.Sprintf("http://127.0.0.1:%d%s", port, config.RouteFeed)

	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond, "Server failed to bind/listen in time")

	resp, err := http.Get(url)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	_ = resp.Body.Close()

	srv.Update([]byte("BEGIN:VCALENDAR\nEND:VCALENDAR"))

	resp, err = http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.Contains(t, string(body), "BEGIN:VCALENDAR")

	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err, "Server should shutdown gracefully without error")
	case <-time.After(5 * time.Second):
		t.Fatal("Server shutdown timed out")
	}
}

func TestServer_PortRequired(t *testing.T) {
	err := newTestServer().Start(context.Background())
	assert.EqualError(t, err, config.ErrPortRequired)
}
