package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/tartampluch/go-vivace/internal/calendar"
	"github.com/tartampluch/go-vivace/internal/config"
)

// Converter produces the conversion results served by the JSON API.
// engine.Generator implements it.
type Converter interface {
	ConvertAt(ctx context.Context, t time.Time, s config.Settings) ([]calendar.Result, error)
}

// Localizer translates system names of results. i18n.Translator implements it.
type Localizer interface {
	LocalizeResults(results []calendar.Result) []calendar.Result
	SystemName(id string) string
}

// cacheItem stores the rendered calendar and its metadata for HTTP caching.
type cacheItem struct {
	data         []byte
	etag         string
	lastModified string // RFC1123 format required by HTTP headers
}

// CalendarServer serves the iCalendar feed and the JSON conversion API on
// the loopback interface.
type CalendarServer struct {
	// cache uses atomic.Pointer for lock-free reads: the feed is read on
	// every client poll and replaced only by the refresh worker.
	cache atomic.Pointer[cacheItem]

	Port      int
	Converter Converter
	Settings  config.Settings

	// Optional collaborators.
	Localizer Localizer
	Metrics   http.Handler
	Now       func() time.Time
}

// NewCalendarServer creates a server answering conversions with conv for
// the given settings snapshot.
func NewCalendarServer(port int, conv Converter, s config.Settings) *CalendarServer {
	return &CalendarServer{
		Port:      port,
		Converter: conv,
		Settings:  s,
		Now:       time.Now,
	}
}

// Handler builds the router. It is exposed for tests and embedding.
func (s *CalendarServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	r.Get(config.RouteHealth, s.handleHealth)
	r.Get(config.RouteDates, s.handleToday)
	r.Get(config.RouteDateByDay, s.handleDate)
	r.Get(config.RouteCalendars, s.handleCalendars)
	r.Get(config.RouteFeed, s.handleCalendarRequest)
	r.Head(config.RouteFeed, s.handleCalendarRequest)
	if s.Metrics != nil {
		r.Handle(config.RouteMetrics, s.Metrics)
	}
	return r
}

// Start initializes the HTTP server and blocks until the context is cancelled.
func (s *CalendarServer) Start(ctx context.Context) error {
	if s.Port == 0 {
		return errors.New(config.ErrPortRequired)
	}

	srv := &http.Server{
		Addr:         config.LocalhostBindAddr + config.AddrSeparator + strconv.Itoa(s.Port),
		Handler:      s.Handler(),
		ReadTimeout:  config.ServerReadTimeout,
		WriteTimeout: config.ServerWriteTimeout,
		IdleTimeout:  config.ServerIdleTimeout,
	}

	serverError := make(chan error, config.ChannelBufferSize)

	go func() {
		slog.Info(config.MsgServerListen,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyPort, s.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError <- err
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info(config.MsgServerStop, config.LogKeyComponent, config.CompServer)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("%s: %w", config.ErrServerShutdown, err)
		}
		return nil

	case err := <-serverError:
		return fmt.Errorf("%s: %w", config.ErrServerStartup, err)
	}
}

// Update atomically replaces the served feed.
func (s *CalendarServer) Update(data []byte) {
	hash := sha256.Sum256(data)
	etag := fmt.Sprintf(config.FormatETag, hex.EncodeToString(hash[:]))

	s.cache.Store(&cacheItem{
		data:         data,
		etag:         etag,
		lastModified: time.Now().UTC().Format(http.TimeFormat),
	})

	slog.Debug(config.MsgCacheUpdated,
		config.LogKeyComponent, config.CompServer,
		config.LogKeySizeBytes, len(data),
		config.LogKeyETag, etag,
	)
}

// requestLogger logs every request at debug level with its duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Debug(r.Method+" "+r.URL.Path,
			config.LogKeyComponent, config.CompServer,
			config.LogKeyStatus, ww.Status(),
			config.LogKeyRequestID, middleware.GetReqID(r.Context()),
			config.LogKeyDuration, time.Since(start).Milliseconds(),
		)
	})
}
