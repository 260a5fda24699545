package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Vivace"
	AppID             = "com.github.tartampluch.go-vivace"
	KeyringService    = "com.github.tartampluch.go-vivace"
	KeyringLockUser   = "lock"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
	SettingsFileName  = "settings.yaml"
	SettingsDirName   = "Vivace"
	SettingsTempGlob  = ".vivace-settings-*.tmp"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and the settings file.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagConfig       = "config"
	FlagDebug        = "debug"
	FlagDate         = "date"
	FlagJSON         = "json"
	FlagDescConfig   = "Path to the settings file"
	FlagDescDebug    = "Enable debug logging to stdout"
	FlagDescDate     = "Civil date to convert (YYYY-MM-DD), defaults to now"
	FlagDescJSON     = "Print results as JSON"
	MsgVersionOutput = "%s version %s (%s, %s/%s)\n"
)

// -----------------------------------------------------------------------------
// CLI Commands
// -----------------------------------------------------------------------------

const (
	CmdRoot           = "vivace"
	CmdNow            = "now"
	CmdCalendars      = "calendars"
	CmdServe          = "serve"
	CmdPassword       = "password"
	CmdPasswordSet    = "set [password]"
	CmdPasswordVerify = "verify [password]"
	CmdPasswordClear  = "clear"
	CmdVersion        = "version"
	CmdHelp           = "help"
	CmdCompletion     = "completion"

	CmdShortRoot      = "Show today's date in several calendars"
	CmdShortNow       = "Convert today (or --date) into every enabled calendar"
	CmdShortCalendars = "List supported calendars and whether they are enabled"
	CmdShortServe     = "Serve the JSON API and the iCalendar feed"
	CmdShortPassword  = "Manage the lock-screen password in the OS keyring"
	CmdShortPwSet     = "Store a new lock password (reads stdin when omitted)"
	CmdShortPwVerify  = "Check a password against the stored one"
	CmdShortPwClear   = "Remove the stored password, restoring the default"
	CmdShortVersion   = "Print version information"

	CmdLongRoot = `vivace converts the current civil date into the Gregorian, Julian,
Buddhist, French Revolutionary and Hebrew calendars.

It can print the conversions, serve them as JSON and as an iCalendar feed,
and manage the lock-screen password stored in the OS keyring.`

	FlagPort     = "port"
	FlagDescPort = "Override the server port from settings"

	FormatCalendarItem = "%s (%s)"
	MarkEnabled        = "✓"
	MarkDisabled       = "·"
	JSONIndent         = "  "
)

// -----------------------------------------------------------------------------
// Environment Variables
// -----------------------------------------------------------------------------

const (
	EnvSettingsPath = "VIVACE_SETTINGS"
	EnvPort         = "VIVACE_PORT"
	EnvLogLevel     = "VIVACE_LOG_LEVEL"
)

// -----------------------------------------------------------------------------
// Calendar Identifiers & Display Names
// -----------------------------------------------------------------------------

const (
	CalendarGregorian           = "gregorian"
	CalendarJulian              = "julian"
	CalendarBuddhist            = "buddhist"
	CalendarFrenchRevolutionary = "french_revolutionary"
	CalendarJewish              = "jewish"

	SystemGregorian           = "Gregorian"
	SystemJulian              = "Julian"
	SystemBuddhist            = "Buddhist"
	SystemFrenchRevolutionary = "French Revolutionary"
	SystemJewish              = "Jewish"
)

// -----------------------------------------------------------------------------
// Date Format Presets (strftime)
// -----------------------------------------------------------------------------

const (
	FormatPresetMilitary = "military"
	FormatPresetStandard = "standard"
	FormatCustomPrefix   = "custom:"

	PatternDefault  = "%A, %B %d, %Y"
	PatternMilitary = "%A, %B %d, %Y %H:%M"
	PatternStandard = "%A, %B %d, %Y %I:%M %p"
	PatternJulian   = "%B %d, %Y"
	PatternBuddhist = "%B %d"
	PatternSeconds  = ":%S"

	TokenSeconds = "%S"
	TokenHour24  = "%H"
	TokenHour12  = "%I"

	DateFormatISO = "2006-01-02"
)

// -----------------------------------------------------------------------------
// Calendar Output Formats
// -----------------------------------------------------------------------------

const (
	FormatBuddhistDate      = "%s, %d BE"
	FormatRevolutionaryDate = "%s %d, An %d"
	FormatHebrewDate        = "%d %s %d (%s %s)"

	// Julian calendar lag behind Gregorian, valid for 1900-03-01..2100-02-28.
	JulianOffsetDays = 13
	// Buddhist Era year = civil year + 543.
	BuddhistYearOffset = 543
)

// -----------------------------------------------------------------------------
// Default Values
// -----------------------------------------------------------------------------

const (
	DefaultPort           = 18081
	DefaultLanguage       = "en"
	DefaultLogLevel       = "info"
	DefaultRefreshCron    = "0 * * * *"
	DefaultFeedDaysBefore = 1
	DefaultFeedDaysAfter  = 7
	DefaultTimeoutMinutes = 1
	DefaultHotkey         = "Alt+L"
	DefaultShowSeconds    = true
	DefaultLockPassword   = "password"
	MaxFeedDays           = 366
)

// DefaultEnabledCalendars is the calendar order used on first run.
var DefaultEnabledCalendars = []string{
	CalendarFrenchRevolutionary,
	CalendarGregorian,
	CalendarJulian,
	CalendarBuddhist,
	CalendarJewish,
}

// SupportedLanguages defines the list of available languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// -----------------------------------------------------------------------------
// Standards: iCalendar
// -----------------------------------------------------------------------------

const (
	ICalVersion = "2.0"
	ICalProdid  = "-//Vivace//Calendar Engine//EN"
	ICalCalName = "Vivace Calendars"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"

	PropUID         = "UID"
	PropSummary     = "SUMMARY"
	PropDescription = "DESCRIPTION"
	PropDTStart     = "DTSTART"
	PropDTStamp     = "DTSTAMP"
	PropRefresh     = "REFRESH-INTERVAL"
	PropVersion     = "VERSION"
	PropProdid      = "PRODID"
	PropXWRCalName  = "X-WR-CALNAME"
	PropCalScale    = "CALSCALE"
	PropMethod      = "METHOD"

	FormatEventSummary = "%s: %s"
	FormatUIDName      = "%s|%s"
	UIDNamespace       = "https://github.com/tartampluch/go-vivace"

	DefaultICalRefresh = 1 * time.Hour

	// StubVCalendar is the minimal valid iCalendar object used when no events are produced.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	ShutdownTimeout    = 5 * time.Second
	ServerReadTimeout  = 10 * time.Second
	ServerWriteTimeout = 30 * time.Second
	ServerIdleTimeout  = 60 * time.Second
	RetryAfterSeconds  = "10"
	AddrSeparator      = ":"

	RouteHealth    = "/health"
	RouteFeed      = "/calendar.ics"
	RouteDates     = "/api/v1/dates"
	RouteDateByDay = "/api/v1/dates/{date}"
	RouteCalendars = "/api/v1/calendars"
	RouteMetrics   = "/metrics"
	ParamDate      = "date"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType     = "Content-Type"
	HeaderCacheControl    = "Cache-Control"
	HeaderETag            = "ETag"
	HeaderLastModified    = "Last-Modified"
	HeaderRetryAfter      = "Retry-After"
	HeaderXContentType    = "X-Content-Type-Options"
	HeaderIfNoneMatch     = "If-None-Match"
	HeaderIfModifiedSince = "If-Modified-Since"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"

	// FormatETag expects a string argument.
	FormatETag = `"%s"`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrDayOutOfYear     = "day of year beyond hebrew month table"
	ErrSettingsPath     = "settings path is empty"
	ErrSettingsNil      = "settings are nil"
	ErrSettingsRead     = "failed to read settings"
	ErrSettingsParse    = "failed to parse settings"
	ErrSettingsWrite    = "failed to write settings"
	ErrSettingsInvalid  = "invalid settings"
	ErrConfigDir        = "could not determine user config dir"
	ErrConvert          = "calendar conversion failed"
	ErrICalEncode       = "failed to encode iCalendar data"
	ErrFeedWindow       = "failed to enumerate feed days"
	ErrServerStartup    = "server startup failed"
	ErrServerShutdown   = "server shutdown failed"
	ErrPortRequired     = "server port is required"
	ErrUnknownLogLevel  = "unknown log level"
	ErrSchedule         = "invalid refresh schedule"
	ErrDateParse        = "unable to parse date"
	ErrLogFile          = "failed to open log file"
	ErrCacheDir         = "could not determine user cache dir"
	ErrCreateDir        = "could not create app cache dir"
	ErrAppFailed        = "application failed unexpectedly"
	ErrWriteResp        = "failed to write response body"
	ErrLocalesAccess    = "failed to access embedded locales"
	ErrLocaleLoad       = "failed to load locale file"
	ErrKeyringRead      = "failed to read lock password"
	ErrKeyringWrite     = "failed to store lock password"
	ErrPasswordEmpty    = "lock password must not be empty"
	ErrPasswordMismatch = "password does not match"
)

// -----------------------------------------------------------------------------
// HTTP Server Responses
// -----------------------------------------------------------------------------

const (
	HTTPMsgInitializing = "Calendar initializing, please try again shortly."
	HTTPMsgBadDate      = "Invalid date, use YYYY-MM-DD"
	HTTPMsgInternalErr  = "Internal Server Error"
	HTTPStatusHealthy   = "healthy"
	HTTPCodeBadRequest  = "BAD_REQUEST"
	HTTPCodeInternal    = "INTERNAL_ERROR"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting     = "Starting application"
	MsgAppStop         = "Application stopped gracefully"
	MsgSettingsCreated = "Settings file not found, default settings written"
	MsgSettingsLoaded  = "Settings loaded"
	MsgConvertDone     = "Calendar conversion finished"
	MsgUnknownCalendar = "Skipping unknown calendar identifier"
	MsgFeedGenerated   = "Calendar feed generated"
	MsgServerListen    = "HTTP server listening"
	MsgServerStop      = "Shutting down HTTP server..."
	MsgCacheUpdated    = "Calendar cache updated"
	MsgWorkerStart     = "Background worker started"
	MsgWorkerStop      = "Worker stopping due to context cancellation"
	MsgRefreshFailed   = "Feed refresh failed. Check logs."
	MsgLocaleSkip      = "Skipping non-locale file"
	MsgLocaleBadName   = "Skipping malformed locale filename"
	MsgLocaleLoaded    = "Locale loaded successfully"
	MsgTransMissing    = "Missing translation key"
	MsgPasswordSet     = "Lock password stored"
	MsgPasswordDefault = "No stored lock password, using default"
	MsgPasswordOK      = "Password accepted"
	MsgLogWarning      = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyPath      = "path"
	LogKeyCalendar  = "calendar"
	LogKeyCount     = "count"
	LogKeyDays      = "days"
	LogKeyDate      = "date"
	LogKeySchedule  = "schedule"
	LogKeySizeBytes = "size_bytes"
	LogKeyETag      = "etag"
	LogKeyDuration  = "duration_ms"
	LogKeyStatus    = "status"
	LogKeyRequestID = "request_id"

	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain     = "main"
	CompSettings = "settings"
	CompCalendar = "calendar"
	CompEngine   = "engine"
	CompServer   = "server"
	CompWorker   = "worker"
	CompI18n     = "i18n"
	CompLock     = "lock"
)

// -----------------------------------------------------------------------------
// Translation Keys (i18n)
// -----------------------------------------------------------------------------

const (
	TKeySystemGregorian           = "SystemGregorian"
	TKeySystemJulian              = "SystemJulian"
	TKeySystemBuddhist            = "SystemBuddhist"
	TKeySystemFrenchRevolutionary = "SystemFrenchRevolutionary"
	TKeySystemJewish              = "SystemJewish"

	TKeyTitle           = "Title"
	TKeyCalendarsTitle  = "CalendarsTitle"
	TKeyNoCalendars     = "NoCalendars"
	TKeyPasswordStored  = "PasswordStored"
	TKeyPasswordOK      = "PasswordAccepted"
	TKeyPasswordBad     = "PasswordRejected"
	TKeyPasswordCleared = "PasswordCleared"

	LocalesDir    = "locales"
	LocalePrefix  = "active."
	LocaleSuffix  = ".json"
	LocaleFileExt = "json"
)

// -----------------------------------------------------------------------------
// Metrics
// -----------------------------------------------------------------------------

const (
	MetricsNamespace     = "vivace"
	MetricConversions    = "conversions_total"
	MetricConversionsHlp = "Number of calendar conversions by system."
	MetricFeedBuilds     = "feed_builds_total"
	MetricFeedBuildsHlp  = "Number of iCalendar feed generations."
	MetricCachedYears    = "hebrew_cached_years"
	MetricCachedYearsHlp = "Number of Hebrew year starts held in the engine cache."
	MetricLabelSystem    = "system"
)
