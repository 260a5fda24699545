package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Settings is the user configuration consumed by the conversion engine and
// the HTTP/CLI surfaces. It is loaded once per batch and passed by value.
type Settings struct {
	// EnabledCalendars lists calendar identifiers in display order.
	// Unknown identifiers are kept as-is and skipped at conversion time.
	EnabledCalendars []string `yaml:"enabled_calendars" json:"enabled_calendars"`

	// DateFormat is a preset ("military", "standard"), a "custom:<strftime>"
	// pattern, or empty for the default long date.
	DateFormat string `yaml:"date_format" json:"date_format"`

	// ShowSeconds appends seconds to patterns that carry an hour token.
	ShowSeconds *bool `yaml:"show_seconds,omitempty" json:"show_seconds,omitempty"`

	Language string `yaml:"language" json:"language" validate:"omitempty,oneof=en fr"`

	ServerPort int `yaml:"server_port" json:"server_port" validate:"min=1,max=65535"`

	// RefreshCron is a 5-field cron expression for feed regeneration.
	RefreshCron string `yaml:"refresh_cron" json:"refresh_cron" validate:"required"`

	FeedDaysBefore int `yaml:"feed_days_before" json:"feed_days_before" validate:"min=0,max=366"`
	FeedDaysAfter  int `yaml:"feed_days_after" json:"feed_days_after" validate:"min=0,max=366"`

	TimeoutMinutes int    `yaml:"timeout_minutes" json:"timeout_minutes" validate:"min=0"`
	Hotkey         string `yaml:"hotkey" json:"hotkey"`
	Theme          string `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// DefaultSettings returns the first-run configuration.
func DefaultSettings() *Settings {
	showSeconds := DefaultShowSeconds
	return &Settings{
		EnabledCalendars: append([]string(nil), DefaultEnabledCalendars...),
		DateFormat:       FormatPresetMilitary,
		ShowSeconds:      &showSeconds,
		Language:         DefaultLanguage,
		ServerPort:       DefaultPort,
		RefreshCron:      DefaultRefreshCron,
		FeedDaysBefore:   DefaultFeedDaysBefore,
		FeedDaysAfter:    DefaultFeedDaysAfter,
		TimeoutMinutes:   DefaultTimeoutMinutes,
		Hotkey:           DefaultHotkey,
	}
}

// SecondsEnabled reports the show_seconds flag, false when unset.
func (s *Settings) SecondsEnabled() bool {
	return s.ShowSeconds != nil && *s.ShowSeconds
}

// Normalize fills in missing/zero values so that partially-filled files
// from older versions still behave correctly.
func (s *Settings) Normalize() {
	if s.EnabledCalendars == nil {
		s.EnabledCalendars = append([]string(nil), DefaultEnabledCalendars...)
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if s.ServerPort == 0 {
		s.ServerPort = DefaultPort
	}
	if s.RefreshCron == "" {
		s.RefreshCron = DefaultRefreshCron
	}
	if s.FeedDaysBefore < 0 {
		s.FeedDaysBefore = 0
	}
	if s.FeedDaysAfter < 0 {
		s.FeedDaysAfter = 0
	}
	if s.Hotkey == "" {
		s.Hotkey = DefaultHotkey
	}
}

// Validate checks field constraints. Calendar identifiers are not checked:
// the enabled set may reference systems this build does not know.
func (s *Settings) Validate() error {
	err := validator.New().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%s: %w", ErrSettingsInvalid, err)
	}

	errs := make([]error, 0, len(verrs))
	for _, fe := range verrs {
		errs = append(errs, fmt.Errorf("%s: %s failed %q (got %v)", ErrSettingsInvalid, fe.Field(), fe.Tag(), fe.Value()))
	}
	return errors.Join(errs...)
}

// Clone returns a deep copy, used as the immutable per-batch snapshot.
func (s *Settings) Clone() Settings {
	out := *s
	out.EnabledCalendars = append([]string(nil), s.EnabledCalendars...)
	if s.ShowSeconds != nil {
		v := *s.ShowSeconds
		out.ShowSeconds = &v
	}
	return out
}

// DefaultPath returns <user config dir>/Vivace/settings.yaml, or the
// VIVACE_SETTINGS override.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvSettingsPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrConfigDir, err)
	}
	return filepath.Join(dir, SettingsDirName, SettingsFileName), nil
}

// LoadEnv reads a .env file from the working directory if present.
func LoadEnv() {
	_ = godotenv.Load()
}

// ApplyEnv overrides settings with environment variables.
func (s *Settings) ApplyEnv() {
	if v := os.Getenv(EnvPort); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			s.ServerPort = port
		}
	}
}

// Load reads settings from the given YAML path.
//
// Behavior:
//   - If the file does not exist, default settings are written (0600) and returned.
//   - Otherwise the YAML is decoded, normalized and validated.
func Load(path string) (*Settings, error) {
	if path == "" {
		return nil, errors.New(ErrSettingsPath)
	}
	log := slog.With(LogKeyComponent, CompSettings, LogKeyPath, path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s := DefaultSettings()
			if err := Save(path, s); err != nil {
				// Caller may still run with defaults.
				return s, err
			}
			log.Info(MsgSettingsCreated)
			return s, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrSettingsRead, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrSettingsParse, err)
	}
	s.Normalize()
	s.ApplyEnv()
	if err := s.Validate(); err != nil {
		return nil, err
	}

	log.Debug(MsgSettingsLoaded, LogKeyCount, len(s.EnabledCalendars))
	return &s, nil
}

// Save writes settings atomically via a temp file + rename, with 0600 perms.
func Save(path string, s *Settings) error {
	if path == "" {
		return errors.New(ErrSettingsPath)
	}
	if s == nil {
		return errors.New(ErrSettingsNil)
	}
	s.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, DirPermUserRWX); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}

	tmp, err := os.CreateTemp(dir, SettingsTempGlob)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	if err := os.Chmod(tmpName, FilePermUserRW); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%s: %w", ErrSettingsWrite, err)
	}
	return nil
}

// ParseLogLevel converts a level name to slog.Level. Empty means info.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%s: %q", ErrUnknownLogLevel, level)
	}
}
