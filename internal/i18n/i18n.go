// Package i18n translates calendar system names and terminal labels.
// Translations are embedded JSON files named active.<lang>.json.
package i18n

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/tartampluch/go-vivace/internal/calendar"
	"github.com/tartampluch/go-vivace/internal/config"
)

//go:embed locales/*.json
var localeFS embed.FS

// systemKeys maps calendar identifiers to their translation key.
var systemKeys = map[string]string{
	config.CalendarGregorian:           config.TKeySystemGregorian,
	config.CalendarJulian:              config.TKeySystemJulian,
	config.CalendarBuddhist:            config.TKeySystemBuddhist,
	config.CalendarFrenchRevolutionary: config.TKeySystemFrenchRevolutionary,
	config.CalendarJewish:              config.TKeySystemJewish,
}

// Translator resolves message keys for one language.
type Translator struct {
	bundle    *goi18n.Bundle
	localizer *goi18n.Localizer
	languages []string
}

// New loads every embedded locale and selects lang. Unknown languages fall
// back to English through the bundle default.
func New(lang string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc(config.LocaleFileExt, json.Unmarshal)

	entries, err := localeFS.ReadDir(config.LocalesDir)
	if err != nil {
		slog.Error(config.ErrLocalesAccess,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyError, err,
		)
		return nil, err
	}

	var detectedLangs []string

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, config.LocalePrefix) || !strings.HasSuffix(name, config.LocaleSuffix) {
			slog.Debug(config.MsgLocaleSkip,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		langCode := strings.TrimSuffix(strings.TrimPrefix(name, config.LocalePrefix), config.LocaleSuffix)
		if langCode == "" {
			slog.Warn(config.MsgLocaleBadName,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
			)
			continue
		}

		path := config.LocalesDir + "/" + name
		if _, err := bundle.LoadMessageFileFS(localeFS, path); err != nil {
			slog.Error(config.ErrLocaleLoad,
				config.LogKeyComponent, config.CompI18n,
				config.LogKeyFile, name,
				config.LogKeyError, err,
			)
			continue
		}
		detectedLangs = append(detectedLangs, langCode)
		slog.Debug(config.MsgLocaleLoaded,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyLang, langCode,
			config.LogKeyFile, name,
		)
	}

	t := &Translator{bundle: bundle, languages: detectedLangs}
	t.SetLanguage(lang)
	return t, nil
}

// SetLanguage switches the active language. Empty selects the default.
func (t *Translator) SetLanguage(lang string) {
	if lang == "" {
		lang = config.DefaultLanguage
	}
	t.localizer = goi18n.NewLocalizer(t.bundle, lang)
}

// Languages lists the language codes found in the embedded locales.
func (t *Translator) Languages() []string {
	return append([]string(nil), t.languages...)
}

// Msg translates key, returning the key itself when no translation exists.
func (t *Translator) Msg(key string) string {
	if t == nil || t.localizer == nil {
		return key
	}
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: key})
	if err != nil {
		slog.Debug(config.MsgTransMissing,
			config.LogKeyComponent, config.CompI18n,
			config.LogKeyKey, key,
			config.LogKeyError, err,
		)
		return key
	}
	return msg
}

// SystemName returns the localized display name of a calendar identifier,
// or the identifier itself when it is unknown.
func (t *Translator) SystemName(id string) string {
	key, ok := systemKeys[id]
	if !ok {
		return id
	}
	return t.Msg(key)
}

// LocalizeResults returns a copy of results with system names translated.
// Dates are left untouched.
func (t *Translator) LocalizeResults(results []calendar.Result) []calendar.Result {
	out := make([]calendar.Result, len(results))
	for i, r := range results {
		out[i] = r
		if _, ok := systemKeys[r.ID]; ok {
			out[i].System = t.SystemName(r.ID)
		}
	}
	return out
}
