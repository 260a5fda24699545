package calendar

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tartampluch/go-vivace/internal/config"
)

// Dispatcher routes conversions to the converter of each System. It owns a
// Hebrew converter, so like Hebrew it is not safe for concurrent use.
type Dispatcher struct {
	hebrew *Hebrew
}

// NewDispatcher returns a Dispatcher with a fresh Hebrew year-start cache.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{hebrew: NewHebrew()}
}

// Hebrew exposes the owned Hebrew converter (e.g. to report its cache size).
func (d *Dispatcher) Hebrew() *Hebrew {
	return d.hebrew
}

// ConvertSystem converts t in a single system. pattern only affects Gregorian.
func (d *Dispatcher) ConvertSystem(s System, t time.Time, pattern string) (Result, error) {
	switch s {
	case Gregorian:
		return Gregorian{Pattern: pattern}.Convert(t)
	case Julian:
		return Julian{}.Convert(t)
	case Buddhist:
		return Buddhist{}.Convert(t)
	case FrenchRevolutionary:
		return Revolutionary{}.Convert(t)
	case Jewish:
		return d.hebrew.Convert(t)
	default:
		return Result{}, fmt.Errorf("%s: system %d", config.ErrConvert, int(s))
	}
}

// Convert runs every enabled calendar on t, in the order of ids. Unknown ids
// are skipped. The first conversion error aborts the batch.
func (d *Dispatcher) Convert(t time.Time, ids []string, pattern string) ([]Result, error) {
	results := make([]Result, 0, len(ids))
	for _, id := range ids {
		s, ok := ParseSystem(id)
		if !ok {
			slog.Debug(config.MsgUnknownCalendar,
				config.LogKeyComponent, config.CompCalendar,
				config.LogKeyCalendar, id,
			)
			continue
		}

		r, err := d.ConvertSystem(s, t, pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		results = append(results, r)
	}
	return results, nil
}
