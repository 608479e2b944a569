package feed

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/adibfirman/salat-sync/internal/model"
)

const (
	// DefaultWindowDays is the forward lookahead of one generation run.
	DefaultWindowDays = 30

	// DefaultPause is the politeness delay between consecutive upstream
	// calls. It keeps one generation under the AlAdhan informal rate
	// limit; tests run with zero.
	DefaultPause = 150 * time.Millisecond
)

// ErrNoData means every day in the window failed to fetch; nothing was
// generated.
var ErrNoData = errors.New("feed: no prayer time data available")

// TimeSource fetches one day of prayer times. Implemented by
// aladhan.Client; tests substitute stubs.
type TimeSource interface {
	Timings(ctx context.Context, lat, lng float64, method int, date time.Time) (model.PrayerTimes, error)
}

// Generator runs the sequential lookahead loop for one location per
// call. It holds no per-request state, so one Generator serves
// concurrent requests.
type Generator struct {
	source TimeSource
	window int
	pause  time.Duration
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithWindow overrides the lookahead window length in days.
func WithWindow(days int) Option {
	return func(g *Generator) {
		if days > 0 {
			g.window = days
		}
	}
}

// WithPause overrides the inter-day politeness delay. Zero disables it.
func WithPause(d time.Duration) Option {
	return func(g *Generator) { g.pause = d }
}

// WithClock overrides the "today" clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// NewGenerator builds a Generator over the given time source.
func NewGenerator(source TimeSource, opts ...Option) *Generator {
	g := &Generator{
		source: source,
		window: DefaultWindowDays,
		pause:  DefaultPause,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Window returns the configured lookahead length in days.
func (g *Generator) Window() int { return g.window }

// Generate fetches the location's prayer times for each day of the
// window, strictly sequentially, and returns the accumulated events.
// A failed day is logged and skipped; the loop continues. Only when
// every day yields nothing does Generate fail with ErrNoData.
// Cancellation is observed at each loop head and during the pacing
// pause.
func (g *Generator) Generate(ctx context.Context, loc model.Location) ([]model.Event, error) {
	syn, err := NewSynthesizer(loc)
	if err != nil {
		return nil, err
	}

	events := make([]model.Event, 0, g.window*len(model.PrayerNames))
	today := g.now()
	skipped := 0

	for i := 0; i < g.window; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		date := today.AddDate(0, 0, i)

		times, ferr := g.source.Timings(ctx, loc.Latitude, loc.Longitude, loc.Method, date)
		if ferr != nil {
			skipped++
			log.Error().Err(ferr).
				Str("slug", syn.Slug()).
				Str("date", date.Format("2006-01-02")).
				Msg("prayer time fetch failed, skipping day")
			continue
		}

		events = append(events, syn.DayEvents(times, date)...)

		if g.pause > 0 && i < g.window-1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.pause):
			}
		}
	}

	if len(events) == 0 {
		return nil, ErrNoData
	}
	if skipped > 0 {
		log.Warn().
			Str("slug", syn.Slug()).
			Int("skipped_days", skipped).
			Int("window_days", g.window).
			Msg("generated feed with missing days")
	}
	return events, nil
}
