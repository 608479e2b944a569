package feed

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/adibfirman/salat-sync/internal/model"
)

const (
	// eventDuration is the fixed length of every prayer event.
	eventDuration = 30 * time.Minute

	// uidDomain is the suffix of every event UID. Calendar clients key
	// their caches on the full UID, so this is a wire contract: changing
	// it would duplicate every event on the next refresh.
	uidDomain = "salat-sync"

	eventCategory = "Prayer"
)

// Synthesizer turns daily prayer times into calendar events for one
// location. It resolves the location's IANA zone once so wall-clock to
// UTC conversion is DST-correct for every date in the window.
type Synthesizer struct {
	loc  model.Location
	zone *time.Location
	slug string
}

// NewSynthesizer validates the location's timezone and fixes its slug.
func NewSynthesizer(loc model.Location) (*Synthesizer, error) {
	zone, err := time.LoadLocation(loc.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", loc.Timezone, err)
	}
	slug := loc.Slug
	if slug == "" {
		slug = Slug(loc.Name, loc.Latitude, loc.Longitude)
	}
	return &Synthesizer{loc: loc, zone: zone, slug: slug}, nil
}

// Slug returns the slug the synthesizer stamps into event UIDs.
func (s *Synthesizer) Slug() string { return s.slug }

// CalendarName returns the display name of the generated calendar.
func (s *Synthesizer) CalendarName() string {
	return "Prayer Times - " + s.loc.Name
}

// DayEvents converts one day's prayer times into calendar events.
// Prayers the provider omitted, and times that do not parse as HH:MM,
// are skipped without error.
func (s *Synthesizer) DayEvents(times model.PrayerTimes, date time.Time) []model.Event {
	events := make([]model.Event, 0, len(model.PrayerNames))

	for _, prayer := range model.PrayerNames {
		raw, ok := times[prayer]
		if !ok || raw == "" {
			continue
		}
		hour, minute, ok := parseClock(raw)
		if !ok {
			continue
		}

		// Wall clock in the location's zone, then the UTC instant.
		local := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, s.zone)

		events = append(events, model.Event{
			Title:        prayer,
			Start:        local.UTC(),
			Duration:     eventDuration,
			UID:          fmt.Sprintf("%s-%s-%s@%s", strings.ToLower(prayer), date.Format("20060102"), s.slug, uidDomain),
			Description:  fmt.Sprintf("%s prayer time for %s", prayer, s.loc.Name),
			Category:     eventCategory,
			CalendarName: s.CalendarName(),
		})
	}

	return events
}

// parseClock splits an "HH:MM" 24-hour string.
func parseClock(v string) (hour, minute int, ok bool) {
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
