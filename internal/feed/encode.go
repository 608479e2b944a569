package feed

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/adibfirman/salat-sync/internal/model"
)

// ErrEncode means serialization failed or produced an empty calendar
// for non-empty input. This indicates defective generated events, not
// bad user input.
var ErrEncode = errors.New("feed: calendar encoding failed")

const productID = "-//salat-sync//prayer times//EN"

// Encode serializes events into ICS wire format. Events are emitted in
// input order with their UTC start instants; calendar clients match
// refreshed feeds to existing series by UID.
func Encode(events []model.Event) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(productID)
	if len(events) > 0 && events[0].CalendarName != "" {
		cal.SetXWRCalName(events[0].CalendarName)
	}

	stamp := time.Now().UTC()
	for _, ev := range events {
		if ev.UID == "" {
			return nil, fmt.Errorf("%w: event %q has empty uid", ErrEncode, ev.Title)
		}
		e := cal.AddEvent(ev.UID)
		e.SetDtStampTime(stamp)
		e.SetSummary(ev.Title)
		e.SetStartAt(ev.Start.UTC())
		e.SetEndAt(ev.Start.UTC().Add(ev.Duration))
		e.SetDescription(ev.Description)
		e.SetStatus(ical.ObjectStatusConfirmed)
		e.SetTimeTransparency(ical.TransparencyTransparent)
		if ev.Category != "" {
			e.AddProperty(ical.ComponentPropertyCategories, ev.Category)
		}
	}

	out := cal.Serialize()
	if len(events) > 0 && strings.TrimSpace(out) == "" {
		return nil, ErrEncode
	}
	return []byte(out), nil
}
