package feed

import (
	"bytes"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibfirman/salat-sync/internal/model"
)

func TestEncodeRoundTrip(t *testing.T) {
	syn, err := NewSynthesizer(jakartaLocation())
	require.NoError(t, err)

	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	events := syn.DayEvents(fullDay(), date)
	require.Len(t, events, 5)

	data, err := Encode(events)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	cal, err := ical.ParseCalendar(bytes.NewReader(data))
	require.NoError(t, err)

	parsed := cal.Events()
	require.Len(t, parsed, 5)

	for i, ve := range parsed {
		uid := ve.GetProperty(ical.ComponentPropertyUniqueId)
		require.NotNil(t, uid)
		assert.Equal(t, events[i].UID, uid.Value)

		summary := ve.GetProperty(ical.ComponentPropertySummary)
		require.NotNil(t, summary)
		assert.Equal(t, events[i].Title, summary.Value)

		start, serr := ve.GetStartAt()
		require.NoError(t, serr)
		assert.True(t, start.Equal(events[i].Start), "start instant survives the round trip")

		end, eerr := ve.GetEndAt()
		require.NoError(t, eerr)
		assert.Equal(t, 30*time.Minute, end.Sub(start))
	}
}

func TestEncodeCalendarMetadata(t *testing.T) {
	syn, err := NewSynthesizer(jakartaLocation())
	require.NoError(t, err)

	events := syn.DayEvents(fullDay(), time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))

	data, err := Encode(events)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "X-WR-CALNAME:Prayer Times - Jakarta")
	assert.Contains(t, out, "STATUS:CONFIRMED")
	assert.Contains(t, out, "TRANSP:TRANSPARENT")
	assert.Contains(t, out, "CATEGORIES:Prayer")
}

func TestEncodeRejectsEmptyUID(t *testing.T) {
	events := []model.Event{{
		Title:    "Fajr",
		Start:    time.Date(2026, 9, 5, 4, 39, 0, 0, time.UTC),
		Duration: 30 * time.Minute,
	}}

	_, err := Encode(events)
	assert.ErrorIs(t, err, ErrEncode)
}
