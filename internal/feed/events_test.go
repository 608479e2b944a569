package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibfirman/salat-sync/internal/model"
)

func jakartaLocation() model.Location {
	return model.Location{
		Latitude:  -6.2088,
		Longitude: 106.8456,
		Method:    11,
		Timezone:  "Asia/Jakarta",
		Name:      "Jakarta",
		Slug:      "jakarta",
	}
}

func fullDay() model.PrayerTimes {
	return model.PrayerTimes{
		"Fajr":    "04:39",
		"Dhuhr":   "11:53",
		"Asr":     "15:12",
		"Maghrib": "17:52",
		"Isha":    "19:02",
	}
}

func TestDayEventsFullDay(t *testing.T) {
	syn, err := NewSynthesizer(jakartaLocation())
	require.NoError(t, err)

	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)
	events := syn.DayEvents(fullDay(), date)
	require.Len(t, events, 5)

	// Chronological prayer order is preserved.
	assert.Equal(t, "Fajr", events[0].Title)
	assert.Equal(t, "Isha", events[4].Title)

	// Jakarta is UTC+7 year round: 04:39 local is 21:39 UTC the day before.
	assert.Equal(t, time.Date(2026, 9, 4, 21, 39, 0, 0, time.UTC), events[0].Start)

	for _, ev := range events {
		assert.Equal(t, 30*time.Minute, ev.Duration)
		assert.Equal(t, "Prayer", ev.Category)
		assert.Equal(t, "Prayer Times - Jakarta", ev.CalendarName)
	}

	assert.Equal(t, "fajr-20260905-jakarta@salat-sync", events[0].UID)
	assert.Equal(t, "Fajr prayer time for Jakarta", events[0].Description)
}

func TestDayEventsUIDDeterminism(t *testing.T) {
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	synA, err := NewSynthesizer(jakartaLocation())
	require.NoError(t, err)
	synB, err := NewSynthesizer(jakartaLocation())
	require.NoError(t, err)

	a := synA.DayEvents(fullDay(), date)
	b := synB.DayEvents(fullDay(), date)
	require.Len(t, a, 5)

	for i := range a {
		assert.Equal(t, a[i].UID, b[i].UID)
	}
}

func TestDayEventsSkipsAbsentPrayer(t *testing.T) {
	syn, err := NewSynthesizer(jakartaLocation())
	require.NoError(t, err)

	times := fullDay()
	delete(times, "Maghrib")

	events := syn.DayEvents(times, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
	require.Len(t, events, 4)
	for _, ev := range events {
		assert.NotEqual(t, "Maghrib", ev.Title)
	}
}

func TestDayEventsSkipsUnparseableTime(t *testing.T) {
	syn, err := NewSynthesizer(jakartaLocation())
	require.NoError(t, err)

	times := fullDay()
	times["Asr"] = "soon"
	times["Isha"] = "25:99"

	events := syn.DayEvents(times, time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC))
	assert.Len(t, events, 3)
}

func TestDayEventsDSTConversion(t *testing.T) {
	loc := model.Location{
		Latitude:  40.7128,
		Longitude: -74.006,
		Method:    2,
		Timezone:  "America/New_York",
		Name:      "New York",
		Slug:      "new-york",
	}
	syn, err := NewSynthesizer(loc)
	require.NoError(t, err)

	times := model.PrayerTimes{"Dhuhr": "13:00"}

	winter := syn.DayEvents(times, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC))
	summer := syn.DayEvents(times, time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC))
	require.Len(t, winter, 1)
	require.Len(t, summer, 1)

	// Same wall clock, different UTC hour across the DST boundary.
	assert.Equal(t, 18, winter[0].Start.Hour())
	assert.Equal(t, 17, summer[0].Start.Hour())
}

func TestNewSynthesizerRejectsBadTimezone(t *testing.T) {
	loc := jakartaLocation()
	loc.Timezone = "Mars/Olympus_Mons"

	_, err := NewSynthesizer(loc)
	assert.Error(t, err)
}

func TestNewSynthesizerDerivesSlug(t *testing.T) {
	loc := jakartaLocation()
	loc.Slug = ""

	syn, err := NewSynthesizer(loc)
	require.NoError(t, err)
	assert.Equal(t, "custom-jakarta--6.21-106.85", syn.Slug())
}
