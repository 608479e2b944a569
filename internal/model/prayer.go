package model

// PrayerNames lists the five daily prayers in chronological order.
// The order is also the event order within one calendar day.
var PrayerNames = []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}

// PrayerTimes holds one day's clock times keyed by prayer name.
// Values are "HH:MM" 24-hour local civil time as returned by the
// upstream source. A missing key means the provider omitted that
// prayer for the day.
type PrayerTimes map[string]string
