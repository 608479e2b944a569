package model

import "time"

// Event is a single calendar entry for one prayer on one day.
type Event struct {
	Title        string
	Start        time.Time // always UTC
	Duration     time.Duration
	UID          string
	Description  string
	Category     string
	CalendarName string
}
