package model

// Location is the immutable input to one feed generation run.
type Location struct {
	Latitude  float64
	Longitude float64
	Method    int    // AlAdhan calculation method code
	Timezone  string // IANA zone identifier, e.g. "Asia/Jakarta"
	Name      string // display name used in event descriptions
	Slug      string // pre-assigned catalog slug; empty for ad hoc locations
}
