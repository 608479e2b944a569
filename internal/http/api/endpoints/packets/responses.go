package packets

// CityResponse is one catalog entry in the city listing, with the URLs
// a client needs to subscribe to its pre-generated feed.
type CityResponse struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Method      int     `json:"method"`
	FeedURL     string  `json:"feedUrl"`
	WebcalURL   string  `json:"webcalUrl"`
}

// CitySearchResponse is one geocoded candidate with its resolved
// timezone, calculation method and on-demand feed URLs.
type CitySearchResponse struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	Method      int     `json:"method"`
	FeedURL     string  `json:"feedUrl"`
	WebcalURL   string  `json:"webcalUrl"`
}
