package model

// City is one catalog entry for the batch generator and the
// city-listing endpoint.
type City struct {
	Slug        string  `yaml:"slug" json:"slug"`
	Name        string  `yaml:"name" json:"name"`
	Country     string  `yaml:"country" json:"country"`
	CountryCode string  `yaml:"country_code" json:"countryCode"`
	Latitude    float64 `yaml:"latitude" json:"latitude"`
	Longitude   float64 `yaml:"longitude" json:"longitude"`
	Timezone    string  `yaml:"timezone" json:"timezone"`
	Method      int     `yaml:"method" json:"method"`
}

// Location converts a catalog entry into generation input.
func (c City) Location() Location {
	return Location{
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Method:    c.Method,
		Timezone:  c.Timezone,
		Name:      c.Name,
		Slug:      c.Slug,
	}
}
