package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// DefaultNominatimURL is the public OSM Nominatim endpoint.
const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// Nominatim requires an identifying User-Agent on every request.
const nominatimUserAgent = "salat-sync/1.0 (prayer times app)"

// Place is a geocoded city candidate.
type Place struct {
	Name        string  `json:"name"`
	DisplayName string  `json:"displayName"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Type        string  `json:"type"`
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Address     struct {
		City        string `json:"city"`
		Town        string `json:"town"`
		Village     string `json:"village"`
		Country     string `json:"country"`
		CountryCode string `json:"country_code"`
	} `json:"address"`
}

// NominatimClient searches OSM Nominatim for cities.
type NominatimClient struct {
	baseURL string
	http    *http.Client
}

// NewNominatimClient returns a client for the given base URL; an empty
// baseURL selects the public endpoint.
func NewNominatimClient(baseURL string) *NominatimClient {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	return &NominatimClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Search geocodes a free-text city query. Queries shorter than two
// characters return no results without a network call. Results are
// filtered down to city-like places.
func (c *NominatimClient) Search(ctx context.Context, query string) ([]Place, error) {
	if len(strings.TrimSpace(query)) < 2 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", "8")
	params.Set("featuretype", "city")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request: status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("geocoding response: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		if !cityLike(r) {
			continue
		}
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lng, lngErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}

		name := r.Address.City
		if name == "" {
			name = r.Address.Town
		}
		if name == "" {
			name = r.Address.Village
		}
		if name == "" {
			name = r.Name
		}

		places = append(places, Place{
			Name:        name,
			DisplayName: r.DisplayName,
			Latitude:    lat,
			Longitude:   lng,
			Country:     r.Address.Country,
			CountryCode: strings.ToUpper(r.Address.CountryCode),
			Type:        r.Type,
		})
	}
	return places, nil
}

func cityLike(r nominatimResult) bool {
	switch r.Type {
	case "city", "town", "village", "administrative", "locality":
		return true
	}
	return r.Address.City != "" || r.Address.Town != ""
}
