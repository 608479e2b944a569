package endpoints

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/adibfirman/salat-sync/internal/feed"
	"github.com/adibfirman/salat-sync/internal/geo"
	"github.com/adibfirman/salat-sync/internal/http/api"
	"github.com/adibfirman/salat-sync/internal/http/api/endpoints/packets"
	"github.com/adibfirman/salat-sync/internal/model"
)

type CitiesController struct {
	cities  []model.City
	baseURL string
	search  *geo.NominatimClient
}

// CitiesModule mounts the catalog listing and the geocoded city
// search. publicBaseURL is the externally visible origin used to build
// subscription URLs.
func CitiesModule(cities []model.City, publicBaseURL string, search *geo.NominatimClient) api.Module {
	ctl := &CitiesController{
		cities:  cities,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
		search:  search,
	}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/cities", ctl.listCities)
		c.GET("/cities/search", ctl.searchCities)
	})
}

// GET /api/cities
func (cc *CitiesController) listCities(ctx *gin.Context) (any, *api.APIError) {
	out := make([]packets.CityResponse, 0, len(cc.cities))
	for _, c := range cc.cities {
		feedURL := fmt.Sprintf("%s/calendars/%s.ics", cc.baseURL, c.Slug)
		webcal, err := feed.WebcalURL(feedURL)
		if err != nil {
			log.Error().Err(err).Str("slug", c.Slug).Msg("could not build webcal url")
			return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not build subscription url"}
		}

		out = append(out, packets.CityResponse{
			Slug:        c.Slug,
			Name:        c.Name,
			Country:     c.Country,
			CountryCode: c.CountryCode,
			Latitude:    c.Latitude,
			Longitude:   c.Longitude,
			Timezone:    c.Timezone,
			Method:      c.Method,
			FeedURL:     feedURL,
			WebcalURL:   webcal,
		})
	}

	return out, nil
}

// GET /api/cities/search?q=
func (cc *CitiesController) searchCities(ctx *gin.Context) (any, *api.APIError) {
	query := ctx.Query("q")

	places, err := cc.search.Search(ctx.Request.Context(), query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("city search failed")
		return nil, &api.APIError{Code: http.StatusBadGateway, Message: "geocoding service unavailable"}
	}

	out := make([]packets.CitySearchResponse, 0, len(places))
	for _, p := range places {
		tz := geo.TimezoneFor(p.Longitude, p.CountryCode)
		method := geo.MethodFor(p.CountryCode)
		feedURL := cc.onDemandFeedURL(p, tz, method)
		webcal, werr := feed.WebcalURL(feedURL)
		if werr != nil {
			log.Error().Err(werr).Str("name", p.Name).Msg("could not build webcal url")
			continue
		}

		out = append(out, packets.CitySearchResponse{
			Name:        p.Name,
			DisplayName: p.DisplayName,
			Country:     p.Country,
			CountryCode: p.CountryCode,
			Latitude:    p.Latitude,
			Longitude:   p.Longitude,
			Timezone:    tz,
			Method:      method,
			FeedURL:     feedURL,
			WebcalURL:   webcal,
		})
	}

	return out, nil
}

func (cc *CitiesController) onDemandFeedURL(p geo.Place, tz string, method int) string {
	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", p.Latitude))
	params.Set("lng", fmt.Sprintf("%f", p.Longitude))
	params.Set("method", fmt.Sprintf("%d", method))
	params.Set("tz", tz)
	params.Set("name", p.Name)
	return fmt.Sprintf("%s/generate-ics?%s", cc.baseURL, params.Encode())
}
