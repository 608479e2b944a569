package endpoints

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/adibfirman/salat-sync/internal/feed"
	"github.com/adibfirman/salat-sync/internal/geo"
	"github.com/adibfirman/salat-sync/internal/http/api"
	"github.com/adibfirman/salat-sync/internal/model"
)

const (
	defaultTimezone = "UTC"
	defaultName     = "Custom Location"

	// cacheControl allows intermediaries to serve a generated feed for
	// 12 hours; prayer times for a fixed window do not change faster.
	cacheControl = "public, max-age=43200"

	icsContentType = "text/calendar; charset=utf-8"
)

var filenameUnsafe = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)

type FeedController struct {
	gen *feed.Generator
}

// FeedModule mounts the on-demand calendar endpoint.
func FeedModule(gen *feed.Generator) api.Module {
	ctl := &FeedController{gen: gen}
	return api.ModuleFunc(func(c *api.Controller) {
		c.RawGET("/generate-ics", ctl.generateICS)
	})
}

// GET /generate-ics?lat&lng&method&tz&name
//
// Validation happens entirely before the pipeline runs: invalid input
// never costs an upstream call. Errors are plain text so calendar
// clients surface something readable.
func (f *FeedController) generateICS(ctx *gin.Context) {
	latStr := ctx.Query("lat")
	lngStr := ctx.Query("lng")
	if latStr == "" || lngStr == "" {
		ctx.String(http.StatusBadRequest, "Missing required parameters: lat and lng")
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lng, lngErr := strconv.ParseFloat(lngStr, 64)
	if latErr != nil || lngErr != nil || math.IsNaN(lat) || math.IsNaN(lng) {
		// ParseFloat accepts "NaN", which would also slip through the
		// range checks below.
		ctx.String(http.StatusBadRequest, "Invalid coordinates: lat and lng must be numbers")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		ctx.String(http.StatusBadRequest, "Invalid coordinates: lat must be -90 to 90, lng must be -180 to 180")
		return
	}

	method := geo.DefaultMethod
	if m := ctx.Query("method"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil {
			ctx.String(http.StatusBadRequest, "Invalid method: must be an integer")
			return
		}
		method = parsed
	}

	// An empty tz param gets the same default as an absent one.
	tz := ctx.Query("tz")
	if tz == "" {
		tz = defaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		ctx.String(http.StatusBadRequest, "Invalid timezone: must be an IANA zone identifier")
		return
	}

	name := ctx.Query("name")
	if name == "" {
		name = defaultName
	}

	loc := model.Location{
		Latitude:  lat,
		Longitude: lng,
		Method:    method,
		Timezone:  tz,
		Name:      name,
	}

	events, err := f.gen.Generate(ctx.Request.Context(), loc)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			// Client went away; nothing left to write.
			return
		}
		log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("feed generation failed")
		ctx.String(http.StatusInternalServerError, "Failed to generate calendar: no prayer times available")
		return
	}

	data, err := feed.Encode(events)
	if err != nil {
		log.Error().Err(err).Float64("lat", lat).Float64("lng", lng).Msg("feed encoding failed")
		ctx.String(http.StatusInternalServerError, "Failed to generate calendar file")
		return
	}

	filename := filenameUnsafe.ReplaceAllString(name, "-") + ".ics"
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Header("Cache-Control", cacheControl)
	ctx.Data(http.StatusOK, icsContentType, data)
}
