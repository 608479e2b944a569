package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/adibfirman/salat-sync/internal/feed"
	"github.com/adibfirman/salat-sync/internal/geo"
	"github.com/adibfirman/salat-sync/internal/http/api"
	"github.com/adibfirman/salat-sync/internal/http/api/endpoints"
	"github.com/adibfirman/salat-sync/internal/model"
)

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, env Environment, gen *feed.Generator, cities []model.City, search *geo.NominatimClient) {
	// CORS: feeds and the city API are public, calendar clients and
	// browsers fetch them cross-origin.
	r.Use(cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool { return true },
		AllowMethods: []string{
			"GET",
			"OPTIONS",
			"HEAD",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
		},
		ExposeHeaders: []string{
			"Content-Length",
			"Content-Disposition",
		},
		AllowCredentials: false,
	}))

	api.MountGroup(r, api.GroupConfig{},
		endpoints.FeedModule(gen),
	)

	api.MountGroup(r, api.GroupConfig{
		Prefix: "/api",
	},
		endpoints.CitiesModule(cities, env.PublicBaseURL, search),
	)

	// Batch-generated per-city calendars, when this host also serves
	// the static variant.
	r.Static("/calendars", "./public/calendars")
}
