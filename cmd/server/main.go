package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/adibfirman/salat-sync/internal/aladhan"
	"github.com/adibfirman/salat-sync/internal/catalog"
	"github.com/adibfirman/salat-sync/internal/feed"
	"github.com/adibfirman/salat-sync/internal/geo"
	"github.com/adibfirman/salat-sync/internal/model"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := LoadEnvironment()

	if env.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	var cities []model.City
	if env.CatalogPath != "" {
		loaded, err := catalog.Load(env.CatalogPath)
		if err != nil {
			// A missing catalog only disables the listing endpoint; the
			// on-demand endpoint works regardless.
			log.Warn().Err(err).Str("path", env.CatalogPath).Msg("city catalog not loaded")
		} else {
			cities = loaded
			log.Info().Int("cities", len(cities)).Msg("city catalog loaded")
		}
	}

	opts := []feed.Option{}
	if env.WindowDays > 0 {
		opts = append(opts, feed.WithWindow(env.WindowDays))
	}
	if env.FetchPause >= 0 {
		opts = append(opts, feed.WithPause(env.FetchPause))
	}
	gen := feed.NewGenerator(aladhan.NewClient(env.AladhanBaseURL), opts...)
	search := geo.NewNominatimClient(env.NominatimURL)

	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, env, gen, cities, search)

	log.Info().Str("addr", env.ServerAddress).Msg("listening")
	if err := r.Run(env.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
