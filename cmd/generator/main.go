package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/adibfirman/salat-sync/internal/aladhan"
	"github.com/adibfirman/salat-sync/internal/catalog"
	"github.com/adibfirman/salat-sync/internal/feed"
	"github.com/adibfirman/salat-sync/internal/model"
	"github.com/adibfirman/salat-sync/internal/storage"
)

var (
	catalogPath string
	outputDir   string
	useSpaces   bool
	windowDays  int
	pauseMS     int
	schedule    string
)

var rootCmd = &cobra.Command{
	Use:   "generator",
	Short: "Pre-generate prayer time calendars for the city catalog",
	Long: `generator fetches prayer times for every city in the catalog and
writes one 30-day ICS file per city, named by the city slug. Files are
served as static content and refreshed by re-running the job, either
once or on a cron schedule with --schedule.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&catalogPath, "catalog", "data/cities.yaml", "path to the YAML city catalog")
	rootCmd.Flags().StringVar(&outputDir, "output", "public/calendars", "directory for generated .ics files")
	rootCmd.Flags().BoolVar(&useSpaces, "spaces", false, "upload to Spaces instead of writing local files")
	rootCmd.Flags().IntVar(&windowDays, "window", feed.DefaultWindowDays, "lookahead window in days")
	rootCmd.Flags().IntVar(&pauseMS, "pause", int(feed.DefaultPause/time.Millisecond), "delay between upstream calls in milliseconds")
	rootCmd.Flags().StringVar(&schedule, "schedule", "", "cron expression to re-run periodically (e.g. \"0 3 * * *\")")
}

func run(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	if os.Getenv("APP_ENV") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	cities, err := catalog.Load(catalogPath)
	if err != nil {
		return err
	}
	log.Info().Int("cities", len(cities)).Str("catalog", catalogPath).Msg("catalog loaded")

	store, err := buildStorage()
	if err != nil {
		return err
	}

	gen := feed.NewGenerator(
		aladhan.NewClient(os.Getenv("ALADHAN_BASE_URL")),
		feed.WithWindow(windowDays),
		feed.WithPause(time.Duration(pauseMS)*time.Millisecond),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if schedule == "" {
		generateAll(ctx, gen, store, cities)
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		generateAll(ctx, gen, store, cities)
	}); err != nil {
		return err
	}

	// Run once immediately, then follow the schedule until signalled.
	generateAll(ctx, gen, store, cities)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}

func buildStorage() (storage.Storage, error) {
	if !useSpaces {
		return storage.NewLocalStorage(outputDir), nil
	}
	return storage.NewSpacesStorage(
		os.Getenv("SPACES_ENDPOINT"),
		os.Getenv("SPACES_REGION"),
		os.Getenv("SPACES_BUCKET"),
		os.Getenv("SPACES_CDN_URL"),
		os.Getenv("SPACES_ACCESS_KEY"),
		os.Getenv("SPACES_SECRET_KEY"),
	)
}

// generateAll processes cities strictly one at a time to keep outbound
// call volume predictable. A failed city is logged and skipped, never
// fatal to the run.
func generateAll(ctx context.Context, gen *feed.Generator, store storage.Storage, cities []model.City) {
	start := time.Now()

	for _, city := range cities {
		if ctx.Err() != nil {
			log.Warn().Msg("generation interrupted")
			return
		}

		events, err := gen.Generate(ctx, city.Location())
		if err != nil {
			log.Error().Err(err).Str("slug", city.Slug).Msg("no calendar generated for city")
			continue
		}

		data, err := feed.Encode(events)
		if err != nil {
			log.Error().Err(err).Str("slug", city.Slug).Msg("could not encode calendar")
			continue
		}

		dest, err := store.SaveFeed(city.Slug, data)
		if err != nil {
			log.Error().Err(err).Str("slug", city.Slug).Msg("could not save calendar")
			continue
		}

		log.Info().Str("slug", city.Slug).Int("events", len(events)).Str("dest", dest).Msg("calendar generated")
	}

	log.Info().Dur("elapsed", time.Since(start)).Int("cities", len(cities)).Msg("generation run finished")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("generator failed")
	}
}
