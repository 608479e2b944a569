package catalog

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/adibfirman/salat-sync/internal/model"
)

// file is the on-disk shape of the city catalog.
type file struct {
	Cities []model.City `yaml:"cities"`
}

// Load reads and validates the YAML city catalog. Every entry must
// carry a slug, a name, in-range coordinates and a loadable IANA
// timezone; a bad entry fails the whole load so the batch job never
// silently drops a city.
func Load(path string) ([]model.City, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(f.Cities) == 0 {
		return nil, fmt.Errorf("catalog %s contains no cities", path)
	}

	seen := make(map[string]bool, len(f.Cities))
	for i, c := range f.Cities {
		if err := validate(c); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s): %w", i, c.Slug, err)
		}
		if seen[c.Slug] {
			return nil, fmt.Errorf("catalog entry %d: duplicate slug %q", i, c.Slug)
		}
		seen[c.Slug] = true
	}
	return f.Cities, nil
}

func validate(c model.City) error {
	if c.Slug == "" {
		return errors.New("missing slug")
	}
	if c.Name == "" {
		return errors.New("missing name")
	}
	if c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", c.Latitude)
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", c.Longitude)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q", c.Timezone)
	}
	return nil
}
