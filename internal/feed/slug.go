package feed

import (
	"fmt"
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slug derives a stable identifier for an ad hoc location. Coordinates
// are rounded to two decimals so that requests differing only beyond
// that precision map to the same slug, which in turn keeps event UIDs
// stable across regenerations. The "custom-" prefix separates ad hoc
// slugs from catalog ones.
func Slug(name string, lat, lng float64) string {
	n := whitespaceRun.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
	return fmt.Sprintf("custom-%s-%.2f-%.2f", n, lat, lng)
}
