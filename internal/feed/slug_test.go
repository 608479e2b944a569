package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugShape(t *testing.T) {
	assert.Equal(t, "custom-new-york-40.71--74.01", Slug("New York", 40.7128, -74.006))
}

func TestSlugCollapsesWhitespaceRuns(t *testing.T) {
	assert.Equal(t, Slug("Kuala  Lumpur", 3.139, 101.6869), Slug("Kuala Lumpur", 3.139, 101.6869))
}

func TestSlugStableUnderRounding(t *testing.T) {
	// Raw floats differ beyond two decimals; slugs must not.
	a := Slug("Jakarta", -6.20881, 106.84559)
	b := Slug("Jakarta", -6.20923, 106.84601)
	assert.Equal(t, a, b)
}

func TestSlugDistinguishesCoordinates(t *testing.T) {
	assert.NotEqual(t, Slug("Springfield", 39.80, -89.65), Slug("Springfield", 37.21, -93.29))
}
