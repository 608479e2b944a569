package geo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimezoneForMappedCountry(t *testing.T) {
	assert.Equal(t, "Asia/Tokyo", TimezoneFor(139.69, "JP"))
	assert.Equal(t, "Asia/Jakarta", TimezoneFor(106.85, "ID"))
	assert.Equal(t, "America/New_York", TimezoneFor(-74.01, "US"))
}

func TestTimezoneForLongitudeFallback(t *testing.T) {
	// Etc/GMT names invert the sign of the offset.
	assert.Equal(t, "Etc/GMT-7", TimezoneFor(100.0, "XX"))
	assert.Equal(t, "Etc/GMT+5", TimezoneFor(-74.0, "XX"))
	assert.Equal(t, "Etc/GMT+0", TimezoneFor(0.0, "XX"))
}

func TestTimezoneFallbackIsLoadable(t *testing.T) {
	for _, lng := range []float64{-179.9, -74.0, 0.0, 100.0, 179.9} {
		tz := TimezoneFor(lng, "ZZ")
		_, err := time.LoadLocation(tz)
		assert.NoError(t, err, "fallback zone %s for lng %v", tz, lng)
	}
}

func TestMethodFor(t *testing.T) {
	assert.Equal(t, 2, MethodFor("US"))
	assert.Equal(t, 4, MethodFor("SA"))
	assert.Equal(t, 11, MethodFor("ID"))
	assert.Equal(t, 13, MethodFor("TR"))
	// Qum method is code zero, which must not fall through to default.
	assert.Equal(t, 0, MethodFor("IQ"))
	assert.Equal(t, DefaultMethod, MethodFor("XX"))
	assert.Equal(t, DefaultMethod, MethodFor(""))
}
