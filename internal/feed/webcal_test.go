package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebcalURL(t *testing.T) {
	got, err := WebcalURL("https://example.com/calendars/jakarta.ics")
	require.NoError(t, err)
	assert.Equal(t, "webcal://example.com/calendars/jakarta.ics", got)

	got, err = WebcalURL("http://localhost:8080/generate-ics?lat=1&lng=2")
	require.NoError(t, err)
	assert.Equal(t, "webcal://localhost:8080/generate-ics?lat=1&lng=2", got)
}

func TestWebcalURLRejectsOtherSchemes(t *testing.T) {
	_, err := WebcalURL("ftp://example.com/jakarta.ics")
	assert.Error(t, err)
}
