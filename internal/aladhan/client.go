package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/adibfirman/salat-sync/internal/model"
)

const (
	// DefaultBaseURL is the public AlAdhan API host.
	DefaultBaseURL = "https://api.aladhan.com"

	userAgent      = "salat-sync/1.0 (prayer times calendar)"
	requestTimeout = 10 * time.Second
)

var (
	// ErrUpstream means the remote call failed or returned a
	// non-success status.
	ErrUpstream = errors.New("aladhan: upstream unavailable")
	// ErrMalformed means the body decoded but did not carry usable
	// prayer times.
	ErrMalformed = errors.New("aladhan: malformed response")
)

// Client fetches daily prayer times from the AlAdhan API.
// One Timings call makes exactly one outbound request; retry policy
// belongs to the caller.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client for the given base URL. An empty baseURL
// selects the public API. The per-call timeout bounds how long a slow
// upstream can hold up one day of the lookahead window.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Timings fetches prayer times for one coordinate and calendar date.
func (c *Client) Timings(ctx context.Context, lat, lng float64, method int, date time.Time) (model.PrayerTimes, error) {
	url := fmt.Sprintf("%s/v1/timings/%s?latitude=%f&longitude=%f&method=%d",
		c.baseURL, date.Format("02-01-2006"), lat, lng, method)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}

	var decoded Response
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if decoded.Code != http.StatusOK {
		return nil, fmt.Errorf("%w: api code %d (%s)", ErrMalformed, decoded.Code, decoded.Status)
	}

	times := decoded.Data.Timings.prayerTimes()
	if len(times) == 0 {
		return nil, fmt.Errorf("%w: no prayer time fields present", ErrMalformed)
	}
	return times, nil
}

// prayerTimes converts the timings payload into the model map, keeping
// only the five daily prayers. Individual absent fields are tolerated
// here; the event synthesizer skips them.
func (t Timings) prayerTimes() model.PrayerTimes {
	raw := map[string]string{
		"Fajr":    t.Fajr,
		"Dhuhr":   t.Dhuhr,
		"Asr":     t.Asr,
		"Maghrib": t.Maghrib,
		"Isha":    t.Isha,
	}

	times := model.PrayerTimes{}
	for _, name := range model.PrayerNames {
		v := cleanTime(raw[name])
		if v == "" {
			continue
		}
		times[name] = v
	}
	return times
}

// cleanTime strips the " (BST)"-style timezone suffix AlAdhan appends
// to some timings.
func cleanTime(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexByte(v, ' '); i >= 0 {
		v = v[:i]
	}
	return v
}
