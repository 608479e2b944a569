package feed

import (
	"fmt"
	"net/url"
)

// WebcalURL rewrites an http(s) feed URL to the webcal scheme, which
// tells calendar clients to subscribe and poll instead of downloading
// once.
func WebcalURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse feed url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("unsupported feed url scheme %q", u.Scheme)
	}
	u.Scheme = "webcal"
	return u.String(), nil
}
