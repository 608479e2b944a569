package main

import (
	"os"
	"strconv"
	"time"
)

type Environment struct {
	Environment    string
	ServerAddress  string
	PublicBaseURL  string
	AladhanBaseURL string
	NominatimURL   string
	CatalogPath    string
	WindowDays     int
	FetchPause     time.Duration
}

// LoadEnvironment reads env vars. Everything has a sensible default;
// a bare `go run ./cmd/server` serves on :8080 against the public APIs.
func LoadEnvironment() Environment {
	env := Environment{
		Environment:    os.Getenv("APP_ENV"),
		ServerAddress:  os.Getenv("SERVER_ADDRESS"),
		PublicBaseURL:  os.Getenv("PUBLIC_BASE_URL"),
		AladhanBaseURL: os.Getenv("ALADHAN_BASE_URL"),
		NominatimURL:   os.Getenv("NOMINATIM_BASE_URL"),
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		WindowDays:     0,
		FetchPause:     -1,
	}

	if env.ServerAddress == "" {
		env.ServerAddress = ":8080"
	}
	if env.PublicBaseURL == "" {
		env.PublicBaseURL = "http://localhost:8080"
	}
	if env.CatalogPath == "" {
		env.CatalogPath = "data/cities.yaml"
	}

	if v := os.Getenv("WINDOW_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			env.WindowDays = n
		}
	}
	if v := os.Getenv("FETCH_PAUSE_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			env.FetchPause = time.Duration(n) * time.Millisecond
		}
	}

	return env
}
